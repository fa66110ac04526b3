package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type MemberRole string

const (
	MemberRoleMember  MemberRole = "member"
	MemberRoleCouncil MemberRole = "council"
)

func (r MemberRole) String() string {
	return string(r)
}

func (r MemberRole) CapitalizedString() string {
	return cases.Title(language.English).String(r.String())
}

func (r MemberRole) CanCreateProposals() bool {
	return r == MemberRoleCouncil
}

type Member struct {
	tableName struct{} `pg:"members"`

	ID               int64  `json:"id" pg:",pk"`
	Name             string `json:"name" pg:",notnull"`
	TelegramID       int64  `json:"telegram_id" pg:",notnull,unique"`
	TelegramNickname string `json:"telegram_nickname"`
	// Ledger address backing the member's voting weight.
	Address   string     `json:"address" pg:",unique"`
	Role      MemberRole `json:"role" pg:",notnull"`
	CreatedAt time.Time  `json:"created_at" pg:"default:now()"`
}
