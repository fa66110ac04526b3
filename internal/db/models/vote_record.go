package models

import (
	"dao_governance_system/internal/governance"
	"time"
)

type VoteRecord struct {
	tableName struct{} `pg:"vote_records"`

	ID         int64     `json:"id" pg:",pk"`
	ProposalID uint64    `json:"proposal_id" pg:",notnull"`
	Voter      string    `json:"voter" pg:",notnull"`
	Amount     uint64    `json:"amount" pg:",notnull,use_zero"`
	Choice     string    `json:"choice" pg:",notnull"`
	CreatedAt  time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt  time.Time `json:"updated_at" pg:"default:now()"`
}

// Apply copies record onto v keeping the row identity.
func (v *VoteRecord) Apply(record *governance.VoteRecord) {
	v.ProposalID = record.ProposalID
	v.Voter = record.Voter
	v.Amount = record.Amount
	v.Choice = record.Choice.String()
}

func VoteRecordFromDomain(record *governance.VoteRecord) *VoteRecord {
	model := &VoteRecord{}
	model.Apply(record)
	return model
}

func (v *VoteRecord) ToDomain() (*governance.VoteRecord, error) {
	choice, err := governance.ParseVoteChoice(v.Choice)
	if err != nil {
		return nil, err
	}

	return governance.NewVoteRecord(v.Voter, v.ProposalID, v.Amount, choice), nil
}
