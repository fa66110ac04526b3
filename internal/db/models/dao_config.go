package models

import (
	"dao_governance_system/internal/governance"
	"time"
)

type DaoConfig struct {
	tableName struct{} `pg:"dao_configs"`

	ID              int64     `json:"id" pg:",pk"`
	Seed            uint64    `json:"seed" pg:",notnull,unique,use_zero"`
	IssuePrice      uint64    `json:"issue_price" pg:",notnull,use_zero"`
	IssueAmount     uint64    `json:"issue_amount" pg:",notnull,use_zero"`
	ProposalFee     uint64    `json:"proposal_fee" pg:",notnull,use_zero"`
	MaxSupply       uint64    `json:"max_supply" pg:",notnull,use_zero"`
	MinQuorum       uint64    `json:"min_quorum" pg:",notnull,use_zero"`
	MinThreshold    uint64    `json:"min_threshold" pg:",notnull,use_zero"`
	MaxExpiry       uint64    `json:"max_expiry" pg:",notnull,use_zero"`
	MinStake        uint64    `json:"min_stake" pg:",notnull,use_zero"`
	PrevotingPeriod uint64    `json:"prevoting_period" pg:",notnull,use_zero"`
	ProposalCount   uint64    `json:"proposal_count" pg:",notnull,use_zero"`
	CreatedAt       time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt       time.Time `json:"updated_at" pg:"default:now()"`
}

func DaoConfigFromDomain(id int64, config *governance.DaoConfig) *DaoConfig {
	return &DaoConfig{
		ID:              id,
		Seed:            config.Seed,
		IssuePrice:      config.IssuePrice,
		IssueAmount:     config.IssueAmount,
		ProposalFee:     config.ProposalFee,
		MaxSupply:       config.MaxSupply,
		MinQuorum:       config.MinQuorum,
		MinThreshold:    config.MinThreshold,
		MaxExpiry:       config.MaxExpiry,
		MinStake:        config.MinStake,
		PrevotingPeriod: config.PrevotingPeriod,
		ProposalCount:   config.ProposalCount,
	}
}

func (c *DaoConfig) ToDomain() *governance.DaoConfig {
	return &governance.DaoConfig{
		Seed:            c.Seed,
		IssuePrice:      c.IssuePrice,
		IssueAmount:     c.IssueAmount,
		ProposalFee:     c.ProposalFee,
		MaxSupply:       c.MaxSupply,
		MinQuorum:       c.MinQuorum,
		MinThreshold:    c.MinThreshold,
		MaxExpiry:       c.MaxExpiry,
		MinStake:        c.MinStake,
		PrevotingPeriod: c.PrevotingPeriod,
		ProposalCount:   c.ProposalCount,
	}
}
