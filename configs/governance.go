package configs

import "dao_governance_system/internal/governance"

// Governance holds the genesis parameters of the DAO. They are written
// once, when the DAO row does not exist yet.
type Governance struct {
	Seed            uint64 `env:"DAO_SEED" envDefault:"1"`
	IssuePrice      uint64 `env:"DAO_ISSUE_PRICE" envDefault:"0"`
	IssueAmount     uint64 `env:"DAO_ISSUE_AMOUNT" envDefault:"0"`
	ProposalFee     uint64 `env:"DAO_PROPOSAL_FEE" envDefault:"0"`
	MaxSupply       uint64 `env:"DAO_MAX_SUPPLY" envDefault:"0"`
	MinQuorum       uint64 `env:"DAO_MIN_QUORUM" envDefault:"10"`
	MinThreshold    uint64 `env:"DAO_MIN_THRESHOLD" envDefault:"1"`
	MaxExpiry       uint64 `env:"DAO_MAX_EXPIRY_SECONDS" envDefault:"2592000"`
	MinStake        uint64 `env:"DAO_MIN_STAKE" envDefault:"1"`
	PrevotingPeriod uint64 `env:"DAO_PREVOTING_PERIOD_SECONDS" envDefault:"3600"`
}

func (c Governance) Params() governance.DaoConfigParams {
	return governance.DaoConfigParams{
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
	}
}
