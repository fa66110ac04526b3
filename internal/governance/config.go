package governance

type DaoConfigParams struct {
	Seed            uint64
	IssuePrice      uint64
	IssueAmount     uint64
	ProposalFee     uint64
	MaxSupply       uint64
	MinQuorum       uint64
	MinThreshold    uint64
	MaxExpiry       uint64
	MinStake        uint64
	PrevotingPeriod uint64
}

// Everything except ProposalCount is fixed at genesis.
type DaoConfig struct {
	Seed            uint64
	IssuePrice      uint64
	IssueAmount     uint64
	ProposalFee     uint64
	MaxSupply       uint64
	MinQuorum       uint64
	MinThreshold    uint64
	MaxExpiry       uint64
	MinStake        uint64
	PrevotingPeriod uint64
	ProposalCount   uint64
}

func NewDaoConfig(params DaoConfigParams) *DaoConfig {
	return &DaoConfig{
		Seed:            params.Seed,
		IssuePrice:      params.IssuePrice,
		IssueAmount:     params.IssueAmount,
		ProposalFee:     params.ProposalFee,
		MaxSupply:       params.MaxSupply,
		MinQuorum:       params.MinQuorum,
		MinThreshold:    params.MinThreshold,
		MaxExpiry:       params.MaxExpiry,
		MinStake:        params.MinStake,
		PrevotingPeriod: params.PrevotingPeriod,
		ProposalCount:   0,
	}
}

func (c *DaoConfig) CheckMinStake(amount uint64) error {
	if amount < c.MinStake {
		return ErrInvalidStakeAmount
	}
	return nil
}

func (c *DaoConfig) CheckMinQuorum(quorum uint64) error {
	if quorum < c.MinQuorum {
		return ErrInvalidQuorum
	}
	return nil
}

func (c *DaoConfig) CheckMinThreshold(threshold uint64) error {
	if threshold < c.MinThreshold {
		return ErrInvalidThreshold
	}
	return nil
}

func (c *DaoConfig) CheckMaxExpiry(expiry uint64) error {
	if expiry > c.MaxExpiry {
		return ErrInvalidExpiry
	}
	return nil
}

func (c *DaoConfig) ValidateProposalParams(quorum, threshold, duration uint64) error {
	if err := c.CheckMinQuorum(quorum); err != nil {
		return err
	}
	if err := c.CheckMinThreshold(threshold); err != nil {
		return err
	}
	return c.CheckMaxExpiry(duration)
}

func (c *DaoConfig) NextProposalID() (uint64, error) {
	return checkedAdd(c.ProposalCount, 1)
}

// candidateID must equal the incremented counter. The counter is left
// untouched on failure.
func (c *DaoConfig) AddProposal(candidateID uint64) error {
	next, err := c.NextProposalID()
	if err != nil {
		return err
	}
	if next != candidateID {
		return ErrInvalidProposalSeed
	}
	c.ProposalCount = next
	return nil
}
