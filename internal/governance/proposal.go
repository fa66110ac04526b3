package governance

import "errors"

const (
	MaxNameLength = 32
	MaxGistLength = 72
	MaxQuorum     = 100
)

// Proposal is a single governance item. Status moves forward only:
// PreVoting -> Open -> Succeeded | Failed.
//
// A Proposal is not safe for concurrent use; callers serialize mutations
// of one proposal (one lock per proposal id).
type Proposal struct {
	ID          uint64
	Name        string
	Gist        string
	Kind        ProposalKind
	VoteType    VoteType
	Status      ProposalStatus
	Quorum      uint8
	Threshold   uint64
	TotalVotes  uint64
	Expiry      uint64
	CreatedTime uint64
	VoteCounts  [3]uint64
}

type ProposalParams struct {
	ID        uint64
	Name      string
	Gist      string
	Kind      ProposalKind
	VoteType  VoteType
	Quorum    uint64
	Threshold uint64
	Duration  uint64
}

func NewProposal(params ProposalParams, now uint64) (*Proposal, error) {
	if len(params.Name) == 0 || len(params.Name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	if len(params.Gist) > MaxGistLength {
		return nil, ErrInvalidGist
	}
	if params.Quorum > MaxQuorum {
		return nil, ErrInvalidQuorum
	}
	if params.Duration == 0 {
		return nil, ErrInvalidExpiry
	}

	expiry, err := checkedAdd(now, params.Duration)
	if err != nil {
		return nil, err
	}

	kind := params.Kind
	if kind == nil {
		kind = InformationalVote{}
	}

	return &Proposal{
		ID:          params.ID,
		Name:        params.Name,
		Gist:        params.Gist,
		Kind:        kind,
		VoteType:    VoteTypeSingleChoice,
		Status:      ProposalStatusPreVoting,
		Quorum:      uint8(params.Quorum),
		Threshold:   params.Threshold,
		TotalVotes:  0,
		Expiry:      expiry,
		CreatedTime: now,
		VoteCounts:  [3]uint64{},
	}, nil
}

func (p *Proposal) ForVotes() uint64     { return p.VoteCounts[VoteChoiceFor] }
func (p *Proposal) AgainstVotes() uint64 { return p.VoteCounts[VoteChoiceAgainst] }
func (p *Proposal) AbstainVotes() uint64 { return p.VoteCounts[VoteChoiceAbstain] }

// QuorumTarget is the weight For or Against must reach:
// (total - abstain) * quorum / 100, truncated.
func (p *Proposal) QuorumTarget() uint64 {
	if p.AbstainVotes() >= p.TotalVotes {
		return 0
	}
	return mulDiv(p.TotalVotes-p.AbstainVotes(), uint64(p.Quorum), MaxQuorum)
}

func (p *Proposal) VotingStart(config *DaoConfig) (uint64, error) {
	return checkedAdd(p.CreatedTime, config.PrevotingPeriod)
}

func (p *Proposal) TryInitialize(config *DaoConfig, now uint64) error {
	if err := p.IsVotable(); err != nil {
		return err
	}

	requiredTime, err := p.VotingStart(config)
	if err != nil {
		return err
	}
	if now < requiredTime {
		return ErrInvalidRequiredTime
	}

	p.Status = ProposalStatusOpen
	return nil
}

func (p *Proposal) TryFinalize(now uint64) {
	if p.Status != ProposalStatusOpen {
		return
	}

	target := p.QuorumTarget()
	expired := p.CheckExpiry(now) != nil

	switch {
	case p.TotalVotes >= p.Threshold && p.ForVotes() >= target && !expired:
		p.Status = ProposalStatusSucceeded
	case (p.TotalVotes < p.Threshold && expired) || p.AgainstVotes() >= target:
		p.Status = ProposalStatusFailed
	}
}

func (p *Proposal) FinalizeIfExpired(config *DaoConfig, now uint64) (bool, error) {
	if p.Status.IsTerminal() || p.CheckExpiry(now) == nil {
		return false, nil
	}

	next := *p
	if next.Status == ProposalStatusPreVoting {
		if err := next.TryInitialize(config, now); err != nil {
			if errors.Is(err, ErrInvalidRequiredTime) {
				return false, nil
			}
			return false, err
		}
	}

	next.TryFinalize(now)
	if next.Status == ProposalStatusOpen {
		// expired proposals can no longer succeed
		next.Status = ProposalStatusFailed
	}

	*p = next
	return true, nil
}

func (p *Proposal) CheckExpiry(now uint64) error {
	if now >= p.Expiry {
		return ErrExpired
	}
	return nil
}

func (p *Proposal) IsVotable() error {
	return p.requireStatus(ProposalStatusPreVoting)
}

func (p *Proposal) IsOpen() error {
	return p.requireStatus(ProposalStatusOpen)
}

func (p *Proposal) IsSucceeded() error {
	return p.requireStatus(ProposalStatusSucceeded)
}

func (p *Proposal) IsFailed() error {
	return p.requireStatus(ProposalStatusFailed)
}

func (p *Proposal) IsSingleChoice() error {
	if p.VoteType != VoteTypeSingleChoice {
		return ErrInvalidVoteType
	}
	return nil
}

func (p *Proposal) IsMultiChoice() error {
	if p.VoteType != VoteTypeMultipleChoice {
		return ErrInvalidVoteType
	}
	return nil
}

func (p *Proposal) requireStatus(status ProposalStatus) error {
	if p.Status != status {
		return ErrInvalidProposalStatus
	}
	return nil
}

func (p *Proposal) AddVote(config *DaoConfig, amount uint64, choice VoteChoice, now uint64) error {
	next := *p
	if err := next.addVote(config, amount, choice, now); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Proposal) addVote(config *DaoConfig, amount uint64, choice VoteChoice, now uint64) error {
	if !choice.Valid() {
		return ErrInvalidVoteChoice
	}
	if p.Status == ProposalStatusPreVoting {
		if err := p.TryInitialize(config, now); err != nil {
			return err
		}
	}
	if err := p.IsOpen(); err != nil {
		return err
	}

	total, err := checkedAdd(p.TotalVotes, amount)
	if err != nil {
		return err
	}
	bucket, err := checkedAdd(p.VoteCounts[choice], amount)
	if err != nil {
		return err
	}

	p.TotalVotes = total
	p.VoteCounts[choice] = bucket
	p.TryFinalize(now)
	return nil
}

// RemoveVote does not re-evaluate finalization.
func (p *Proposal) RemoveVote(amount uint64, choice VoteChoice) error {
	next := *p
	if err := next.removeVote(amount, choice); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Proposal) removeVote(amount uint64, choice VoteChoice) error {
	if !choice.Valid() {
		return ErrInvalidVoteChoice
	}
	if err := p.IsOpen(); err != nil {
		return err
	}

	total, err := checkedSub(p.TotalVotes, amount)
	if err != nil {
		return err
	}
	bucket, err := checkedSub(p.VoteCounts[choice], amount)
	if err != nil {
		return err
	}

	p.TotalVotes = total
	p.VoteCounts[choice] = bucket
	return nil
}

func (p *Proposal) ChangeVote(config *DaoConfig, previous VoteRecord, amount uint64, choice VoteChoice, now uint64) error {
	next := *p
	if err := next.removeVote(previous.Amount, previous.Choice); err != nil {
		return err
	}
	if err := next.addVote(config, amount, choice, now); err != nil {
		return err
	}
	*p = next
	return nil
}
