package models

import (
	"dao_governance_system/internal/governance"
	"fmt"
	"time"
)

type Proposal struct {
	tableName struct{} `pg:"proposals"`

	ID              uint64                    `json:"id" pg:",pk"`
	Name            string                    `json:"name" pg:",notnull"`
	Gist            string                    `json:"gist" pg:",notnull,use_zero"`
	Kind            string                    `json:"kind" pg:",notnull"`
	BountyRecipient string                    `json:"bounty_recipient"`
	BountyAmount    uint64                    `json:"bounty_amount" pg:",notnull,use_zero"`
	Instructions    []byte                    `json:"instructions"`
	VoteType        governance.VoteType       `json:"vote_type" pg:",notnull"`
	Status          governance.ProposalStatus `json:"status" pg:",notnull"`
	Quorum          uint8                     `json:"quorum" pg:",notnull,use_zero"`
	Threshold       uint64                    `json:"threshold" pg:",notnull,use_zero"`
	TotalVotes      uint64                    `json:"total_votes" pg:",notnull,use_zero"`
	ForVotes        uint64                    `json:"for_votes" pg:",notnull,use_zero"`
	AgainstVotes    uint64                    `json:"against_votes" pg:",notnull,use_zero"`
	AbstainVotes    uint64                    `json:"abstain_votes" pg:",notnull,use_zero"`
	Expiry          uint64                    `json:"expiry" pg:",notnull,use_zero"`
	CreatedTime     uint64                    `json:"created_time" pg:",notnull,use_zero"`
	CreatorID       int64                     `json:"creator_id"`
	AnnouncedAt     time.Time                 `json:"announced_at"`
	ArchivedAt      time.Time                 `json:"archived_at"`
	CreatedAt       time.Time                 `json:"created_at" pg:"default:now()"`
	UpdatedAt       time.Time                 `json:"updated_at" pg:"default:now()"`
}

func ProposalFromDomain(proposal *governance.Proposal) *Proposal {
	model := &Proposal{
		ID:           proposal.ID,
		Name:         proposal.Name,
		Gist:         proposal.Gist,
		VoteType:     proposal.VoteType,
		Status:       proposal.Status,
		Quorum:       proposal.Quorum,
		Threshold:    proposal.Threshold,
		TotalVotes:   proposal.TotalVotes,
		ForVotes:     proposal.ForVotes(),
		AgainstVotes: proposal.AgainstVotes(),
		AbstainVotes: proposal.AbstainVotes(),
		Expiry:       proposal.Expiry,
		CreatedTime:  proposal.CreatedTime,
	}

	switch kind := proposal.Kind.(type) {
	case governance.Bounty:
		model.Kind = governance.ProposalKindBounty
		model.BountyRecipient = kind.Recipient
		model.BountyAmount = kind.Amount
	case governance.Executable:
		model.Kind = governance.ProposalKindExecutable
		model.Instructions = kind.Instructions
	default:
		model.Kind = governance.ProposalKindInformationalVote
	}

	return model
}

// Apply copies the mutable state of proposal onto p.
func (p *Proposal) Apply(proposal *governance.Proposal) {
	p.Status = proposal.Status
	p.TotalVotes = proposal.TotalVotes
	p.ForVotes = proposal.ForVotes()
	p.AgainstVotes = proposal.AgainstVotes()
	p.AbstainVotes = proposal.AbstainVotes()
}

func (p *Proposal) ToDomain() (*governance.Proposal, error) {
	var kind governance.ProposalKind

	switch p.Kind {
	case governance.ProposalKindBounty:
		kind = governance.Bounty{Recipient: p.BountyRecipient, Amount: p.BountyAmount}
	case governance.ProposalKindExecutable:
		kind = governance.Executable{Instructions: p.Instructions}
	case governance.ProposalKindInformationalVote:
		kind = governance.InformationalVote{}
	default:
		return nil, fmt.Errorf("proposal %d has unknown kind %q", p.ID, p.Kind)
	}

	switch p.Status {
	case governance.ProposalStatusPreVoting,
		governance.ProposalStatusOpen,
		governance.ProposalStatusSucceeded,
		governance.ProposalStatusFailed:
	default:
		return nil, fmt.Errorf("proposal %d has unknown status %q", p.ID, p.Status)
	}

	return &governance.Proposal{
		ID:          p.ID,
		Name:        p.Name,
		Gist:        p.Gist,
		Kind:        kind,
		VoteType:    p.VoteType,
		Status:      p.Status,
		Quorum:      p.Quorum,
		Threshold:   p.Threshold,
		TotalVotes:  p.TotalVotes,
		Expiry:      p.Expiry,
		CreatedTime: p.CreatedTime,
		VoteCounts:  [3]uint64{p.ForVotes, p.AgainstVotes, p.AbstainVotes},
	}, nil
}
