package governance

// VoteRecord mirrors the contribution one voter currently has in a
// proposal's tally. There is at most one per (voter, proposal).
type VoteRecord struct {
	Voter      string
	ProposalID uint64
	Amount     uint64
	Choice     VoteChoice
}

func NewVoteRecord(voter string, proposalID, amount uint64, choice VoteChoice) *VoteRecord {
	return &VoteRecord{
		Voter:      voter,
		ProposalID: proposalID,
		Amount:     amount,
		Choice:     choice,
	}
}

func CastVote(config *DaoConfig, proposal *Proposal, previous *VoteRecord, voter string, amount uint64, choice VoteChoice, now uint64) (*VoteRecord, error) {
	if err := config.CheckMinStake(amount); err != nil {
		return nil, err
	}

	if previous == nil {
		if err := proposal.AddVote(config, amount, choice, now); err != nil {
			return nil, err
		}
		return NewVoteRecord(voter, proposal.ID, amount, choice), nil
	}

	if err := proposal.ChangeVote(config, *previous, amount, choice, now); err != nil {
		return nil, err
	}

	record := *previous
	record.Amount = amount
	record.Choice = choice
	return &record, nil
}

func RetractVote(proposal *Proposal, record *VoteRecord) error {
	return proposal.RemoveVote(record.Amount, record.Choice)
}
