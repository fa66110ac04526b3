package notifications

import (
	"context"
	"dao_governance_system/internal/governance"
	"errors"
	"fmt"
)

// Notifier announces proposals that reached a terminal status.
type Notifier interface {
	ProposalFinalized(ctx context.Context, proposal *governance.Proposal) error
}

type multiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier fans out to every notifier and joins their errors.
func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (n *multiNotifier) ProposalFinalized(ctx context.Context, proposal *governance.Proposal) error {
	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.ProposalFinalized(ctx, proposal); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func proposalFinalizedText(communityName string, proposal *governance.Proposal) string {
	return fmt.Sprintf(
		"%s proposal #%d \"%s\" has %s.\n\nFor: %d\nAgainst: %d\nAbstain: %d\nTotal: %d",
		communityName,
		proposal.ID,
		proposal.Name,
		proposal.Status.String(),
		proposal.ForVotes(),
		proposal.AgainstVotes(),
		proposal.AbstainVotes(),
		proposal.TotalVotes,
	)
}
