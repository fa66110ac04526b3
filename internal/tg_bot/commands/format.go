package commands

import (
	"dao_governance_system/internal"
	"dao_governance_system/internal/governance"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

func proposalSummary(proposal *governance.Proposal) string {
	return fmt.Sprintf(
		"#%d %s [%s] ends %s",
		proposal.ID,
		proposal.Name,
		proposal.Status.CapitalizedString(),
		internal.FormatUnix(proposal.Expiry),
	)
}

func proposalDetails(proposal *governance.Proposal, config *governance.DaoConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Proposal #%d: %s\n", proposal.ID, proposal.Name)
	if proposal.Gist != "" {
		fmt.Fprintf(&b, "Gist: %s\n", proposal.Gist)
	}
	fmt.Fprintf(&b, "Kind: %s\n", kindDescription(proposal.Kind))
	fmt.Fprintf(&b, "Status: %s\n", proposal.Status.CapitalizedString())
	fmt.Fprintf(&b, "Quorum: %d%%\n", proposal.Quorum)
	fmt.Fprintf(&b, "Threshold: %d\n", proposal.Threshold)
	fmt.Fprintln(&b)

	for _, choice := range []governance.VoteChoice{
		governance.VoteChoiceFor,
		governance.VoteChoiceAgainst,
		governance.VoteChoiceAbstain,
	} {
		fmt.Fprintf(&b, "%s: %d\n", choice.CapitalizedString(), proposal.VoteCounts[choice])
	}
	fmt.Fprintf(&b, "Total: %d\n", proposal.TotalVotes)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Created: %s\n", internal.FormatUnix(proposal.CreatedTime))
	if proposal.Status == governance.ProposalStatusPreVoting && config != nil {
		if opens, err := proposal.VotingStart(config); err == nil {
			fmt.Fprintf(&b, "Voting opens: %s\n", internal.FormatUnix(opens))
		}
	}
	fmt.Fprintf(&b, "Expires: %s", internal.FormatUnix(proposal.Expiry))

	return b.String()
}

func kindDescription(kind governance.ProposalKind) string {
	switch k := kind.(type) {
	case governance.Bounty:
		return fmt.Sprintf("Bounty of %d to %s", k.Amount, k.Recipient)
	case governance.Executable:
		return fmt.Sprintf("Executable (%d bytes)", len(k.Instructions))
	default:
		return "Informational vote"
	}
}

// parseProposalKind reads "informational", "bounty:<recipient>:<amount>"
// or "executable:<hex instructions>".
func parseProposalKind(s string) (governance.ProposalKind, error) {
	name, payload, _ := strings.Cut(s, ":")

	switch strings.ToLower(name) {
	case "informational", governance.ProposalKindInformationalVote:
		return governance.InformationalVote{}, nil
	case governance.ProposalKindBounty:
		recipient, amount, ok := strings.Cut(payload, ":")
		if !ok || recipient == "" {
			return nil, fmt.Errorf("bounty needs a recipient and an amount")
		}
		value, err := strconv.ParseUint(amount, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bounty amount %q", amount)
		}
		return governance.Bounty{Recipient: recipient, Amount: value}, nil
	case governance.ProposalKindExecutable:
		instructions, err := hex.DecodeString(payload)
		if err != nil || len(instructions) == 0 {
			return nil, fmt.Errorf("executable needs hex encoded instructions")
		}
		return governance.Executable{Instructions: instructions}, nil
	}

	return nil, fmt.Errorf("unknown proposal kind %q", name)
}

func parseProposalID(s string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid proposal id %q", s)
	}
	return id, nil
}
