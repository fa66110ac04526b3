package governance

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ProposalStatus string

const (
	ProposalStatusPreVoting ProposalStatus = "prevoting"
	ProposalStatusOpen      ProposalStatus = "open"
	ProposalStatusSucceeded ProposalStatus = "succeeded"
	ProposalStatusFailed    ProposalStatus = "failed"
)

func (s ProposalStatus) String() string {
	return string(s)
}

func (s ProposalStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusSucceeded || s == ProposalStatusFailed
}

type VoteType string

const (
	VoteTypeSingleChoice   VoteType = "single_choice"
	VoteTypeMultipleChoice VoteType = "multiple_choice"
)

func (t VoteType) String() string {
	return string(t)
}

type VoteChoice int

const (
	VoteChoiceFor VoteChoice = iota
	VoteChoiceAgainst
	VoteChoiceAbstain
)

var voteChoiceNames = [...]string{"for", "against", "abstain"}

func (c VoteChoice) Valid() bool {
	return c >= VoteChoiceFor && c <= VoteChoiceAbstain
}

func (c VoteChoice) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return voteChoiceNames[c]
}

func (c VoteChoice) CapitalizedString() string {
	return cases.Title(language.English).String(c.String())
}

func ParseVoteChoice(s string) (VoteChoice, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range voteChoiceNames {
		if n == name {
			return VoteChoice(i), nil
		}
	}
	return 0, ErrInvalidVoteChoice
}

type ProposalKind interface {
	Name() string
	isProposalKind()
}

type Bounty struct {
	Recipient string
	Amount    uint64
}

type Executable struct {
	Instructions []byte
}

type InformationalVote struct{}

const (
	ProposalKindBounty            = "bounty"
	ProposalKindExecutable        = "executable"
	ProposalKindInformationalVote = "informational_vote"
)

func (Bounty) Name() string            { return ProposalKindBounty }
func (Executable) Name() string        { return ProposalKindExecutable }
func (InformationalVote) Name() string { return ProposalKindInformationalVote }

func (Bounty) isProposalKind()            {}
func (Executable) isProposalKind()        {}
func (InformationalVote) isProposalKind() {}
