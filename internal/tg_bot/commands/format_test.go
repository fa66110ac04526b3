package commands

import (
	"dao_governance_system/internal/governance"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProposalKind_Informational(t *testing.T) {
	kind, err := parseProposalKind("informational")
	require.NoError(t, err)
	assert.Equal(t, governance.InformationalVote{}, kind)
}

func TestParseProposalKind_Bounty(t *testing.T) {
	kind, err := parseProposalKind("bounty:addr9:250")
	require.NoError(t, err)
	assert.Equal(t, governance.Bounty{Recipient: "addr9", Amount: 250}, kind)
}

func TestParseProposalKind_BountyWithoutAmount(t *testing.T) {
	_, err := parseProposalKind("bounty:addr9")
	assert.Error(t, err)
}

func TestParseProposalKind_Executable(t *testing.T) {
	kind, err := parseProposalKind("executable:0a0b")
	require.NoError(t, err)
	assert.Equal(t, governance.Executable{Instructions: []byte{0x0a, 0x0b}}, kind)
}

func TestParseProposalKind_Unknown(t *testing.T) {
	_, err := parseProposalKind("lottery")
	assert.Error(t, err)
}

func TestParseProposalID(t *testing.T) {
	id, err := parseProposalID(" #12 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)

	_, err = parseProposalID("twelve")
	assert.Error(t, err)
}

func TestProposalDetails_PreVotingShowsOpening(t *testing.T) {
	proposal := &governance.Proposal{
		ID:          2,
		Name:        "grants",
		Gist:        "ipfs://grants",
		Kind:        governance.InformationalVote{},
		Status:      governance.ProposalStatusPreVoting,
		Quorum:      40,
		Threshold:   100,
		CreatedTime: 0,
		Expiry:      7200,
	}
	config := &governance.DaoConfig{PrevotingPeriod: 3600}

	text := proposalDetails(proposal, config)

	assert.Contains(t, text, "Proposal #2: grants")
	assert.Contains(t, text, "Status: Prevoting")
	assert.Contains(t, text, "Quorum: 40%")
	assert.Contains(t, text, "Voting opens: 01.01.1970 01:00 UTC")
	assert.True(t, strings.HasSuffix(text, "Expires: 01.01.1970 02:00 UTC"))
}

func TestProposalSummary(t *testing.T) {
	proposal := &governance.Proposal{ID: 5, Name: "audit", Status: governance.ProposalStatusOpen, Expiry: 0}
	assert.Equal(t, "#5 audit [Open] ends 01.01.1970 00:00 UTC", proposalSummary(proposal))
}
