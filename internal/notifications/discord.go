package notifications

import (
	"context"
	"dao_governance_system/internal/governance"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type discordNotifier struct {
	send          func(channelID, content string) error
	channelID     string
	communityName string
	logger        *zap.SugaredLogger
}

func NewDiscordNotifier(session *discordgo.Session, channelID, communityName string, logger *zap.SugaredLogger) Notifier {
	send := func(channelID, content string) error {
		_, err := session.ChannelMessageSend(channelID, content)
		return err
	}
	return newDiscordNotifier(send, channelID, communityName, logger)
}

func newDiscordNotifier(send func(channelID, content string) error, channelID, communityName string, logger *zap.SugaredLogger) *discordNotifier {
	return &discordNotifier{
		send:          send,
		channelID:     channelID,
		communityName: communityName,
		logger:        logger,
	}
}

func (n *discordNotifier) ProposalFinalized(ctx context.Context, proposal *governance.Proposal) error {
	if err := n.send(n.channelID, proposalFinalizedText(n.communityName, proposal)); err != nil {
		n.logger.Errorw("could not send discord message", "proposal_id", proposal.ID, "error", err)
		return fmt.Errorf("failed to notify discord: %w", err)
	}

	return nil
}
