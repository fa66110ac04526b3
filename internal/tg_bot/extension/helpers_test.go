package extension

import (
	"context"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	"errors"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestErrorText_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("failed to cast vote: %w", governance.ErrExpired)
	assert.Equal(t, "This proposal has expired.", ErrorText(err))
}

func TestErrorText_ServiceError(t *testing.T) {
	assert.Equal(t, "Proposal not found.", ErrorText(services.ErrProposalNotFound))
}

func TestErrorText_UnknownError(t *testing.T) {
	assert.Empty(t, ErrorText(errors.New("connection refused")))
}

func TestErrorMessageFor(t *testing.T) {
	message, ok := ErrorMessageFor(7, services.ErrInsufficientStake).(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(7), message.ChatID)
	assert.Equal(t, "Your stake does not cover that amount.", message.Text)

	message, ok = ErrorMessageFor(7, errors.New("boom")).(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "Something went wrong, please try again.", message.Text)
}
