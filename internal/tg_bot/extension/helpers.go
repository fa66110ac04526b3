package extension

import (
	"context"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again.")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

var errorTexts = []struct {
	err  error
	text string
}{
	{governance.ErrInvalidName, "Proposal name must be 1 to 32 characters long."},
	{governance.ErrInvalidGist, "Proposal gist must be at most 72 characters long."},
	{governance.ErrInvalidStakeAmount, "Amount is below the minimum stake."},
	{governance.ErrInvalidQuorum, "Quorum is outside the allowed range."},
	{governance.ErrInvalidThreshold, "Threshold is below the minimum allowed."},
	{governance.ErrInvalidExpiry, "Duration is outside the allowed range."},
	{governance.ErrInvalidVoteType, "This proposal does not accept that kind of vote."},
	{governance.ErrInvalidVoteChoice, "Choice must be one of: for, against, abstain."},
	{governance.ErrInvalidProposalStatus, "This proposal is not accepting changes."},
	{governance.ErrInvalidRequiredTime, "Voting has not started yet, the prevoting period is still running."},
	{governance.ErrExpired, "This proposal has expired."},
	{governance.ErrOverflow, "Vote amount is too large."},
	{governance.ErrUnderflow, "Vote amount exceeds what was recorded."},
	{services.ErrDaoNotInitialized, "The DAO is not initialized yet."},
	{services.ErrProposalNotFound, "Proposal not found."},
	{services.ErrVoteNotFound, "You have not voted on this proposal."},
	{services.ErrInsufficientStake, "Your stake does not cover that amount."},
}

// ErrorText maps a domain error to a message for the member. Unknown
// errors get an empty string.
func ErrorText(err error) string {
	for _, e := range errorTexts {
		if errors.Is(err, e.err) {
			return e.text
		}
	}
	return ""
}

// ErrorMessageFor replies with the member facing text of err, or with the
// default error message when err is not a domain error.
func ErrorMessageFor(chatID int64, err error) tgbotapi.Chattable {
	if text := ErrorText(err); text != "" {
		return ErrorMessage(chatID, text)
	}
	return DefaultErrorMessage(chatID)
}
