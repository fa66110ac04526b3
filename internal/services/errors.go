package services

import "errors"

var (
	ErrDaoNotInitialized = errors.New("dao is not initialized")
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrVoteNotFound      = errors.New("vote not found")
	ErrInsufficientStake = errors.New("insufficient stake")
)

func isRequestError(err error) bool {
	return errors.Is(err, ErrProposalNotFound) ||
		errors.Is(err, ErrVoteNotFound) ||
		errors.Is(err, ErrInsufficientStake)
}
