package governance

import "errors"

var (
	ErrInvalidName         = errors.New("invalid name")
	ErrInvalidGist         = errors.New("invalid gist")
	ErrInvalidStakeAmount  = errors.New("invalid stake amount")
	ErrInvalidQuorum       = errors.New("invalid quorum")
	ErrInvalidThreshold    = errors.New("invalid threshold")
	ErrInvalidExpiry       = errors.New("invalid expiry")
	ErrInvalidProposalSeed = errors.New("invalid proposal seed")
	ErrInvalidVoteType     = errors.New("invalid vote type")
	ErrInvalidVoteChoice   = errors.New("invalid vote choice")

	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrInvalidRequiredTime   = errors.New("prevoting period has not elapsed")
	ErrExpired               = errors.New("proposal expired")

	ErrOverflow  = errors.New("arithmetic overflow")
	ErrUnderflow = errors.New("arithmetic underflow")
)

func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidName,
		ErrInvalidGist,
		ErrInvalidStakeAmount,
		ErrInvalidQuorum,
		ErrInvalidThreshold,
		ErrInvalidExpiry,
		ErrInvalidProposalSeed,
		ErrInvalidVoteType,
		ErrInvalidVoteChoice,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsStateError(err error) bool {
	return errors.Is(err, ErrInvalidProposalStatus) ||
		errors.Is(err, ErrInvalidRequiredTime) ||
		errors.Is(err, ErrExpired)
}

func IsArithmeticError(err error) bool {
	return errors.Is(err, ErrOverflow) || errors.Is(err, ErrUnderflow)
}
