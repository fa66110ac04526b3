package repositories

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const uniqueViolationCode = "23505"

var ErrAlreadyExists = errors.New("already exists")

type repository struct {
	db orm.DB
}

// Repositories bundles repositories sharing one connection or transaction.
type Repositories struct {
	Configs     ConfigRepository
	Proposals   ProposalRepository
	VoteRecords VoteRecordRepository
	Members     MemberRepository
}

func NewRepositories(db orm.DB) Repositories {
	return Repositories{
		Configs:     NewConfigRepository(db),
		Proposals:   NewProposalRepository(db),
		VoteRecords: NewVoteRecordRepository(db),
		Members:     NewMemberRepository(db),
	}
}

type Transactor interface {
	// RunInTransaction commits when fn returns nil and rolls back otherwise.
	RunInTransaction(ctx context.Context, fn func(repositories Repositories) error) error
}

type transactor struct {
	db *pg.DB
}

func NewTransactor(db *pg.DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) RunInTransaction(ctx context.Context, fn func(repositories Repositories) error) error {
	return t.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(NewRepositories(tx))
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, pg.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolationCode
}
