package services

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/db/repositories"
	"dao_governance_system/internal/governance"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type CreateProposalRequest struct {
	Name      string
	Gist      string
	Kind      governance.ProposalKind
	VoteType  governance.VoteType
	Quorum    uint64
	Threshold uint64
	Duration  uint64
	CreatorID int64
}

type VoteResult struct {
	Proposal  *governance.Proposal
	Record    *governance.VoteRecord
	Finalized bool
}

// Mutations of one proposal are serialized in process and by row locks in
// the database.
type GovernanceService interface {
	InitializeDao(ctx context.Context) (*governance.DaoConfig, error)
	GetConfig(ctx context.Context) (*governance.DaoConfig, error)
	CreateProposal(ctx context.Context, request CreateProposalRequest) (*governance.Proposal, error)
	Vote(ctx context.Context, proposalID uint64, voter string, amount uint64, choice governance.VoteChoice) (*VoteResult, error)
	Unvote(ctx context.Context, proposalID uint64, voter string) (*governance.Proposal, error)
	FinalizeIfExpired(ctx context.Context, proposalID uint64) (*governance.Proposal, bool, error)
	FinalizeExpired(ctx context.Context) ([]*governance.Proposal, error)
	GetProposal(ctx context.Context, proposalID uint64) (*governance.Proposal, error)
	ListProposals(ctx context.Context, status ...governance.ProposalStatus) ([]*governance.Proposal, error)
	GetVoteRecord(ctx context.Context, proposalID uint64, voter string) (*governance.VoteRecord, error)
	ListVoteRecords(ctx context.Context, proposalID uint64) ([]*governance.VoteRecord, error)
	HasActiveVotes(ctx context.Context, voter string) (bool, error)
	ListUnannounced(ctx context.Context) ([]*governance.Proposal, error)
	MarkAnnounced(ctx context.Context, proposalID uint64) error
	CleanupProposal(ctx context.Context, proposalID uint64) (int, error)
	CleanupAnnounced(ctx context.Context) (int, error)
}

type governanceService struct {
	genesis      governance.DaoConfigParams
	repositories repositories.Repositories
	transactor   repositories.Transactor
	stakeService StakeService
	clock        governance.Clock
	locks        *proposalLocks
	logger       *zap.SugaredLogger
}

func NewGovernanceService(
	genesis governance.DaoConfigParams,
	repositories repositories.Repositories,
	transactor repositories.Transactor,
	stakeService StakeService,
	clock governance.Clock,
	logger *zap.SugaredLogger,
) GovernanceService {
	return &governanceService{
		genesis:      genesis,
		repositories: repositories,
		transactor:   transactor,
		stakeService: stakeService,
		clock:        clock,
		locks:        newProposalLocks(),
		logger:       logger,
	}
}

func (s *governanceService) InitializeDao(ctx context.Context) (*governance.DaoConfig, error) {
	var config *governance.DaoConfig

	err := s.transactor.RunInTransaction(ctx, func(r repositories.Repositories) error {
		existing, err := r.Configs.GetOneBySeedForUpdate(s.genesis.Seed)
		if err != nil {
			return err
		}

		if existing != nil {
			config = existing.ToDomain()
			return nil
		}

		config = governance.NewDaoConfig(s.genesis)
		_, err = r.Configs.Create(models.DaoConfigFromDomain(0, config))
		if err == nil {
			s.logger.Infow("dao initialized", "seed", config.Seed)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dao: %w", err)
	}

	return config, nil
}

func (s *governanceService) GetConfig(ctx context.Context) (*governance.DaoConfig, error) {
	config, err := s.repositories.Configs.GetOneBySeed(s.genesis.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to get dao config: %w", err)
	} else if config == nil {
		return nil, ErrDaoNotInitialized
	}

	return config.ToDomain(), nil
}

func (s *governanceService) CreateProposal(ctx context.Context, request CreateProposalRequest) (*governance.Proposal, error) {
	var proposal *governance.Proposal

	err := s.transactor.RunInTransaction(ctx, func(r repositories.Repositories) error {
		configModel, err := r.Configs.GetOneBySeedForUpdate(s.genesis.Seed)
		if err != nil {
			return err
		} else if configModel == nil {
			return ErrDaoNotInitialized
		}

		config := configModel.ToDomain()
		if err = config.ValidateProposalParams(request.Quorum, request.Threshold, request.Duration); err != nil {
			return err
		}

		id, err := config.NextProposalID()
		if err != nil {
			return err
		}
		if err = config.AddProposal(id); err != nil {
			return err
		}

		proposal, err = governance.NewProposal(governance.ProposalParams{
			ID:        id,
			Name:      request.Name,
			Gist:      request.Gist,
			Kind:      request.Kind,
			VoteType:  request.VoteType,
			Quorum:    request.Quorum,
			Threshold: request.Threshold,
			Duration:  request.Duration,
		}, s.clock.Now())
		if err != nil {
			return err
		}

		proposalModel := models.ProposalFromDomain(proposal)
		proposalModel.CreatorID = request.CreatorID
		if _, err = r.Proposals.Create(proposalModel); err != nil {
			return err
		}

		configModel.ProposalCount = config.ProposalCount
		return r.Configs.Update(configModel)
	})
	if err != nil {
		s.logFailure("failed to create proposal", err, "name", request.Name)
		return nil, err
	}

	s.logger.Infow("proposal created", "proposal_id", proposal.ID, "kind", proposal.Kind.Name(), "expiry", proposal.Expiry)
	return proposal, nil
}

func (s *governanceService) Vote(
	ctx context.Context,
	proposalID uint64,
	voter string,
	amount uint64,
	choice governance.VoteChoice,
) (*VoteResult, error) {
	config, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err = config.CheckMinStake(amount); err != nil {
		return nil, err
	}

	staked, err := s.stakeService.GetStake(ctx, voter)
	if err != nil {
		return nil, fmt.Errorf("failed to get stake: %w", err)
	} else if staked < amount {
		return nil, ErrInsufficientStake
	}

	unlock := s.locks.Lock(proposalID)
	defer unlock()

	var (
		proposal  *governance.Proposal
		record    *governance.VoteRecord
		finalized bool
	)

	err = s.transactor.RunInTransaction(ctx, func(r repositories.Repositories) error {
		proposalModel, err := s.loadProposal(r, proposalID)
		if err != nil {
			return err
		}

		proposal, err = proposalModel.ToDomain()
		if err != nil {
			return err
		}

		recordModel, err := r.VoteRecords.GetOne(proposalID, voter)
		if err != nil {
			return err
		}

		var previous *governance.VoteRecord
		if recordModel != nil {
			if previous, err = recordModel.ToDomain(); err != nil {
				return err
			}
		}

		wasTerminal := proposal.Status.IsTerminal()
		record, err = governance.CastVote(config, proposal, previous, voter, amount, choice, s.clock.Now())
		if err != nil {
			return err
		}
		finalized = !wasTerminal && proposal.Status.IsTerminal()

		proposalModel.Apply(proposal)
		if err = r.Proposals.Update(proposalModel); err != nil {
			return err
		}

		if recordModel == nil {
			_, err = r.VoteRecords.Create(models.VoteRecordFromDomain(record))
			return err
		}

		recordModel.Apply(record)
		return r.VoteRecords.Update(recordModel)
	})
	if err != nil {
		s.logFailure("failed to cast vote", err, "proposal_id", proposalID, "voter", voter)
		return nil, err
	}

	s.logger.Infow("vote cast",
		"proposal_id", proposalID,
		"voter", voter,
		"amount", amount,
		"choice", choice.String(),
		"status", proposal.Status.String(),
	)
	if finalized {
		s.logger.Infow("proposal finalized", "proposal_id", proposalID, "status", proposal.Status.String())
	}

	return &VoteResult{Proposal: proposal, Record: record, Finalized: finalized}, nil
}

func (s *governanceService) Unvote(ctx context.Context, proposalID uint64, voter string) (*governance.Proposal, error) {
	unlock := s.locks.Lock(proposalID)
	defer unlock()

	var proposal *governance.Proposal

	err := s.transactor.RunInTransaction(ctx, func(r repositories.Repositories) error {
		proposalModel, err := s.loadProposal(r, proposalID)
		if err != nil {
			return err
		}

		proposal, err = proposalModel.ToDomain()
		if err != nil {
			return err
		}

		recordModel, err := r.VoteRecords.GetOne(proposalID, voter)
		if err != nil {
			return err
		} else if recordModel == nil {
			return ErrVoteNotFound
		}

		record, err := recordModel.ToDomain()
		if err != nil {
			return err
		}

		if err = governance.RetractVote(proposal, record); err != nil {
			return err
		}

		proposalModel.Apply(proposal)
		if err = r.Proposals.Update(proposalModel); err != nil {
			return err
		}

		return r.VoteRecords.Delete(recordModel)
	})
	if err != nil {
		s.logFailure("failed to retract vote", err, "proposal_id", proposalID, "voter", voter)
		return nil, err
	}

	s.logger.Infow("vote retracted", "proposal_id", proposalID, "voter", voter)
	return proposal, nil
}

func (s *governanceService) FinalizeIfExpired(ctx context.Context, proposalID uint64) (*governance.Proposal, bool, error) {
	unlock := s.locks.Lock(proposalID)
	defer unlock()

	var (
		proposal *governance.Proposal
		changed  bool
	)

	err := s.transactor.RunInTransaction(ctx, func(r repositories.Repositories) error {
		configModel, err := r.Configs.GetOneBySeed(s.genesis.Seed)
		if err != nil {
			return err
		} else if configModel == nil {
			return ErrDaoNotInitialized
		}

		proposalModel, err := s.loadProposal(r, proposalID)
		if err != nil {
			return err
		}

		proposal, err = proposalModel.ToDomain()
		if err != nil {
			return err
		}

		changed, err = proposal.FinalizeIfExpired(configModel.ToDomain(), s.clock.Now())
		if err != nil || !changed {
			return err
		}

		proposalModel.Apply(proposal)
		return r.Proposals.Update(proposalModel)
	})
	if err != nil {
		return nil, false, err
	}

	if changed {
		s.logger.Infow("proposal finalized", "proposal_id", proposalID, "status", proposal.Status.String())
	}
	return proposal, changed, nil
}

func (s *governanceService) FinalizeExpired(ctx context.Context) ([]*governance.Proposal, error) {
	pending, err := s.ListProposals(ctx, governance.ProposalStatusPreVoting, governance.ProposalStatusOpen)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var (
		finalized []*governance.Proposal
		errs      []error
	)

	for _, candidate := range pending {
		if candidate.CheckExpiry(now) == nil {
			continue
		}

		proposal, changed, err := s.FinalizeIfExpired(ctx, candidate.ID)
		if err != nil {
			s.logger.Errorw("failed to finalize proposal", "proposal_id", candidate.ID, "error", err)
			errs = append(errs, fmt.Errorf("proposal %d: %w", candidate.ID, err))
			continue
		}

		if changed {
			finalized = append(finalized, proposal)
		}
	}

	return finalized, errors.Join(errs...)
}

func (s *governanceService) GetProposal(ctx context.Context, proposalID uint64) (*governance.Proposal, error) {
	proposalModel, err := s.repositories.Proposals.GetOne(proposalID)
	if err != nil {
		return nil, err
	} else if proposalModel == nil {
		return nil, ErrProposalNotFound
	}

	return proposalModel.ToDomain()
}

func (s *governanceService) ListProposals(ctx context.Context, status ...governance.ProposalStatus) ([]*governance.Proposal, error) {
	proposalModels, err := s.repositories.Proposals.GetMany(status...)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposals: %w", err)
	}

	return s.decodeProposals(proposalModels), nil
}

func (s *governanceService) decodeProposals(proposalModels []*models.Proposal) []*governance.Proposal {
	proposals := make([]*governance.Proposal, 0, len(proposalModels))
	for _, proposalModel := range proposalModels {
		proposal, err := proposalModel.ToDomain()
		if err != nil {
			s.logger.Errorw("failed to decode proposal", "proposal_id", proposalModel.ID, "error", err)
			continue
		}
		proposals = append(proposals, proposal)
	}

	return proposals
}

func (s *governanceService) GetVoteRecord(ctx context.Context, proposalID uint64, voter string) (*governance.VoteRecord, error) {
	recordModel, err := s.repositories.VoteRecords.GetOne(proposalID, voter)
	if err != nil {
		return nil, err
	} else if recordModel == nil {
		return nil, ErrVoteNotFound
	}

	return recordModel.ToDomain()
}

func (s *governanceService) ListVoteRecords(ctx context.Context, proposalID uint64) ([]*governance.VoteRecord, error) {
	recordModels, err := s.repositories.VoteRecords.GetManyByProposal(proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote records: %w", err)
	}

	records := make([]*governance.VoteRecord, 0, len(recordModels))
	for _, recordModel := range recordModels {
		record, err := recordModel.ToDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *governanceService) HasActiveVotes(ctx context.Context, voter string) (bool, error) {
	count, err := s.repositories.VoteRecords.CountActiveByVoter(voter)
	if err != nil {
		return false, fmt.Errorf("failed to count votes: %w", err)
	}

	return count > 0, nil
}

func (s *governanceService) ListUnannounced(ctx context.Context) ([]*governance.Proposal, error) {
	proposalModels, err := s.repositories.Proposals.GetManyUnannounced()
	if err != nil {
		return nil, fmt.Errorf("failed to get unannounced proposals: %w", err)
	}

	return s.decodeProposals(proposalModels), nil
}

func (s *governanceService) MarkAnnounced(ctx context.Context, proposalID uint64) error {
	if err := s.repositories.Proposals.MarkAnnounced(proposalID); err != nil {
		return fmt.Errorf("failed to mark proposal %d announced: %w", proposalID, err)
	}

	return nil
}

// The tally stays on the proposal.
func (s *governanceService) CleanupProposal(ctx context.Context, proposalID uint64) (int, error) {
	unlock := s.locks.Lock(proposalID)
	defer unlock()

	var removed int

	err := s.transactor.RunInTransaction(ctx, func(r repositories.Repositories) error {
		proposalModel, err := s.loadProposal(r, proposalID)
		if err != nil {
			return err
		}

		if !proposalModel.Status.IsTerminal() {
			return governance.ErrInvalidProposalStatus
		}

		if removed, err = r.VoteRecords.DeleteByProposal(proposalID); err != nil {
			return err
		}

		return r.Proposals.MarkArchived(proposalID)
	})
	if err != nil {
		s.logFailure("failed to clean up proposal", err, "proposal_id", proposalID)
		return 0, err
	}

	s.logger.Infow("proposal cleaned up", "proposal_id", proposalID, "vote_records", removed)
	return removed, nil
}

func (s *governanceService) CleanupAnnounced(ctx context.Context) (int, error) {
	proposalModels, err := s.repositories.Proposals.GetManyUnarchived()
	if err != nil {
		return 0, fmt.Errorf("failed to get unarchived proposals: %w", err)
	}

	var (
		archived int
		errs     []error
	)

	for _, proposalModel := range proposalModels {
		if _, err := s.CleanupProposal(ctx, proposalModel.ID); err != nil {
			errs = append(errs, fmt.Errorf("proposal %d: %w", proposalModel.ID, err))
			continue
		}
		archived++
	}

	return archived, errors.Join(errs...)
}

func (s *governanceService) logFailure(msg string, err error, keysAndValues ...any) {
	keysAndValues = append(keysAndValues, "error", err)

	switch {
	case governance.IsValidationError(err) || governance.IsStateError(err) || isRequestError(err):
		s.logger.Infow(msg, keysAndValues...)
	case governance.IsArithmeticError(err):
		s.logger.Errorw(msg, keysAndValues...)
	default:
		s.logger.Warnw(msg, keysAndValues...)
	}
}

func (s *governanceService) loadProposal(r repositories.Repositories, proposalID uint64) (*models.Proposal, error) {
	proposalModel, err := r.Proposals.GetOneForUpdate(proposalID)
	if err != nil {
		return nil, err
	} else if proposalModel == nil {
		return nil, ErrProposalNotFound
	}

	return proposalModel, nil
}
