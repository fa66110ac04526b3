package repositories

import (
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/governance"

	"github.com/go-pg/pg/v10/orm"
)

type voteRecordRepository struct {
	repository
}

type VoteRecordRepository interface {
	Create(request *models.VoteRecord) (*models.VoteRecord, error)
	Update(request *models.VoteRecord) error
	Delete(request *models.VoteRecord) error
	GetOne(proposalID uint64, voter string) (*models.VoteRecord, error)
	GetManyByProposal(proposalID uint64) ([]*models.VoteRecord, error)
	DeleteByProposal(proposalID uint64) (int, error)
	// CountActiveByVoter counts votes voter holds on proposals still running.
	CountActiveByVoter(voter string) (int, error)
}

func NewVoteRecordRepository(db orm.DB) VoteRecordRepository {
	return &voteRecordRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRecordRepository) Create(request *models.VoteRecord) (*models.VoteRecord, error) {
	_, err := r.db.Model(request).Returning("*").Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *voteRecordRepository) Update(request *models.VoteRecord) error {
	_, err := r.db.Model(request).
		Set("amount = ?amount").
		Set("choice = ?choice").
		Set("updated_at = now()").
		WherePK().
		Update()
	return err
}

func (r *voteRecordRepository) Delete(request *models.VoteRecord) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

// GetOne returns nil without error when voter has no active vote.
func (r *voteRecordRepository) GetOne(proposalID uint64, voter string) (*models.VoteRecord, error) {
	record := &models.VoteRecord{}

	err := r.db.Model(record).
		Where("proposal_id = ?", proposalID).
		Where("voter = ?", voter).
		Select()
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *voteRecordRepository) GetManyByProposal(proposalID uint64) ([]*models.VoteRecord, error) {
	records := make([]*models.VoteRecord, 0)

	err := r.db.Model(&records).
		Where("proposal_id = ?", proposalID).
		OrderExpr("created_at ASC").
		Select()

	return records, err
}

func (r *voteRecordRepository) DeleteByProposal(proposalID uint64) (int, error) {
	result, err := r.db.Model((*models.VoteRecord)(nil)).
		Where("proposal_id = ?", proposalID).
		Delete()
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *voteRecordRepository) CountActiveByVoter(voter string) (int, error) {
	return r.db.Model((*models.VoteRecord)(nil)).
		Join("JOIN proposals AS p ON p.id = vote_record.proposal_id").
		Where("vote_record.voter = ?", voter).
		WhereIn("p.status IN (?)", []governance.ProposalStatus{governance.ProposalStatusPreVoting, governance.ProposalStatusOpen}).
		Count()
}
