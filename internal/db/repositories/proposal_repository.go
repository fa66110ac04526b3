package repositories

import (
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/governance"

	"github.com/go-pg/pg/v10/orm"
)

type proposalRepository struct {
	repository
}

type ProposalRepository interface {
	Create(request *models.Proposal) (*models.Proposal, error)
	// Update persists the status and the tally of request.
	Update(request *models.Proposal) error
	GetOne(proposalID uint64) (*models.Proposal, error)
	GetOneForUpdate(proposalID uint64) (*models.Proposal, error)
	GetMany(status ...governance.ProposalStatus) ([]*models.Proposal, error)
	// GetManyUnannounced returns terminal proposals nobody was told about yet.
	GetManyUnannounced() ([]*models.Proposal, error)
	// GetManyUnarchived returns announced proposals still holding vote records.
	GetManyUnarchived() ([]*models.Proposal, error)
	MarkAnnounced(proposalID uint64) error
	MarkArchived(proposalID uint64) error
}

func NewProposalRepository(db orm.DB) ProposalRepository {
	return &proposalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *proposalRepository) Create(request *models.Proposal) (*models.Proposal, error) {
	_, err := r.db.Model(request).Returning("*").Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *proposalRepository) Update(request *models.Proposal) error {
	_, err := r.db.Model(request).
		Set("status = ?status").
		Set("total_votes = ?total_votes").
		Set("for_votes = ?for_votes").
		Set("against_votes = ?against_votes").
		Set("abstain_votes = ?abstain_votes").
		Set("updated_at = now()").
		WherePK().
		Update()
	return err
}

// GetOne returns nil without error when the proposal does not exist.
func (r *proposalRepository) GetOne(proposalID uint64) (*models.Proposal, error) {
	return r.getOne(proposalID, false)
}

func (r *proposalRepository) GetOneForUpdate(proposalID uint64) (*models.Proposal, error) {
	return r.getOne(proposalID, true)
}

func (r *proposalRepository) getOne(proposalID uint64, forUpdate bool) (*models.Proposal, error) {
	proposal := &models.Proposal{}

	query := r.db.Model(proposal).Where("id = ?", proposalID)
	if forUpdate {
		query = query.For("UPDATE")
	}

	err := query.Select()
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return proposal, nil
}

func (r *proposalRepository) GetMany(status ...governance.ProposalStatus) ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	query := r.db.Model(&proposals)
	if len(status) > 0 {
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			for _, s := range status {
				q = q.WhereOr("status = ?", s)
			}
			return q, nil
		})
	}

	err := query.OrderExpr("id ASC").Select()

	return proposals, err
}

func (r *proposalRepository) GetManyUnannounced() ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.Model(&proposals).
		WhereIn("status IN (?)", []governance.ProposalStatus{governance.ProposalStatusSucceeded, governance.ProposalStatusFailed}).
		Where("announced_at IS NULL").
		OrderExpr("id ASC").
		Select()

	return proposals, err
}

func (r *proposalRepository) GetManyUnarchived() ([]*models.Proposal, error) {
	proposals := make([]*models.Proposal, 0)

	err := r.db.Model(&proposals).
		Where("announced_at IS NOT NULL").
		Where("archived_at IS NULL").
		OrderExpr("id ASC").
		Select()

	return proposals, err
}

func (r *proposalRepository) MarkAnnounced(proposalID uint64) error {
	_, err := r.db.Model((*models.Proposal)(nil)).
		Set("announced_at = now()").
		Where("id = ?", proposalID).
		Where("announced_at IS NULL").
		Update()
	return err
}

func (r *proposalRepository) MarkArchived(proposalID uint64) error {
	_, err := r.db.Model((*models.Proposal)(nil)).
		Set("archived_at = now()").
		Where("id = ?", proposalID).
		Update()
	return err
}
