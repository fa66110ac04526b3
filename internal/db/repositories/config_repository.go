package repositories

import (
	"dao_governance_system/internal/db/models"

	"github.com/go-pg/pg/v10/orm"
)

type configRepository struct {
	repository
}

type ConfigRepository interface {
	Create(request *models.DaoConfig) (*models.DaoConfig, error)
	Update(request *models.DaoConfig) error
	GetOneBySeed(seed uint64) (*models.DaoConfig, error)
	GetOneBySeedForUpdate(seed uint64) (*models.DaoConfig, error)
}

func NewConfigRepository(db orm.DB) ConfigRepository {
	return &configRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *configRepository) Create(request *models.DaoConfig) (*models.DaoConfig, error) {
	_, err := r.db.Model(request).Returning("*").Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *configRepository) Update(request *models.DaoConfig) error {
	_, err := r.db.Model(request).
		Set("proposal_count = ?proposal_count").
		Set("updated_at = now()").
		WherePK().
		Update()
	return err
}

// GetOneBySeed returns nil without error when no DAO uses seed.
func (r *configRepository) GetOneBySeed(seed uint64) (*models.DaoConfig, error) {
	return r.getOneBySeed(seed, false)
}

func (r *configRepository) GetOneBySeedForUpdate(seed uint64) (*models.DaoConfig, error) {
	return r.getOneBySeed(seed, true)
}

func (r *configRepository) getOneBySeed(seed uint64, forUpdate bool) (*models.DaoConfig, error) {
	config := &models.DaoConfig{}

	query := r.db.Model(config).Where("seed = ?", seed)
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

	return config, nil
}
