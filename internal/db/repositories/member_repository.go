package repositories

import (
	"dao_governance_system/internal/db/models"
	"fmt"

	"github.com/go-pg/pg/v10/orm"
)

type memberRepository struct {
	repository
}

type MemberRepository interface {
	Create(request *models.Member) (*models.Member, error)
	Update(request *models.Member) (*models.Member, error)
	GetOneByTelegramID(telegramID int64) (*models.Member, error)
}

func NewMemberRepository(db orm.DB) MemberRepository {
	return &memberRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *memberRepository) Create(request *models.Member) (*models.Member, error) {
	_, err := r.db.Model(request).Returning("*").Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *memberRepository) Update(request *models.Member) (*models.Member, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	if err != nil {
		return nil, err
	}

	return r.GetOneByTelegramID(request.TelegramID)
}

// GetOneByTelegramID returns nil without error for unknown members.
func (r *memberRepository) GetOneByTelegramID(telegramID int64) (*models.Member, error) {
	member := &models.Member{}

	err := r.db.Model(member).
		Where("telegram_id = ?", telegramID).
		Select()
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return member, nil
}
