package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists")
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id string) (*models.Company, error)
	FindByEmail(ctx context.Context, email string) (*models.Company, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *models.Company) error {
	err := r.db.WithContext(ctx).Create(company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}
