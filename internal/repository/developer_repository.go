package repository

import (
	"context"
	"errors"

	"github.com/devroster/engine/internal/models"
	appErr "github.com/devroster/engine/pkg/errors"
	"gorm.io/gorm"
)

// DeveloperRepository is the storage collaborator of the developer service.
// GetByID, GetByEmail and Delete report a missing row with CodeNotFound.
type DeveloperRepository interface {
	BaseRepository[models.Developer]
	GetByEmail(ctx context.Context, email string, dest *models.Developer) error
	ListActiveBySpecialty(ctx context.Context, specialty string) ([]models.Developer, error)
	Ping(ctx context.Context) error
}

type developerRepository struct {
	BaseRepository[models.Developer]
	db *gorm.DB
}

func NewDeveloperRepository(db *gorm.DB) DeveloperRepository {
	return &developerRepository{BaseRepository: NewBaseRepository[models.Developer](db), db: db}
}

var _ DeveloperRepository = (*developerRepository)(nil)

func (r *developerRepository) GetByEmail(ctx context.Context, email string, dest *models.Developer) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "developer not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get developer by email failed")
	}
	return nil
}

func (r *developerRepository) ListActiveBySpecialty(ctx context.Context, specialty string) ([]models.Developer, error) {
	var out []models.Developer
	if err := r.db.WithContext(ctx).
		Where("status = ? AND specialty = ?", models.StatusActive, specialty).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list active developers by specialty failed")
	}
	return out, nil
}

func (r *developerRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return appErr.Wrap(err, appErr.CodeUnavailable, "database handle unavailable")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return appErr.Wrap(err, appErr.CodeUnavailable, "database ping failed")
	}
	return nil
}
