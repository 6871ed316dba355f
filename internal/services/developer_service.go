package services

import (
	"context"

	"github.com/devroster/engine/internal/models"
	"github.com/devroster/engine/internal/repository"
	appErr "github.com/devroster/engine/pkg/errors"
	"github.com/devroster/engine/pkg/logger"
	"go.uber.org/zap"
)

// Messages surfaced to API clients.
const (
	MsgDeveloperNotFound = "Developer not found"
	MsgDuplicateEmail    = "Developer with defined email is already exists"
)

// DeveloperService holds the business rules for developer records.
type DeveloperService interface {
	CreateDeveloper(ctx context.Context, dev *models.Developer) (*models.Developer, error)
	UpdateDeveloper(ctx context.Context, dev *models.Developer) (*models.Developer, error)
	GetDeveloperByID(ctx context.Context, id int) (*models.Developer, error)
	GetDeveloperByEmail(ctx context.Context, email string) (*models.Developer, error)
	ListActiveDevelopers(ctx context.Context) ([]models.Developer, error)
	ListActiveBySpecialty(ctx context.Context, specialty string) ([]models.Developer, error)
	SoftDeleteByID(ctx context.Context, id int) error
	HardDeleteByID(ctx context.Context, id int) error
}

type developerService struct {
	repo repository.DeveloperRepository
}

func NewDeveloperService(repo repository.DeveloperRepository) DeveloperService {
	return &developerService{repo: repo}
}

var _ DeveloperService = (*developerService)(nil)

func notFound() *appErr.AppError {
	return appErr.New(appErr.CodeNotFound, MsgDeveloperNotFound)
}

// CreateDeveloper rejects an email held by any stored record, deleted ones included.
// The lookup and the insert are separate calls; concurrent creates can race.
func (s *developerService) CreateDeveloper(ctx context.Context, dev *models.Developer) (*models.Developer, error) {
	logger.L().Info("create developer", zap.String("email", dev.Email))

	var existing models.Developer
	err := s.repo.GetByEmail(ctx, dev.Email, &existing)
	switch {
	case err == nil:
		return nil, appErr.New(appErr.CodeAlreadyExists, MsgDuplicateEmail).WithMeta("id", existing.ID)
	case !appErr.IsCode(err, appErr.CodeNotFound):
		return nil, err
	}

	if dev.Status == "" {
		dev.Status = models.StatusActive
	}
	if err := s.repo.Create(ctx, dev); err != nil {
		return nil, err
	}

	logger.L().Info("developer created", zap.Int("id", dev.ID))
	return dev, nil
}

// UpdateDeveloper replaces every field of an existing record. Email uniqueness is not rechecked.
func (s *developerService) UpdateDeveloper(ctx context.Context, dev *models.Developer) (*models.Developer, error) {
	logger.L().Info("update developer", zap.Int("id", dev.ID))

	ok, err := s.repo.Exists(ctx, dev.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound()
	}
	if err := s.repo.Update(ctx, dev); err != nil {
		return nil, err
	}
	return dev, nil
}

func (s *developerService) GetDeveloperByID(ctx context.Context, id int) (*models.Developer, error) {
	var d models.Developer
	if err := s.repo.GetByID(ctx, id, &d); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, notFound()
		}
		return nil, err
	}
	return &d, nil
}

func (s *developerService) GetDeveloperByEmail(ctx context.Context, email string) (*models.Developer, error) {
	var d models.Developer
	if err := s.repo.GetByEmail(ctx, email, &d); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, notFound()
		}
		return nil, err
	}
	return &d, nil
}

// ListActiveDevelopers scans every row and keeps the active ones.
func (s *developerService) ListActiveDevelopers(ctx context.Context) ([]models.Developer, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Developer, 0, len(all))
	for _, d := range all {
		if d.IsActive() {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *developerService) ListActiveBySpecialty(ctx context.Context, specialty string) ([]models.Developer, error) {
	return s.repo.ListActiveBySpecialty(ctx, specialty)
}

func (s *developerService) SoftDeleteByID(ctx context.Context, id int) error {
	logger.L().Info("soft delete developer", zap.Int("id", id))

	d, err := s.GetDeveloperByID(ctx, id)
	if err != nil {
		return err
	}
	d.Status = models.StatusDeleted
	return s.repo.Update(ctx, d)
}

func (s *developerService) HardDeleteByID(ctx context.Context, id int) error {
	logger.L().Info("hard delete developer", zap.Int("id", id))

	if _, err := s.GetDeveloperByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return notFound()
		}
		return err
	}
	return nil
}
