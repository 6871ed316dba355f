// Package memory provides an in-process developer store for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/devroster/engine/internal/models"
	"github.com/devroster/engine/internal/repository"
	appErr "github.com/devroster/engine/pkg/errors"
)

var _ repository.DeveloperRepository = (*DeveloperRepository)(nil)

// DeveloperRepository keeps developers in a map keyed by id.
// Ids are assigned from a counter and never reused.
type DeveloperRepository struct {
	mu     sync.RWMutex
	rows   map[int]models.Developer
	nextID int
}

// NewDeveloperRepository creates an empty store.
func NewDeveloperRepository() *DeveloperRepository {
	return &DeveloperRepository{rows: make(map[int]models.Developer), nextID: 1}
}

func toID(id any) (int, error) {
	switch v := id.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	default:
		return 0, appErr.New(appErr.CodeInvalid, fmt.Sprintf("unsupported id type %T", id))
	}
}

func (r *DeveloperRepository) Create(_ context.Context, obj *models.Developer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if obj.ID == 0 {
		obj.ID = r.nextID
	}
	if obj.ID >= r.nextID {
		r.nextID = obj.ID + 1
	}
	r.rows[obj.ID] = *obj
	return nil
}

func (r *DeveloperRepository) GetByID(_ context.Context, id any, dest *models.Developer) error {
	key, err := toID(id)
	if err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.rows[key]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "entity not found")
	}
	*dest = d
	return nil
}

// Update behaves like an upsert, matching gorm's Save.
func (r *DeveloperRepository) Update(ctx context.Context, obj *models.Developer) error {
	if obj.ID == 0 {
		return r.Create(ctx, obj)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[obj.ID] = *obj
	if obj.ID >= r.nextID {
		r.nextID = obj.ID + 1
	}
	return nil
}

func (r *DeveloperRepository) Delete(_ context.Context, id any) error {
	key, err := toID(id)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[key]; !ok {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("entity %v not found", id))
	}
	delete(r.rows, key)
	return nil
}

func (r *DeveloperRepository) Exists(_ context.Context, id any) (bool, error) {
	key, err := toID(id)
	if err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[key]
	return ok, nil
}

func (r *DeveloperRepository) List(_ context.Context) ([]models.Developer, error) {
	return r.filter(func(models.Developer) bool { return true }), nil
}

func (r *DeveloperRepository) GetByEmail(_ context.Context, email string, dest *models.Developer) error {
	found := r.filter(func(d models.Developer) bool { return d.Email == email })
	if len(found) == 0 {
		return appErr.New(appErr.CodeNotFound, "developer not found")
	}
	*dest = found[0]
	return nil
}

func (r *DeveloperRepository) ListActiveBySpecialty(_ context.Context, specialty string) ([]models.Developer, error) {
	return r.filter(func(d models.Developer) bool {
		return d.Status == models.StatusActive && d.Specialty == specialty
	}), nil
}

func (r *DeveloperRepository) Ping(context.Context) error { return nil }

// Len returns the number of stored rows.
func (r *DeveloperRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

// filter returns matching rows ordered by id.
func (r *DeveloperRepository) filter(keep func(models.Developer) bool) []models.Developer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Developer, 0, len(r.rows))
	for _, d := range r.rows {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
