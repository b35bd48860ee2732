package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrInvalidCategoryName = errors.New("invalid category name")
)

type ICategoryUseCase interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	GetByName(ctx context.Context, name string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Update(ctx context.Context, id string, patch entities.CategoryPatch) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CategoryUseCase) GetByID(ctx context.Context, id string) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CategoryUseCase) GetByName(ctx context.Context, name string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	c, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	return u.repo.List(ctx)
}

func (u *CategoryUseCase) Update(ctx context.Context, id string, patch entities.CategoryPatch) (entities.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Category{}, ErrInvalidCategoryID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Category{}, err
	}
	if updated.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	return updated, nil
}

// Delete is idempotent: deleting an unknown id succeeds.
func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCategoryID
	}
	return u.repo.Delete(ctx, id)
}
