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
	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")
)

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if strings.TrimSpace(s.ID) == "" {
		s.ID = uuid.NewString()
	}
	s.LastUpdated = time.Now().UTC()
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}
