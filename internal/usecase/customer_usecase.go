package usecase

import (
	"context"
	"errors"
	"strings"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

type ICustomerUseCase interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
	}
	c.Email = strings.TrimSpace(c.Email)
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}
