package memory

import (
	"context"
	"strings"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"
)

type CategoryStore struct {
	t *table[entities.Category]
}

var _ interfaces.ICategoryRepository = (*CategoryStore)(nil)

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{t: newTable(func(c entities.Category) string { return c.ID }, nil)}
}

func (s *CategoryStore) Create(_ context.Context, c entities.Category) (entities.Category, error) {
	return s.t.insert(c), nil
}

func (s *CategoryStore) GetByID(_ context.Context, id string) (entities.Category, error) {
	return s.t.get(id), nil
}

func (s *CategoryStore) GetByName(_ context.Context, name string) (entities.Category, error) {
	return s.t.first(func(c entities.Category) bool { return strings.EqualFold(c.Name, name) }), nil
}

func (s *CategoryStore) List(_ context.Context) ([]entities.Category, error) {
	return s.t.filter(nil), nil
}

func (s *CategoryStore) Update(_ context.Context, id string, patch entities.CategoryPatch) (entities.Category, error) {
	return s.t.update(id, func(c *entities.Category) bool {
		patch.Apply(c)
		c.UpdatedAt = time.Now().UTC()
		return true
	}), nil
}

func (s *CategoryStore) Delete(_ context.Context, id string) error {
	s.t.remove(func(c entities.Category) bool { return c.ID == id })
	return nil
}

type CustomerStore struct {
	t *table[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerStore)(nil)

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{t: newTable(func(c entities.Customer) string { return c.ID }, nil)}
}

func (s *CustomerStore) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	return s.t.insert(c), nil
}

func (s *CustomerStore) GetByID(_ context.Context, id string) (entities.Customer, error) {
	return s.t.get(id), nil
}

func (s *CustomerStore) List(_ context.Context) ([]entities.Customer, error) {
	return s.t.filter(nil), nil
}

func (s *CustomerStore) Update(_ context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error) {
	return s.t.update(id, func(c *entities.Customer) bool {
		patch.Apply(c)
		return true
	}), nil
}

type ServiceStore struct {
	t *table[entities.Service]
}

var _ interfaces.IServiceRepository = (*ServiceStore)(nil)

func NewServiceStore() *ServiceStore {
	return &ServiceStore{t: newTable(func(s entities.Service) string { return s.ID }, nil)}
}

func (s *ServiceStore) Create(_ context.Context, svc entities.Service) (entities.Service, error) {
	return s.t.insert(svc), nil
}

func (s *ServiceStore) GetByID(_ context.Context, id string) (entities.Service, error) {
	return s.t.get(id), nil
}

func (s *ServiceStore) List(_ context.Context) ([]entities.Service, error) {
	return s.t.filter(nil), nil
}

func (s *ServiceStore) Update(_ context.Context, id string, patch entities.ServicePatch) (entities.Service, error) {
	return s.t.update(id, func(svc *entities.Service) bool {
		patch.Apply(svc)
		svc.LastUpdated = time.Now().UTC()
		return true
	}), nil
}
