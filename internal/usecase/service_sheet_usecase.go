package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quote_desk/internal/domain/catalog"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceSheetNotFound  = errors.New("service sheet not found")
	ErrInvalidServiceSheetID = errors.New("invalid service sheet id")
	ErrDefaultSheetExists    = errors.New("a default service sheet already exists")
	ErrDefaultSheetNotFound  = errors.New("default service sheet not found")
	ErrCustomerSheetExists   = errors.New("customer already has a service sheet")
	ErrSheetServiceNotFound  = errors.New("service not found in sheet")
)

// IServiceSheetUseCase manages service sheets and resolves the catalog a
// customer quotes from.
//
// Rules:
//   - exactly one default sheet, created once and never deleted
//   - at most one non-default sheet per customer
type IServiceSheetUseCase interface {
	Create(ctx context.Context, s entities.ServiceSheet) (entities.ServiceSheet, error)
	GetByID(ctx context.Context, id string) (entities.ServiceSheet, error)
	GetDefault(ctx context.Context) (entities.ServiceSheet, error)
	GetByCustomerID(ctx context.Context, customerID string) (entities.ServiceSheet, error)
	List(ctx context.Context) ([]entities.ServiceSheet, error)
	Update(ctx context.Context, id string, patch entities.ServiceSheetPatch) (entities.ServiceSheet, error)
	Delete(ctx context.Context, id string) error
	AddService(ctx context.Context, sheetID string, svc entities.Service) (entities.ServiceSheet, error)
	UpdateService(ctx context.Context, sheetID, serviceID string, patch entities.ServicePatch) (entities.ServiceSheet, error)
	DeleteService(ctx context.Context, sheetID, serviceID string) (entities.ServiceSheet, error)
	ResolveCatalog(ctx context.Context, customerID string) ([]entities.Service, error)
}

type ServiceSheetUseCase struct {
	repo interfaces.IServiceSheetRepository
}

var _ IServiceSheetUseCase = (*ServiceSheetUseCase)(nil)

func NewServiceSheetUseCase(repo interfaces.IServiceSheetRepository) *ServiceSheetUseCase {
	return &ServiceSheetUseCase{repo: repo}
}

func (u *ServiceSheetUseCase) Create(ctx context.Context, s entities.ServiceSheet) (entities.ServiceSheet, error) {
	if s.IsDefault {
		current, err := u.repo.GetDefault(ctx)
		if err != nil {
			return entities.ServiceSheet{}, err
		}
		if current.ID != "" {
			return entities.ServiceSheet{}, ErrDefaultSheetExists
		}
		s.CustomerID = nil
	} else if s.CustomerID != nil {
		if err := u.ensureNoCustomerSheet(ctx, *s.CustomerID, ""); err != nil {
			return entities.ServiceSheet{}, err
		}
	}

	if strings.TrimSpace(s.ID) == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	for i := range s.Services {
		if strings.TrimSpace(s.Services[i].ID) == "" {
			s.Services[i].ID = uuid.NewString()
		}
		s.Services[i].LastUpdated = now
	}

	created, err := u.repo.Create(ctx, s)
	if errors.Is(err, interfaces.ErrDuplicate) {
		if s.IsDefault {
			return entities.ServiceSheet{}, ErrDefaultSheetExists
		}
		return entities.ServiceSheet{}, ErrCustomerSheetExists
	}
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	return created, nil
}

func (u *ServiceSheetUseCase) ensureNoCustomerSheet(ctx context.Context, customerID, exceptSheetID string) error {
	existing, err := u.repo.FindByCustomerID(ctx, strings.TrimSpace(customerID))
	if err != nil {
		return err
	}
	if existing.ID != "" && existing.ID != exceptSheetID {
		return ErrCustomerSheetExists
	}
	return nil
}

func (u *ServiceSheetUseCase) GetByID(ctx context.Context, id string) (entities.ServiceSheet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceSheet{}, ErrInvalidServiceSheetID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if s.ID == "" {
		return entities.ServiceSheet{}, ErrServiceSheetNotFound
	}
	return s, nil
}

func (u *ServiceSheetUseCase) GetDefault(ctx context.Context) (entities.ServiceSheet, error) {
	s, err := u.repo.GetDefault(ctx)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if s.ID == "" {
		return entities.ServiceSheet{}, ErrDefaultSheetNotFound
	}
	return s, nil
}

func (u *ServiceSheetUseCase) GetByCustomerID(ctx context.Context, customerID string) (entities.ServiceSheet, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.ServiceSheet{}, ErrInvalidCustomerID
	}

	s, err := u.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if s.ID == "" {
		return entities.ServiceSheet{}, ErrServiceSheetNotFound
	}
	return s, nil
}

func (u *ServiceSheetUseCase) List(ctx context.Context) ([]entities.ServiceSheet, error) {
	return u.repo.List(ctx)
}

func (u *ServiceSheetUseCase) Update(ctx context.Context, id string, patch entities.ServiceSheetPatch) (entities.ServiceSheet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceSheet{}, ErrInvalidServiceSheetID
	}

	if patch.CustomerID != nil {
		if err := u.ensureNoCustomerSheet(ctx, *patch.CustomerID, id); err != nil {
			return entities.ServiceSheet{}, err
		}
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.ServiceSheet{}, ErrCustomerSheetExists
	}
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if updated.ID == "" {
		return entities.ServiceSheet{}, ErrServiceSheetNotFound
	}
	return updated, nil
}

// Delete removes a customer sheet. Unknown ids and the default sheet are
// left alone without error.
func (u *ServiceSheetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceSheetID
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceSheetUseCase) AddService(ctx context.Context, sheetID string, svc entities.Service) (entities.ServiceSheet, error) {
	sheetID = strings.TrimSpace(sheetID)
	if sheetID == "" {
		return entities.ServiceSheet{}, ErrInvalidServiceSheetID
	}
	if strings.TrimSpace(svc.ID) == "" {
		svc.ID = uuid.NewString()
	}
	svc.LastUpdated = time.Now().UTC()

	updated, err := u.repo.AddService(ctx, sheetID, svc)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if updated.ID == "" {
		return entities.ServiceSheet{}, ErrServiceSheetNotFound
	}
	return updated, nil
}

func (u *ServiceSheetUseCase) UpdateService(ctx context.Context, sheetID, serviceID string, patch entities.ServicePatch) (entities.ServiceSheet, error) {
	sheet, err := u.GetByID(ctx, sheetID)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServiceSheet{}, ErrInvalidServiceID
	}

	updated, err := u.repo.UpdateService(ctx, sheet.ID, serviceID, patch)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if updated.ID == "" {
		return entities.ServiceSheet{}, ErrSheetServiceNotFound
	}
	return updated, nil
}

// DeleteService removes a service from a sheet. Removing a service the sheet
// does not have returns the sheet unchanged.
func (u *ServiceSheetUseCase) DeleteService(ctx context.Context, sheetID, serviceID string) (entities.ServiceSheet, error) {
	sheet, err := u.GetByID(ctx, sheetID)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServiceSheet{}, ErrInvalidServiceID
	}

	updated, err := u.repo.DeleteService(ctx, sheet.ID, serviceID)
	if err != nil {
		return entities.ServiceSheet{}, err
	}
	if updated.ID == "" {
		return sheet, nil
	}
	return updated, nil
}

func (u *ServiceSheetUseCase) ResolveCatalog(ctx context.Context, customerID string) ([]entities.Service, error) {
	return resolveCatalog(ctx, u.repo, customerID)
}

// resolveCatalog returns the default sheet services, overridden by the
// customer's sheet when customerID has one.
func resolveCatalog(ctx context.Context, sheets interfaces.IServiceSheetRepository, customerID string) ([]entities.Service, error) {
	def, err := sheets.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	var defaultSheet *entities.ServiceSheet
	if def.ID != "" {
		defaultSheet = &def
	}

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return catalog.Resolve(defaultSheet, nil), nil
	}

	custom, err := sheets.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if custom.ID == "" {
		return catalog.Resolve(defaultSheet, nil), nil
	}
	return catalog.Resolve(defaultSheet, &custom), nil
}
