package memory

import (
	"context"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"
)

type ServiceSheetStore struct {
	t *table[entities.ServiceSheet]
}

var _ interfaces.IServiceSheetRepository = (*ServiceSheetStore)(nil)

func NewServiceSheetStore() *ServiceSheetStore {
	return &ServiceSheetStore{t: newTable(func(s entities.ServiceSheet) string { return s.ID }, cloneSheet)}
}

func (s *ServiceSheetStore) Create(_ context.Context, sheet entities.ServiceSheet) (entities.ServiceSheet, error) {
	sheet = cloneSheet(sheet)
	for i := range sheet.Services {
		sheet.Services[i].SheetID = sheet.ID
	}
	created, ok := s.t.insertUnless(sheet, sheetsConflict)
	if !ok {
		return entities.ServiceSheet{}, interfaces.ErrDuplicate
	}
	return created, nil
}

// sheetsConflict reports whether stored blocks next: a second default sheet,
// a second sheet for the same customer, or a reused id.
func sheetsConflict(stored, next entities.ServiceSheet) bool {
	switch {
	case stored.ID == next.ID:
		return true
	case next.IsDefault:
		return stored.IsDefault
	case next.CustomerID != nil:
		return stored.OwnedBy(*next.CustomerID)
	}
	return false
}

func (s *ServiceSheetStore) GetByID(_ context.Context, id string) (entities.ServiceSheet, error) {
	return s.t.get(id), nil
}

func (s *ServiceSheetStore) GetDefault(_ context.Context) (entities.ServiceSheet, error) {
	return s.t.first(func(sh entities.ServiceSheet) bool { return sh.IsDefault }), nil
}

func (s *ServiceSheetStore) FindByCustomerID(_ context.Context, customerID string) (entities.ServiceSheet, error) {
	return s.t.first(func(sh entities.ServiceSheet) bool { return sh.OwnedBy(customerID) }), nil
}

func (s *ServiceSheetStore) List(_ context.Context) ([]entities.ServiceSheet, error) {
	return s.t.filter(nil), nil
}

func (s *ServiceSheetStore) Update(_ context.Context, id string, patch entities.ServiceSheetPatch) (entities.ServiceSheet, error) {
	updated, ok := s.t.updateUnless(id, func(sh *entities.ServiceSheet) bool {
		patch.Apply(sh)
		for i := range sh.Services {
			sh.Services[i].SheetID = sh.ID
		}
		sh.UpdatedAt = time.Now().UTC()
		return true
	}, sheetsConflict)
	if !ok {
		return entities.ServiceSheet{}, interfaces.ErrDuplicate
	}
	return updated, nil
}

func (s *ServiceSheetStore) Delete(_ context.Context, id string) error {
	s.t.remove(func(sh entities.ServiceSheet) bool { return sh.ID == id && !sh.IsDefault })
	return nil
}

func (s *ServiceSheetStore) AddService(_ context.Context, sheetID string, svc entities.Service) (entities.ServiceSheet, error) {
	return s.t.update(sheetID, func(sh *entities.ServiceSheet) bool {
		svc.SheetID = sh.ID
		sh.Services = append(sh.Services, svc)
		sh.UpdatedAt = time.Now().UTC()
		return true
	}), nil
}

func (s *ServiceSheetStore) UpdateService(_ context.Context, sheetID, serviceID string, patch entities.ServicePatch) (entities.ServiceSheet, error) {
	return s.t.update(sheetID, func(sh *entities.ServiceSheet) bool {
		for i := range sh.Services {
			if sh.Services[i].ID == serviceID {
				patch.Apply(&sh.Services[i])
				now := time.Now().UTC()
				sh.Services[i].LastUpdated = now
				sh.UpdatedAt = now
				return true
			}
		}
		return false
	}), nil
}

func (s *ServiceSheetStore) DeleteService(_ context.Context, sheetID, serviceID string) (entities.ServiceSheet, error) {
	return s.t.update(sheetID, func(sh *entities.ServiceSheet) bool {
		for i := range sh.Services {
			if sh.Services[i].ID == serviceID {
				sh.Services = append(sh.Services[:i], sh.Services[i+1:]...)
				sh.UpdatedAt = time.Now().UTC()
				return true
			}
		}
		return false
	}), nil
}
