package interfaces

import (
	"context"

	"quote_desk/internal/domain/entities"
)

// Catalog stores follow the same lookup contract as IQuoteRepository: misses
// are zero values, updates and deletes of unknown ids are no-ops.

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Update(ctx context.Context, id string, patch entities.CategoryPatch) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, patch entities.CustomerPatch) (entities.Customer, error)
}

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, id string, patch entities.ServicePatch) (entities.Service, error)
}

// IServiceSheetRepository also owns the services inside each sheet.
// Delete ignores the default sheet. Service operations on an unknown sheet or
// service id are no-ops returning a zero sheet. Create and Update fail with
// ErrDuplicate when the write would leave two default sheets or two sheets
// for one customer.
type IServiceSheetRepository interface {
	Create(ctx context.Context, s entities.ServiceSheet) (entities.ServiceSheet, error)
	GetByID(ctx context.Context, id string) (entities.ServiceSheet, error)
	GetDefault(ctx context.Context) (entities.ServiceSheet, error)
	// FindByCustomerID returns the first non-default sheet of the customer.
	FindByCustomerID(ctx context.Context, customerID string) (entities.ServiceSheet, error)
	List(ctx context.Context) ([]entities.ServiceSheet, error)
	Update(ctx context.Context, id string, patch entities.ServiceSheetPatch) (entities.ServiceSheet, error)
	Delete(ctx context.Context, id string) error
	AddService(ctx context.Context, sheetID string, svc entities.Service) (entities.ServiceSheet, error)
	UpdateService(ctx context.Context, sheetID, serviceID string, patch entities.ServicePatch) (entities.ServiceSheet, error)
	DeleteService(ctx context.Context, sheetID, serviceID string) (entities.ServiceSheet, error)
}

// IEmailQuoteRepository stores received quote requests. CompareAndSetStatus
// moves an email from one status to another only when it is still in from;
// it returns a zero EmailQuote when the id is unknown or the status moved.
type IEmailQuoteRepository interface {
	Create(ctx context.Context, e entities.EmailQuote) (entities.EmailQuote, error)
	GetByID(ctx context.Context, id string) (entities.EmailQuote, error)
	List(ctx context.Context) ([]entities.EmailQuote, error)
	UpdateStatus(ctx context.Context, id string, status entities.EmailQuoteStatus) (entities.EmailQuote, error)
	CompareAndSetStatus(ctx context.Context, id string, from, to entities.EmailQuoteStatus) (entities.EmailQuote, error)
}
