package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quote_desk/internal/adapter/persistence/memory"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/validation"
	mock_interfaces "quote_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func defaultSheet() entities.ServiceSheet {
	return entities.ServiceSheet{
		ID:        "default",
		IsDefault: true,
		Services: []entities.Service{
			{ID: "a", Name: "A", Category: "Tour", Location: "Cancun", BasePrice: 100},
			{ID: "b", Name: "B", Category: "Tour", Location: "Cancun", BasePrice: 50},
		},
	}
}

func customSheet(customerID string) entities.ServiceSheet {
	return entities.ServiceSheet{
		ID:         "custom",
		CustomerID: strPtr(customerID),
		Services: []entities.Service{
			{ID: "a2", Name: "A", Category: "Tour", Location: "Cancun", BasePrice: 80},
			{ID: "c", Name: "C", Category: "Transfer", Location: "Cancun", BasePrice: 30},
		},
	}
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("merges repeated services and derives total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})

		got, err := uc.Create(context.Background(), entities.Quote{
			CustomerID: " c1 ",
			Services: []entities.QuoteService{
				{ServiceID: "a", Quantity: 2, Price: 100},
				{ServiceID: "b", Quantity: 3, Price: 50},
				{ServiceID: "a", Quantity: 1, Price: 999},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.CustomerID != "c1" || got.Status != entities.QuoteStatusDraft {
			t.Fatalf("unexpected quote: %+v", got)
		}
		if len(got.Services) != 2 || got.Services[0].Quantity != 3 || got.Services[0].Price != 100 {
			t.Fatalf("expected merged line a x3 @100, got %+v", got.Services)
		}
		if got.Total != 450 {
			t.Fatalf("expected total 450, got %v", got.Total)
		}
	})

	t.Run("invalid line is rejected before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		_, err := uc.Create(context.Background(), entities.Quote{
			CustomerID: "c1",
			Services:   []entities.QuoteService{{ServiceID: "a", Quantity: 0, Price: 10}},
		})
		var ves validation.Errors
		if !errors.As(err, &ves) {
			t.Fatalf("expected validation errors, got %v", err)
		}
		if ves[0].Key() != "services.0.quantity" {
			t.Fatalf("unexpected path %q", ves[0].Key())
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil)

	if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
		t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quote{}, nil)
	if _, err := uc.GetByID(context.Background(), "q1"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "q1", "archived"); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), "q1", gomock.Any()).Return(entities.Quote{}, nil)
		if _, err := uc.UpdateStatus(context.Background(), "q1", entities.QuoteStatusSent); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

// mutateOn makes a Mutate expectation run the mutator against a copy of q,
// the way the stores do.
func mutateOn(q entities.Quote) func(context.Context, string, func(*entities.Quote) error) (entities.Quote, error) {
	return func(_ context.Context, _ string, fn func(*entities.Quote) error) (entities.Quote, error) {
		current := q
		current.Services = append([]entities.QuoteService(nil), q.Services...)
		if err := fn(&current); err != nil {
			return entities.Quote{}, err
		}
		return current, nil
	}
}

func TestQuoteUseCase_Update(t *testing.T) {
	existing := entities.Quote{
		ID: "q1", CustomerID: "x", Status: entities.QuoteStatusDraft,
		Services: []entities.QuoteService{{ServiceID: "a", Quantity: 1, Price: 100}},
	}

	t.Run("folds patched services and derives total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Mutate(gomock.Any(), "q1", gomock.Any()).DoAndReturn(mutateOn(existing))
		uc := NewQuoteUseCase(repo, nil)

		got, err := uc.Update(context.Background(), " q1 ", entities.QuotePatch{Services: []entities.QuoteService{
			{ServiceID: "b", Quantity: 1, Price: 50},
			{ServiceID: "b", Quantity: 2, Price: 70},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Services) != 1 || got.Services[0].Quantity != 3 || got.Total != 150 {
			t.Fatalf("unexpected quote %+v", got)
		}
	})

	t.Run("invalid merged quote is not stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Mutate(gomock.Any(), "q1", gomock.Any()).DoAndReturn(mutateOn(existing))
		uc := NewQuoteUseCase(repo, nil)

		_, err := uc.Update(context.Background(), "q1", entities.QuotePatch{Services: []entities.QuoteService{
			{ServiceID: "b", Quantity: 0, Price: 50},
		}})
		var ves validation.Errors
		if !errors.As(err, &ves) {
			t.Fatalf("expected validation errors, got %v", err)
		}
		if ves[0].Key() != "services.0.quantity" {
			t.Fatalf("unexpected path %q", ves[0].Key())
		}
	})

	t.Run("blank customer is rejected", func(t *testing.T) {
		ctx := context.Background()
		store := memory.NewQuoteStore()
		if _, err := store.Create(ctx, existing); err != nil {
			t.Fatalf("seed: %v", err)
		}
		uc := NewQuoteUseCase(store, nil)

		_, err := uc.Update(ctx, "q1", entities.QuotePatch{CustomerID: strPtr("")})
		var ves validation.Errors
		if !errors.As(err, &ves) || ves[0].Key() != "customer_id" {
			t.Fatalf("expected customer_id validation error, got %v", err)
		}
		stored, _ := store.GetByID(ctx, "q1")
		if stored.CustomerID != "x" {
			t.Fatalf("invalid update reached the store: %+v", stored)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		uc := NewQuoteUseCase(memory.NewQuoteStore(), nil)
		if _, err := uc.Update(context.Background(), "nope", entities.QuotePatch{}); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_AddService(t *testing.T) {
	existing := entities.Quote{
		ID:         "q1",
		CustomerID: "x",
		Status:     entities.QuoteStatusDraft,
		Services:   []entities.QuoteService{{ServiceID: "b", Quantity: 1, Price: 45}},
	}

	setup := func(t *testing.T) (*mock_interfaces.MockIQuoteRepository, *QuoteUseCase) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		sheets := mock_interfaces.NewMockIServiceSheetRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(existing, nil)
		sheets.EXPECT().GetDefault(gomock.Any()).Return(defaultSheet(), nil)
		sheets.EXPECT().FindByCustomerID(gomock.Any(), "x").Return(customSheet("x"), nil)
		return repo, NewQuoteUseCase(repo, sheets)
	}

	t.Run("prices from the customer catalog", func(t *testing.T) {
		repo, uc := setup(t)
		repo.EXPECT().Mutate(gomock.Any(), "q1", gomock.Any()).DoAndReturn(mutateOn(existing))

		date := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
		got, err := uc.AddService(context.Background(), "q1", ServiceSelection{ServiceID: "a2", Quantity: 2, Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Services) != 2 || got.Services[1].ServiceID != "a2" || got.Services[1].Price != 80 {
			t.Fatalf("unexpected services %+v", got.Services)
		}
		if got.Total != 205 {
			t.Fatalf("expected total 205, got %v", got.Total)
		}
	})

	t.Run("same service sums quantity and keeps the first price", func(t *testing.T) {
		repo, uc := setup(t)
		repo.EXPECT().Mutate(gomock.Any(), "q1", gomock.Any()).DoAndReturn(mutateOn(existing))

		price := 10.0
		got, err := uc.AddService(context.Background(), "q1", ServiceSelection{ServiceID: "b", Quantity: 3, CustomPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Services) != 1 || got.Services[0].Quantity != 4 || got.Services[0].Price != 45 {
			t.Fatalf("unexpected services %+v", got.Services)
		}
	})

	t.Run("service outside the catalog", func(t *testing.T) {
		_, uc := setup(t)
		if _, err := uc.AddService(context.Background(), "q1", ServiceSelection{ServiceID: "zzz", Quantity: 1}); !errors.Is(err, ErrServiceNotInCatalog) {
			t.Fatalf("expected ErrServiceNotInCatalog, got %v", err)
		}
	})
}

func TestQuoteUseCase_AddService_ConcurrentCallsKeepEveryUnit(t *testing.T) {
	ctx := context.Background()
	sheets := memory.NewServiceSheetStore()
	if _, err := sheets.Create(ctx, defaultSheet()); err != nil {
		t.Fatalf("seed sheets: %v", err)
	}
	quotes := memory.NewQuoteStore()
	if _, err := quotes.Create(ctx, entities.Quote{ID: "q1", CustomerID: "c1", Status: entities.QuoteStatusDraft}); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	uc := NewQuoteUseCase(quotes, sheets)

	const workers = 200
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.AddService(ctx, "q1", ServiceSelection{ServiceID: "a", Quantity: 1}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetByID(ctx, "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Services) != 1 || got.Services[0].Quantity != workers {
		t.Fatalf("expected one line with quantity %d, got %+v", workers, got.Services)
	}
	if got.Total != workers*100 {
		t.Fatalf("expected total %d, got %v", workers*100, got.Total)
	}
}

func TestQuoteUseCase_RemoveService(t *testing.T) {
	existing := entities.Quote{
		ID: "q1", CustomerID: "x", Status: entities.QuoteStatusDraft,
		Services: []entities.QuoteService{
			{ServiceID: "a", Quantity: 2, Price: 100},
			{ServiceID: "b", Quantity: 3, Price: 50},
		},
	}

	t.Run("out of range leaves the quote untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Mutate(gomock.Any(), "q1", gomock.Any()).DoAndReturn(mutateOn(existing))
		uc := NewQuoteUseCase(repo, nil)

		if _, err := uc.RemoveService(context.Background(), "q1", 5); !errors.Is(err, ErrServiceIndexOutOfRange) {
			t.Fatalf("expected ErrServiceIndexOutOfRange, got %v", err)
		}
	})

	t.Run("removes by position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		repo.EXPECT().Mutate(gomock.Any(), "q1", gomock.Any()).DoAndReturn(mutateOn(existing))
		uc := NewQuoteUseCase(repo, nil)

		got, err := uc.RemoveService(context.Background(), "q1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Services) != 1 || got.Services[0].ServiceID != "b" || got.Total != 150 {
			t.Fatalf("unexpected quote %+v", got)
		}
	})

	t.Run("missing quote", func(t *testing.T) {
		uc := NewQuoteUseCase(memory.NewQuoteStore(), nil)
		if _, err := uc.RemoveService(context.Background(), "q1", 0); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
