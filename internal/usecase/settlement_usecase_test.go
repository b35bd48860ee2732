package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"quote_desk/internal/adapter/persistence/memory"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"
	mock_interfaces "quote_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedQuote() entities.Quote {
	return entities.Quote{
		ID:         "q1",
		CustomerID: "c1",
		Status:     entities.QuoteStatusApproved,
		Services: []entities.QuoteService{
			{ServiceID: "a", Quantity: 2, Price: 100},
			{ServiceID: "b", Quantity: 1, Price: 50},
		},
		Total: 250,
	}
}

func TestSettlementUseCase_CreateFromQuote(t *testing.T) {
	t.Run("copies the quoted lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewSettlementUseCase(repo, quotes, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(entities.Settlement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.Settlement) (entities.Settlement, error) {
			return s, nil
		})

		got, err := uc.CreateFromQuote(context.Background(), " q1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.QuoteID != "q1" || got.CustomerID != "c1" {
			t.Fatalf("unexpected settlement: %+v", got)
		}
		if got.Status != entities.SettlementStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
		if len(got.Services) != 2 || got.Services[0].ActualPrice != nil || got.Services[1].Price != 50 {
			t.Fatalf("unexpected lines: %+v", got.Services)
		}
	})

	t.Run("second settlement for the same quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewSettlementUseCase(repo, quotes, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(entities.Settlement{ID: "s1", QuoteID: "q1"}, nil)

		if _, err := uc.CreateFromQuote(context.Background(), "q1"); !errors.Is(err, ErrSettlementAlreadyExists) {
			t.Fatalf("expected ErrSettlementAlreadyExists, got %v", err)
		}
	})

	t.Run("store rejects a settlement created in between", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewSettlementUseCase(repo, quotes, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuote(), nil)
		repo.EXPECT().GetByQuoteID(gomock.Any(), "q1").Return(entities.Settlement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Settlement{}, interfaces.ErrDuplicate)

		if _, err := uc.CreateFromQuote(context.Background(), "q1"); !errors.Is(err, ErrSettlementAlreadyExists) {
			t.Fatalf("expected ErrSettlementAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewSettlementUseCase(nil, quotes, nil)

		quotes.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Quote{}, nil)
		if _, err := uc.CreateFromQuote(context.Background(), "nope"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestSettlementUseCase_CreateFromQuote_ConcurrentCallsCreateOne(t *testing.T) {
	ctx := context.Background()
	quotes := memory.NewQuoteStore()
	if _, err := quotes.Create(ctx, approvedQuote()); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	settlements := memory.NewSettlementStore()
	uc := NewSettlementUseCase(settlements, quotes, nil)

	const workers = 50
	var (
		wg      sync.WaitGroup
		created atomic.Int32
	)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateFromQuote(ctx, "q1")
			switch {
			case err == nil:
				created.Add(1)
			case !errors.Is(err, ErrSettlementAlreadyExists):
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Load() != 1 {
		t.Fatalf("expected exactly one settlement to be created, got %d", created.Load())
	}
	all, _ := settlements.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one stored settlement, got %d", len(all))
	}
}

func TestSettlementUseCase_AddCharge_ConcurrentCallsKeepEveryCharge(t *testing.T) {
	ctx := context.Background()
	settlements := memory.NewSettlementStore()
	if _, err := settlements.Create(ctx, entities.Settlement{
		ID: "s1", QuoteID: "q1", CustomerID: "c1", Status: entities.SettlementStatusPending,
		Services: []entities.SettlementService{{ServiceID: "a", Quantity: 1, Price: 100}},
	}); err != nil {
		t.Fatalf("seed settlement: %v", err)
	}
	uc := NewSettlementUseCase(settlements, nil, nil)

	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.AddCharge(ctx, "s1", "Tip", 1); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := uc.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.AdditionalCharges) != workers || got.Total != 100+workers {
		t.Fatalf("expected %d charges and total %d, got %d and %v", workers, 100+workers, len(got.AdditionalCharges), got.Total)
	}
}

func TestSettlementUseCase_GetByQuoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockISettlementRepository(ctrl)
	uc := NewSettlementUseCase(repo, nil, nil)

	repo.EXPECT().GetByQuoteID(gomock.Any(), "q9").Return(entities.Settlement{}, nil)
	if _, err := uc.GetByQuoteID(context.Background(), "q9"); !errors.Is(err, ErrSettlementNotFound) {
		t.Fatalf("expected ErrSettlementNotFound, got %v", err)
	}
}

func TestSettlementUseCase_Update(t *testing.T) {
	uc := NewSettlementUseCase(nil, nil, nil)
	bad := entities.SettlementStatus("paid")
	if _, err := uc.Update(context.Background(), "s1", entities.SettlementPatch{Status: &bad}); !errors.Is(err, ErrInvalidSettlementStatus) {
		t.Fatalf("expected ErrInvalidSettlementStatus, got %v", err)
	}
}

func TestSettlementUseCase_AddCharge(t *testing.T) {
	t.Run("appends to existing charges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		uc := NewSettlementUseCase(repo, nil, nil)

		current := entities.Settlement{
			ID:                "s1",
			AdditionalCharges: []entities.AdditionalCharge{{ID: "x", Description: "Parking", Amount: 10}},
		}
		repo.EXPECT().Mutate(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn func(*entities.Settlement) error) (entities.Settlement, error) {
				s := current
				if err := fn(&s); err != nil {
					return entities.Settlement{}, err
				}
				if len(s.AdditionalCharges) != 2 {
					t.Fatalf("expected 2 charges, got %+v", s.AdditionalCharges)
				}
				added := s.AdditionalCharges[1]
				if added.ID == "" || added.Description != "Late checkout" || added.Amount != 40 {
					t.Fatalf("unexpected charge %+v", added)
				}
				return s, nil
			})

		if _, err := uc.AddCharge(context.Background(), "s1", " Late checkout ", 40); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing settlement", func(t *testing.T) {
		uc := NewSettlementUseCase(memory.NewSettlementStore(), nil, nil)
		if _, err := uc.AddCharge(context.Background(), "nope", "Tip", 5); !errors.Is(err, ErrSettlementNotFound) {
			t.Fatalf("expected ErrSettlementNotFound, got %v", err)
		}
	})

	t.Run("rejects a blank description", func(t *testing.T) {
		uc := NewSettlementUseCase(nil, nil, nil)
		if _, err := uc.AddCharge(context.Background(), "s1", "  ", 10); !errors.Is(err, ErrInvalidCharge) {
			t.Fatalf("expected ErrInvalidCharge, got %v", err)
		}
	})
}

func TestSettlementUseCase_CollectPayment(t *testing.T) {
	completed := entities.Settlement{ID: "s1", QuoteID: "q1", CustomerID: "c1", Status: entities.SettlementStatusCompleted, Total: 290}

	t.Run("no gateway", func(t *testing.T) {
		uc := NewSettlementUseCase(nil, nil, nil)
		if _, err := uc.CollectPayment(context.Background(), "s1", nil); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("pending settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementUseCase(repo, nil, gw)

		pending := completed
		pending.Status = entities.SettlementStatusPending
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(pending, nil)

		if _, err := uc.CollectPayment(context.Background(), "s1", nil); !errors.Is(err, ErrSettlementNotCompleted) {
			t.Fatalf("expected ErrSettlementNotCompleted, got %v", err)
		}
	})

	t.Run("payload must be an object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementUseCase(repo, nil, gw)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(completed, nil)
		if _, err := uc.CollectPayment(context.Background(), "s1", json.RawMessage(`[1,2]`)); !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("charges the settlement total", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementUseCase(repo, nil, gw)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(completed, nil)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(body, &req); err != nil {
					t.Fatalf("gateway got invalid json: %v", err)
				}
				if req["transaction_amount"] != 290.0 {
					t.Fatalf("expected transaction_amount 290, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "s1" {
					t.Fatalf("expected external_reference s1, got %v", req["external_reference"])
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("payload fields should pass through, got %v", req)
				}
				payer, _ := req["payer"].(map[string]any)
				if payer["type"] != "customer" {
					t.Fatalf("expected payer type default, got %v", payer)
				}
				return "123", "approved", json.RawMessage(`{"id":123}`), nil
			})
		repo.EXPECT().Update(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.SettlementPatch) (entities.Settlement, error) {
				if p.Payment == nil || p.Payment.ID != "123" || p.Payment.Status != "approved" {
					t.Fatalf("unexpected payment patch %+v", p.Payment)
				}
				s := completed
				s.Payment = p.Payment
				return s, nil
			})

		got, err := uc.CollectPayment(context.Background(), "s1", json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payment == nil || got.Payment.ID != "123" {
			t.Fatalf("expected stored payment, got %+v", got.Payment)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementUseCase(repo, nil, gw)

		paid := completed
		paid.Payment = &entities.SettlementPayment{ID: "1", Status: "approved"}
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(paid, nil)

		if _, err := uc.CollectPayment(context.Background(), "s1", nil); !errors.Is(err, ErrSettlementAlreadyPaid) {
			t.Fatalf("expected ErrSettlementAlreadyPaid, got %v", err)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISettlementRepository(ctrl)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSettlementUseCase(repo, nil, gw)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(completed, nil)
		gw.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"Invalid users involved","status":400,"code":2034}`))

		if _, err := uc.CollectPayment(context.Background(), "s1", nil); !errors.Is(err, ErrPaymentGatewayInvalidUsers) {
			t.Fatalf("expected ErrPaymentGatewayInvalidUsers, got %v", err)
		}
	})
}

func TestEnsurePayerDefaults_SandboxEmail(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-abc")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

	req := map[string]any{}
	ensurePayerDefaults(req)

	payer := req["payer"].(map[string]any)
	if payer["email"] != "test_user_br@testuser.com" {
		t.Fatalf("expected sandbox payer email, got %v", payer)
	}
}

func TestNormalizeSandboxPayerFromUserID(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-abc")
	t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "42")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "buyer@test.com")

	req := map[string]any{"payer": map[string]any{"id": 42}}
	normalizeSandboxPayerFromUserID(req)

	payer := req["payer"].(map[string]any)
	if _, ok := payer["id"]; ok || payer["email"] != "buyer@test.com" {
		t.Fatalf("expected payer id swapped for email, got %v", payer)
	}
}
