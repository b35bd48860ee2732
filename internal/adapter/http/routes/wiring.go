package routes

import (
	"context"
	"fmt"

	"quote_desk/internal/adapter/http/handlers"
	"quote_desk/internal/adapter/persistence/memory"
	"quote_desk/internal/adapter/persistence/repository"
	"quote_desk/internal/infrastructure/config"
	"quote_desk/internal/infrastructure/database"
	"quote_desk/internal/infrastructure/documents"
	"quote_desk/internal/infrastructure/emailparser"
	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/infrastructure/payments"
	"quote_desk/internal/infrastructure/seed"
	"quote_desk/internal/usecase"
	"quote_desk/internal/usecase/interfaces"
)

// Handlers groups every HTTP handler served under /v1.
type Handlers struct {
	Category     *handlers.CategoryHandler
	Customer     *handlers.CustomerHandler
	Service      *handlers.ServiceHandler
	ServiceSheet *handlers.ServiceSheetHandler
	Quote        *handlers.QuoteHandler
	Document     *handlers.DocumentHandler
	Settlement   *handlers.SettlementHandler
	EmailQuote   *handlers.EmailQuoteHandler
}

// BuildHandlers creates the stores selected by cfg, seeds them, and wires
// usecases and handlers on top.
func BuildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	log := logger.For("routes", "BuildHandlers")

	stores := seed.Stores{
		Categories:    memory.NewCategoryStore(),
		Customers:     memory.NewCustomerStore(),
		Services:      memory.NewServiceStore(),
		ServiceSheets: memory.NewServiceSheetStore(),
		Quotes:        memory.NewQuoteStore(),
		EmailQuotes:   memory.NewEmailQuoteStore(),
	}
	var settlements interfaces.ISettlementRepository = memory.NewSettlementStore()

	if cfg.StorageDriver == config.StorageDynamoDB {
		ddb, err := database.NewDynamoDBClient(ctx, database.DynamoDBSettingsFromEnv())
		if err != nil {
			return Handlers{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		stores.Quotes = repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
		settlements = repository.NewSettlementDynamoRepository(ddb, cfg.SettlementsTable)
	}

	data := seed.Demo()
	if cfg.SeedFile != "" {
		loaded, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return Handlers{}, err
		}
		data = loaded
	}
	if err := seed.Apply(ctx, stores, data); err != nil {
		return Handlers{}, fmt.Errorf("seed stores: %w", err)
	}
	log.WithField("seed_file", cfg.SeedFile).WithField("customers", len(data.Customers)).Info("stores seeded")

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken, cfg.PaymentGatewayMock); err != nil {
		log.WithError(err).Warn("mercado pago gateway not configured")
	} else {
		gateway = mp
	}

	n := notify.NewLogNotifier(logger.Get())

	quotes := usecase.NewQuoteUseCase(stores.Quotes, stores.ServiceSheets)
	renderers := map[usecase.DocumentFormat]interfaces.IQuoteRenderer{
		usecase.DocumentFormatXLSX: documents.XLSXRenderer{},
		usecase.DocumentFormatPDF:  documents.NewPDFRenderer(),
	}

	return Handlers{
		Category:     handlers.NewCategoryHandler(usecase.NewCategoryUseCase(stores.Categories), n),
		Customer:     handlers.NewCustomerHandler(usecase.NewCustomerUseCase(stores.Customers), n),
		Service:      handlers.NewServiceHandler(usecase.NewServiceUseCase(stores.Services), n),
		ServiceSheet: handlers.NewServiceSheetHandler(usecase.NewServiceSheetUseCase(stores.ServiceSheets), n),
		Quote:        handlers.NewQuoteHandler(quotes, n),
		Document:     handlers.NewDocumentHandler(usecase.NewDocumentUseCase(quotes, stores.Customers, stores.ServiceSheets, renderers)),
		Settlement:   handlers.NewSettlementHandler(usecase.NewSettlementUseCase(settlements, stores.Quotes, gateway), n),
		EmailQuote:   handlers.NewEmailQuoteHandler(usecase.NewEmailQuoteUseCase(stores.EmailQuotes, quotes, stores.ServiceSheets, emailparser.New()), n),
	}, nil
}
