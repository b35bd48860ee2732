// Package seed fills empty stores with the demo catalog, or with the contents
// of a JSON (comments allowed) seed file.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"

	"github.com/tailscale/hujson"
)

const DefaultSheetID = "default"

type Data struct {
	Categories    []entities.Category     `json:"categories"`
	Customers     []entities.Customer     `json:"customers"`
	ServiceSheets []entities.ServiceSheet `json:"service_sheets"`
	Quotes        []entities.Quote        `json:"quotes"`
	EmailQuotes   []entities.EmailQuote   `json:"email_quotes"`
}

type Stores struct {
	Categories    interfaces.ICategoryRepository
	Customers     interfaces.ICustomerRepository
	Services      interfaces.IServiceRepository
	ServiceSheets interfaces.IServiceSheetRepository
	Quotes        interfaces.IQuoteRepository
	EmailQuotes   interfaces.IEmailQuoteRepository
}

// Parse reads seed data written as JSON with comments and trailing commas.
func Parse(data []byte) (Data, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Data{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var d Data
	if err := json.Unmarshal(standardized, &d); err != nil {
		return Data{}, fmt.Errorf("invalid seed JSON: %w", err)
	}
	return d, nil
}

func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Apply writes d into the stores. Rows whose id already exists are skipped,
// so applying the same data twice is harmless. The services of the default
// sheet are also registered as standalone services, and an empty default
// sheet is created when d has none.
func Apply(ctx context.Context, s Stores, d Data) error {
	for _, c := range d.Categories {
		if existing, err := s.Categories.GetByID(ctx, c.ID); err != nil {
			return err
		} else if existing.ID != "" {
			continue
		}
		if _, err := s.Categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}

	for _, c := range d.Customers {
		if existing, err := s.Customers.GetByID(ctx, c.ID); err != nil {
			return err
		} else if existing.ID != "" {
			continue
		}
		if _, err := s.Customers.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
	}

	if err := applySheets(ctx, s, d.ServiceSheets); err != nil {
		return err
	}

	for _, q := range d.Quotes {
		if existing, err := s.Quotes.GetByID(ctx, q.ID); err != nil {
			return err
		} else if existing.ID != "" {
			continue
		}
		if _, err := s.Quotes.Create(ctx, q); err != nil {
			return fmt.Errorf("seed quote %s: %w", q.ID, err)
		}
	}

	for _, e := range d.EmailQuotes {
		if existing, err := s.EmailQuotes.GetByID(ctx, e.ID); err != nil {
			return err
		} else if existing.ID != "" {
			continue
		}
		if _, err := s.EmailQuotes.Create(ctx, e); err != nil {
			return fmt.Errorf("seed email quote %s: %w", e.ID, err)
		}
	}
	return nil
}

func applySheets(ctx context.Context, s Stores, sheets []entities.ServiceSheet) error {
	hasDefault := false
	for _, sh := range sheets {
		if sh.IsDefault {
			if hasDefault {
				return fmt.Errorf("seed sheet %s: only one default sheet is allowed", sh.ID)
			}
			hasDefault = true
		}
	}

	current, err := s.ServiceSheets.GetDefault(ctx)
	if err != nil {
		return err
	}
	if current.ID != "" {
		hasDefault = true
	}
	if !hasDefault {
		now := time.Now().UTC()
		sheets = append([]entities.ServiceSheet{{
			ID: DefaultSheetID, Name: "Default service sheet", IsDefault: true, CreatedAt: now, UpdatedAt: now,
		}}, sheets...)
	}

	for _, sh := range sheets {
		if existing, err := s.ServiceSheets.GetByID(ctx, sh.ID); err != nil {
			return err
		} else if existing.ID != "" {
			continue
		}
		if sh.IsDefault && current.ID != "" {
			continue
		}
		if _, err := s.ServiceSheets.Create(ctx, sh); err != nil {
			return fmt.Errorf("seed sheet %s: %w", sh.ID, err)
		}
		if !sh.IsDefault {
			continue
		}
		for _, svc := range sh.Services {
			if existing, err := s.Services.GetByID(ctx, svc.ID); err != nil {
				return err
			} else if existing.ID != "" {
				continue
			}
			svc.SheetID = sh.ID
			if _, err := s.Services.Create(ctx, svc); err != nil {
				return fmt.Errorf("seed service %s: %w", svc.ID, err)
			}
		}
	}
	return nil
}
