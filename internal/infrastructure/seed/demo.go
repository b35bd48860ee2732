package seed

import (
	"time"

	"quote_desk/internal/domain/entities"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

// Demo is the data the server starts with when no seed file is configured.
func Demo() Data {
	created := day("2024-03-01")

	categories := []entities.Category{
		{ID: "cat1", Name: "Hotel", Description: "Servicios de alojamiento y hospedaje", CreatedAt: created, UpdatedAt: created},
		{ID: "cat2", Name: "Transporte", Description: "Servicios de traslados y transportación", CreatedAt: created, UpdatedAt: created},
		{ID: "cat3", Name: "Actividad", Description: "Tours, excursiones y actividades turísticas", CreatedAt: created, UpdatedAt: created},
	}

	customers := []entities.Customer{
		{ID: "c1b6e2a0-7d3f-4f2e-9e5d-8b4c1a2d3e4f", Name: "Hotel California", Email: "reservas@hotelcalifornia.com", CustomPricing: true},
		{ID: "d2c7f3b1-8e4a-5b3f-9c6e-9d5e2f4a6b7c", Name: "Agencia de Viajes Aventura", Email: "reservas@aventura.com"},
		{ID: "e3d8a4c2-9f5b-6c4d-8e7f-0a6b3c5d8e9f", Name: "Corporativo Global", Email: "viajes@corporativoglobal.com", CustomPricing: true},
	}

	services := []entities.Service{
		{ID: "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", Name: "Hotel Grand Resort & Spa", Category: "Hotel", Location: "Cancún",
			BasePrice: 2500, Description: "Habitación de lujo con vista al mar", LastUpdated: created},
		{ID: "b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e", Name: "Traslado Aeropuerto-Hotel", Category: "Transporte", Location: "Cancún",
			BasePrice: 800, Description: "Servicio privado de transporte", LastUpdated: created},
		{ID: "c3d4e5f6-a7b8-4c9d-0e1f-2a3b4c5d6e7f", Name: "Tour Chichén Itzá", Category: "Actividad", Location: "Yucatán",
			BasePrice: 1200, Description: "Tour guiado con comida incluida", LastUpdated: created},
	}

	sheet := entities.ServiceSheet{
		ID:          DefaultSheetID,
		Name:        "Hoja de Servicios Default",
		Description: "Hoja de servicios predeterminada del sistema",
		IsDefault:   true,
		Services:    services,
		CreatedAt:   created,
		UpdatedAt:   created,
	}

	quote := entities.Quote{
		ID:         "q1w2e3r4-t5y6-u7i8-o9p0-a1s2d3f4g5h6",
		CustomerID: customers[0].ID,
		Services: []entities.QuoteService{
			{ServiceID: services[0].ID, Quantity: 3, Price: 2500, Date: day("2024-07-15")},
			{ServiceID: services[1].ID, Quantity: 1, Price: 800, Date: day("2024-07-15")},
		},
		Status:    entities.QuoteStatusApproved,
		Total:     8300,
		CreatedAt: created,
		UpdatedAt: created,
	}

	emails := []entities.EmailQuote{
		{
			ID:         "eq1",
			Subject:    "Solicitud de cotización - Grupo turístico",
			Sender:     "cliente@empresa.com",
			ReceivedAt: time.Date(2024, 3, 10, 10, 30, 0, 0, time.UTC),
			OriginalHTML: "<div>Buen día,<br>Necesito cotización para los siguientes servicios:<br>" +
				"- Hotel Marriott (3 noches, 2 habitaciones)<br>- Traslado aeropuerto-hotel<br>- Tour a Chichén Itzá<br>" +
				"Fecha: 15 de abril<br>Saludos</div>",
			DetectedServices: []entities.DetectedService{
				{Name: "Hotel Marriott", Description: "Estancia de 3 noches, 2 habitaciones", Quantity: intPtr(2), Date: "2024-04-15", SuggestedPrice: floatPtr(2500), Confidence: 0.95},
				{Name: "Traslado Aeropuerto-Hotel", Quantity: intPtr(1), Date: "2024-04-15", SuggestedPrice: floatPtr(800), Confidence: 0.90},
				{Name: "Tour Chichén Itzá", Quantity: intPtr(1), Date: "2024-04-16", SuggestedPrice: floatPtr(1200), Confidence: 0.85},
			},
			Status: entities.EmailQuoteStatusPending,
		},
		{
			ID:         "eq2",
			Subject:    "Cotización servicios turísticos",
			Sender:     "otro@cliente.com",
			ReceivedAt: time.Date(2024, 3, 9, 15, 45, 0, 0, time.UTC),
			OriginalHTML: "<div>Hola,<br>Me gustaría saber el costo de:<br>* 1 semana en Hotel Grand Resort<br>" +
				"* Transporte desde el aeropuerto<br>* 2 tours (Xcaret y Tulum)<br>Gracias</div>",
			DetectedServices: []entities.DetectedService{
				{Name: "Hotel Grand Resort", Description: "Estancia de 7 noches", Quantity: intPtr(1), Date: "2024-05-01", SuggestedPrice: floatPtr(5600), Confidence: 0.88},
				{Name: "Traslado Aeropuerto-Hotel", Quantity: intPtr(1), SuggestedPrice: floatPtr(800), Confidence: 0.92},
				{Name: "Tour Xcaret", Quantity: intPtr(1), SuggestedPrice: floatPtr(2500), Confidence: 0.87},
				{Name: "Tour Tulum", Quantity: intPtr(1), SuggestedPrice: floatPtr(1500), Confidence: 0.89},
			},
			Status: entities.EmailQuoteStatusPending,
		},
	}

	return Data{
		Categories:    categories,
		Customers:     customers,
		ServiceSheets: []entities.ServiceSheet{sheet},
		Quotes:        []entities.Quote{quote},
		EmailQuotes:   emails,
	}
}
