package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCategories    = "/categories"
	PathCustomers     = "/customers"
	PathServices      = "/services"
	PathServiceSheets = "/service-sheets"
	PathCatalog       = "/catalog"
	PathQuotes        = "/quotes"
	PathSettlements   = "/settlements"
	PathEmailQuotes   = "/email-quotes"
)

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	categories := rg.Group(PathCategories)
	{
		categories.POST("", h.Category.Create)
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.PATCH("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", h.Service.Create)
		services.GET("", h.Service.List)
		services.GET("/:id", h.Service.Get)
		services.PATCH("/:id", h.Service.Update)
	}

	sheets := rg.Group(PathServiceSheets)
	{
		sheets.POST("", h.ServiceSheet.Create)
		sheets.GET("", h.ServiceSheet.List)
		sheets.GET("/default", h.ServiceSheet.GetDefault)
		sheets.GET("/:id", h.ServiceSheet.Get)
		sheets.PATCH("/:id", h.ServiceSheet.Update)
		sheets.DELETE("/:id", h.ServiceSheet.Delete)
		sheets.POST("/:id/services", h.ServiceSheet.AddService)
		sheets.PATCH("/:id/services/:service_id", h.ServiceSheet.UpdateService)
		sheets.DELETE("/:id/services/:service_id", h.ServiceSheet.DeleteService)
	}

	rg.GET(PathCatalog, h.ServiceSheet.ResolveCatalog)
}

func addQuoteRoutes(rg *gin.RouterGroup, h Handlers) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Quote.Create)
		quotes.GET("", h.Quote.List)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PATCH("/:id", h.Quote.Update)
		quotes.PATCH("/:id/status", h.Quote.UpdateStatus)
		quotes.POST("/:id/services", h.Quote.AddService)
		quotes.DELETE("/:id/services/:index", h.Quote.RemoveService)
		quotes.GET("/:id/export.xlsx", h.Document.ExportXLSX)
		quotes.GET("/:id/pdf", h.Document.PDF)
	}
}

func addSettlementRoutes(rg *gin.RouterGroup, h Handlers) {
	settlements := rg.Group(PathSettlements)
	{
		settlements.POST("", h.Settlement.Create)
		settlements.GET("", h.Settlement.List)
		settlements.GET("/:id", h.Settlement.Get)
		settlements.PATCH("/:id", h.Settlement.Update)
		settlements.POST("/:id/charges", h.Settlement.AddCharge)
		settlements.POST("/:id/payments", h.Settlement.CollectPayment)
	}
}

func addEmailQuoteRoutes(rg *gin.RouterGroup, h Handlers) {
	emails := rg.Group(PathEmailQuotes)
	{
		emails.GET("", h.EmailQuote.List)
		emails.POST("/parse", h.EmailQuote.Parse)
		emails.GET("/:id", h.EmailQuote.Get)
		emails.PATCH("/:id/status", h.EmailQuote.UpdateStatus)
		emails.POST("/:id/convert", h.EmailQuote.Convert)
	}
}
