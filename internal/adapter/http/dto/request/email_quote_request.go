package request

type ConvertEmailQuoteRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}

type ParseEmailRequest struct {
	HTML string `json:"html" binding:"required"`
}
