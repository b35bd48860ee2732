package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"quote_desk/internal/usecase"
	"quote_desk/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves rendered quote documents.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

func (h *DocumentHandler) ExportXLSX(c *gin.Context) {
	h.render(c, usecase.DocumentFormatXLSX)
}

func (h *DocumentHandler) PDF(c *gin.Context) {
	h.render(c, usecase.DocumentFormatPDF)
}

// render buffers the whole document before writing the response.
func (h *DocumentHandler) render(c *gin.Context, format usecase.DocumentFormat) {
	id := c.Param("id")
	var buf bytes.Buffer
	contentType, err := h.usecase.RenderQuote(c.Request.Context(), id, format, &buf)
	if err != nil {
		writeError(c, mapDocumentError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s.%s"`, id, format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func mapDocumentError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrUnsupportedDocumentFormat) {
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported document format", http.StatusBadRequest)
	}
	return mapQuoteError(err)
}
