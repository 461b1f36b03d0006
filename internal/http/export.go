package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	exporter CardExporter
}

func NewExportController(exporter CardExporter) *ExportController {
	return &ExportController{exporter: exporter}
}

// Export downloads every stored card as CSV (default) or XML.
// GET /api/BusinessCard/export?format=csv|xml
func (ec *ExportController) Export(c *gin.Context) {
	result, err := ec.exporter.Export(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		respondInternalError(c, err, "export business cards")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
