package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImportResponse reports a successful file import.
type ImportResponse struct {
	Message  string `json:"message"`
	Format   string `json:"format"`
	Imported int    `json:"imported"`
}

type ImportController struct {
	importer CardImporter
}

func NewImportController(importer CardImporter) *ImportController {
	return &ImportController{importer: importer}
}

// ImportFile accepts a CSV or XML upload in the "file" form field.
// POST /api/BusinessCard/import
func (ic *ImportController) ImportFile(c *gin.Context) {
	name, data, err := readUpload(c, "file")
	if err != nil {
		respondInternalError(c, err, "read import upload")
		return
	}

	result, err := ic.importer.ImportFile(c.Request.Context(), name, data)
	if err != nil {
		respondServiceError(c, err, "import business cards")
		return
	}

	c.JSON(http.StatusOK, ImportResponse{
		Message:  "File imported successfully",
		Format:   result.Format,
		Imported: result.Imported,
	})
}

// ImportQR accepts an image containing a QR code in the "qrFile" form field.
// POST /api/BusinessCard/import-qr
func (ic *ImportController) ImportQR(c *gin.Context) {
	_, data, err := readUpload(c, "qrFile")
	if err != nil {
		respondInternalError(c, err, "read QR upload")
		return
	}

	card, err := ic.importer.ImportQR(c.Request.Context(), data)
	if err != nil {
		respondServiceError(c, err, "import QR business card")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "QR code imported successfully",
		Data:    card,
	})
}

// readUpload returns the uploaded file's name and content. A missing field
// yields empty data, which the service reports as an empty file.
func readUpload(c *gin.Context, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil, nil
	}

	f, err := header.Open()
	if err != nil {
		return header.Filename, nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return header.Filename, nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return header.Filename, data, nil
}
