package exporters

import (
	"bytes"
	"io"
	"strings"

	"github.com/mrlokans/businesscards/internal/entities"
)

// Encoder serializes stored cards for download.
//
// Implementations:
//   - CSVEncoder (csv.go)
//   - XMLEncoder (xml.go)
type Encoder interface {
	Encode(w io.Writer, cards []entities.BusinessCard) error
	Format() string
	ContentType() string
	FileName() string
}

// ForFormat returns the encoder for a requested export format.
// Anything other than "xml" falls back to CSV.
func ForFormat(format string) Encoder {
	if strings.EqualFold(strings.TrimSpace(format), "xml") {
		return NewXMLEncoder()
	}
	return NewCSVEncoder()
}

// EncodeToBytes runs enc into an in-memory buffer.
func EncodeToBytes(enc Encoder, cards []entities.BusinessCard) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, cards); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
