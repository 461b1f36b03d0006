package importers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

// Record is one decoded card together with where it came from.
type Record struct {
	// Position is the 1-based CSV line number or XML element ordinal.
	Position int
	// ID is the id carried by re-imported export files. It is never used
	// on insert.
	ID        uint
	Candidate entities.Candidate
}

// Decoder converts an uploaded file into candidate records.
//
// Implementations:
//   - CSVDecoder (csv.go)
//   - XMLDecoder (xml.go)
type Decoder interface {
	// Format names the decoded format, e.g. "csv".
	Format() string
	// Decode parses the whole payload. Any returned error is a
	// *cards.StructuralError.
	Decode(r io.Reader) ([]Record, error)
}

// ForExtension picks the decoder for a file name by its extension.
func ForExtension(filename string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return NewCSVDecoder(), nil
	case ".xml":
		return NewXMLDecoder(), nil
	default:
		return nil, cards.NewStructuralError(
			cards.KindUnsupportedFormat,
			"Unsupported file format. Only CSV or XML are allowed.",
			nil,
		)
	}
}

// lenientPhoto returns nil for blank photos and for photos that are not
// valid base64, so a bad photo never costs the rest of the record.
func lenientPhoto(photo string) *string {
	if strings.TrimSpace(photo) == "" || !cards.IsBase64Photo(photo) {
		return nil
	}
	return &photo
}
