package exporters

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/businesscards/internal/entities"
)

// CSVHeader is the first line of every CSV export.
const CSVHeader = "Id,Name,Gender,DateOfBirth,Email,Phone,Photo,Address"

// CSVEncoder writes cards as comma-separated lines.
//
// Only Name and Address are quoted when they contain a comma or a double
// quote; other columns are written verbatim.
type CSVEncoder struct{}

var _ Encoder = (*CSVEncoder)(nil)

func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{}
}

func (e *CSVEncoder) Format() string {
	return "csv"
}

func (e *CSVEncoder) ContentType() string {
	return "text/csv"
}

func (e *CSVEncoder) FileName() string {
	return "businesscards.csv"
}

func (e *CSVEncoder) Encode(w io.Writer, cards []entities.BusinessCard) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(CSVHeader + "\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range cards {
		photo := ""
		if c.Photo != nil {
			photo = *c.Photo
		}

		_, err := fmt.Fprintf(bw, "%d,%s,%s,%s,%s,%s,%s,%s\n",
			c.ID,
			escapeCSV(c.Name),
			c.Gender,
			c.DateOfBirth.String(),
			c.Email,
			c.Phone,
			photo,
			escapeCSV(c.Address),
		)
		if err != nil {
			return fmt.Errorf("failed to write card %d: %w", c.ID, err)
		}
	}

	return bw.Flush()
}

func escapeCSV(value string) string {
	if strings.ContainsAny(value, `,"`) {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
