package importers

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

// Root element names accepted by XMLDecoder. The second one is what the
// XML exporter writes.
const (
	XMLImportRoot = "BusinessCards"
	XMLExportRoot = "ArrayOfBusinessCard"
	XMLCardTag    = "BusinessCard"
)

type xmlCard struct {
	ID          string `xml:"Id"`
	Name        string `xml:"Name"`
	Gender      string `xml:"Gender"`
	DateOfBirth string `xml:"DateOfBirth"`
	Email       string `xml:"Email"`
	Phone       string `xml:"Phone"`
	Address     string `xml:"Address"`
	Photo       string `xml:"Photo"`
}

type xmlDocument struct {
	XMLName xml.Name
	Cards   []xmlCard `xml:"BusinessCard"`
}

// XMLDecoder reads cards from a <BusinessCards> wrapper document.
type XMLDecoder struct{}

var _ Decoder = (*XMLDecoder)(nil)

func NewXMLDecoder() *XMLDecoder {
	return &XMLDecoder{}
}

func (d *XMLDecoder) Format() string {
	return "xml"
}

// Decode implements Decoder. Any malformed document, unexpected root or
// unparsable date fails the whole import.
func (d *XMLDecoder) Decode(r io.Reader) ([]Record, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, invalidXML(err)
	}

	root := doc.XMLName.Local
	if root != XMLImportRoot && root != XMLExportRoot {
		return nil, invalidXML(fmt.Errorf("unexpected root element <%s>", root))
	}

	records := make([]Record, 0, len(doc.Cards))
	for i, c := range doc.Cards {
		date, err := entities.ParseDate(c.DateOfBirth)
		if err != nil {
			return nil, invalidXML(fmt.Errorf("%s %d: %w", XMLCardTag, i+1, err))
		}

		rec := Record{
			Position: i + 1,
			Candidate: entities.Candidate{
				Name:        c.Name,
				Gender:      c.Gender,
				DateOfBirth: date,
				Email:       c.Email,
				Phone:       c.Phone,
				Address:     c.Address,
				Photo:       lenientPhoto(c.Photo),
			},
		}
		if id, err := strconv.ParseUint(strings.TrimSpace(c.ID), 10, 64); err == nil {
			rec.ID = uint(id)
		}
		records = append(records, rec)
	}

	return records, nil
}

func invalidXML(err error) error {
	return cards.NewStructuralError(cards.KindInvalidXMLFormat, "Invalid XML format", err)
}
