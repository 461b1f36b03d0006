package exporters

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mrlokans/businesscards/internal/entities"
)

type xmlCard struct {
	ID          uint          `xml:"Id"`
	Name        string        `xml:"Name"`
	Gender      string        `xml:"Gender"`
	DateOfBirth entities.Date `xml:"DateOfBirth"`
	Email       string        `xml:"Email"`
	Phone       string        `xml:"Phone"`
	Photo       *string       `xml:"Photo,omitempty"`
	Address     string        `xml:"Address"`
}

type xmlCollection struct {
	XMLName xml.Name  `xml:"ArrayOfBusinessCard"`
	Cards   []xmlCard `xml:"BusinessCard"`
}

// XMLEncoder writes the full card list, ids included, under an
// <ArrayOfBusinessCard> root.
type XMLEncoder struct{}

var _ Encoder = (*XMLEncoder)(nil)

func NewXMLEncoder() *XMLEncoder {
	return &XMLEncoder{}
}

func (e *XMLEncoder) Format() string {
	return "xml"
}

func (e *XMLEncoder) ContentType() string {
	return "application/xml"
}

func (e *XMLEncoder) FileName() string {
	return "businesscards.xml"
}

func (e *XMLEncoder) Encode(w io.Writer, cards []entities.BusinessCard) error {
	doc := xmlCollection{Cards: make([]xmlCard, 0, len(cards))}
	for _, c := range cards {
		doc.Cards = append(doc.Cards, xmlCard{
			ID:          c.ID,
			Name:        c.Name,
			Gender:      c.Gender,
			DateOfBirth: c.DateOfBirth,
			Email:       c.Email,
			Phone:       c.Phone,
			Photo:       c.Photo,
			Address:     c.Address,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode cards as XML: %w", err)
	}
	return enc.Flush()
}
