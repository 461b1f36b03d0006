package importers

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

const twoCardsXML = `<?xml version="1.0" encoding="utf-8"?>
<BusinessCards>
  <BusinessCard>
    <Name>X</Name>
    <Gender>M</Gender>
    <DateOfBirth>1980-01-01T00:00:00</DateOfBirth>
    <Email>x@a.com</Email>
    <Phone>1</Phone>
    <Address>A</Address>
  </BusinessCard>
  <BusinessCard>
    <Name>Y</Name>
    <Gender>F</Gender>
    <DateOfBirth>1990-02-02</DateOfBirth>
    <Email>y@a.com</Email>
    <Phone>2</Phone>
    <Address>B</Address>
    <Photo>aGVsbG8=</Photo>
  </BusinessCard>
</BusinessCards>`

func TestXMLDecoder_TwoCards(t *testing.T) {
	records, err := NewXMLDecoder().Decode(strings.NewReader(twoCardsXML))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, entities.Candidate{
		Name:        "X",
		Gender:      "M",
		DateOfBirth: entities.NewDate(1980, time.January, 1),
		Email:       "x@a.com",
		Phone:       "1",
		Address:     "A",
	}, records[0].Candidate)
	assert.Equal(t, 1, records[0].Position)

	assert.Equal(t, "Y", records[1].Candidate.Name)
	require.NotNil(t, records[1].Candidate.Photo)
	assert.Equal(t, "aGVsbG8=", *records[1].Candidate.Photo)
	assert.Equal(t, 2, records[1].Position)
}

func TestXMLDecoder_EmptyWrapper(t *testing.T) {
	records, err := NewXMLDecoder().Decode(strings.NewReader("<BusinessCards/>"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestXMLDecoder_InvalidPhotoDropped(t *testing.T) {
	doc := `<BusinessCards><BusinessCard><Name>Z</Name><DateOfBirth>2000-01-01</DateOfBirth>` +
		`<Photo>%%% not base64 %%%</Photo></BusinessCard></BusinessCards>`

	records, err := NewXMLDecoder().Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Candidate.Photo)
}

func TestXMLDecoder_ExportRootWithIDs(t *testing.T) {
	doc := `<ArrayOfBusinessCard><BusinessCard><Id>42</Id><Name>Z</Name>` +
		`<DateOfBirth>2000-01-01</DateOfBirth></BusinessCard></ArrayOfBusinessCard>`

	records, err := NewXMLDecoder().Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, uint(42), records[0].ID)
}

func TestXMLDecoder_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "<BusinessCards><BusinessCard><Name>oops</BusinessCards>"},
		{"not xml", "Name,Gender\nA,B"},
		{"wrong root", "<Contacts><BusinessCard><Name>A</Name></BusinessCard></Contacts>"},
		{"bad date", "<BusinessCards><BusinessCard><Name>A</Name><DateOfBirth>soon</DateOfBirth></BusinessCard></BusinessCards>"},
		{"missing date", "<BusinessCards><BusinessCard><Name>A</Name></BusinessCard></BusinessCards>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewXMLDecoder().Decode(strings.NewReader(tt.doc))
			var sErr *cards.StructuralError
			require.True(t, errors.As(err, &sErr), "got %v", err)
			assert.Equal(t, cards.KindInvalidXMLFormat, sErr.Kind)
		})
	}
}
