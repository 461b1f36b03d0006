package importers

import (
	"encoding/json"
	"strings"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
)

// Defaults for blank fields in CSV-style QR payloads.
const (
	DefaultName    = "Unknown"
	DefaultGender  = "Unknown"
	DefaultEmail   = "unknown@example.com"
	DefaultPhone   = "0000000000"
	DefaultAddress = "-"
)

// QRCSVLayout describes the expected CSV-style payload for error messages.
const QRCSVLayout = "Name,Gender,DateOfBirth,Email,Phone,Address[,Photo]"

// DecodeQRPayload converts the text read from a QR code into a candidate.
//
// A payload wrapped in braces is a JSON object using the card's attribute
// names. Anything else is one CSV-style line; unlike CSV files, blank fields
// are defaulted and a short line is an error.
func DecodeQRPayload(text string) (entities.Candidate, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		return decodeQRJSON(text)
	}
	return decodeQRLine(text)
}

func decodeQRJSON(text string) (entities.Candidate, error) {
	var c entities.Candidate
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return entities.Candidate{}, cards.NewStructuralError(
			cards.KindInvalidQRPayload, "QR code JSON format is invalid", err)
	}
	if c.DateOfBirth.IsZero() {
		return entities.Candidate{}, cards.NewStructuralError(
			cards.KindInvalidQRPayload, "QR code JSON is missing DateOfBirth", nil)
	}
	if c.Photo != nil && *c.Photo == "" {
		c.Photo = nil
	}
	return c, nil
}

func decodeQRLine(text string) (entities.Candidate, error) {
	values := strings.Split(text, ",")
	if len(values) < minImportFields {
		return entities.Candidate{}, cards.NewStructuralError(
			cards.KindInvalidQRPayload,
			"Invalid CSV QR code format. Required: "+QRCSVLayout,
			nil,
		)
	}

	date, err := entities.ParseDate(values[2])
	if err != nil {
		return entities.Candidate{}, cards.NewStructuralError(
			cards.KindInvalidQRPayload, "Invalid DateOfBirth format in CSV QR code", err)
	}

	c := entities.Candidate{
		Name:        orDefault(values[0], DefaultName),
		Gender:      orDefault(values[1], DefaultGender),
		DateOfBirth: date,
		Email:       orDefault(values[3], DefaultEmail),
		Phone:       orDefault(values[4], DefaultPhone),
		Address:     orDefault(values[5], DefaultAddress),
	}
	if len(values) > minImportFields {
		c.Photo = lenientPhoto(values[6])
	}
	return c, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
