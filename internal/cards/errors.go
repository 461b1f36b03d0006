// Package cards holds the business card rules shared by every entry point:
// photo validation and the error taxonomy used to map failures to responses.
package cards

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a card id does not exist.
var ErrNotFound = errors.New("business card not found")

// ValidationKind identifies why a candidate was rejected.
type ValidationKind string

const (
	KindInvalidPhotoEncoding ValidationKind = "InvalidPhotoEncoding"
	KindPhotoTooLarge        ValidationKind = "PhotoTooLarge"
)

// ValidationError rejects a single candidate record.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StructuralKind identifies why a whole payload was rejected.
type StructuralKind string

const (
	KindEmptyFile         StructuralKind = "EmptyFile"
	KindUnsupportedFormat StructuralKind = "UnsupportedFormat"
	KindInvalidXMLFormat  StructuralKind = "InvalidXmlFormat"
	KindInvalidCSVFormat  StructuralKind = "InvalidCsvFormat"
	KindInvalidQRPayload  StructuralKind = "InvalidQrPayload"
	KindNoQRCode          StructuralKind = "NoQrCode"
	KindInvalidImage      StructuralKind = "InvalidImage"
)

// StructuralError invalidates an entire input payload.
type StructuralError struct {
	Kind    StructuralKind
	Message string
	Err     error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// NewStructuralError builds a StructuralError with an optional cause.
func NewStructuralError(kind StructuralKind, message string, cause error) *StructuralError {
	return &StructuralError{Kind: kind, Message: message, Err: cause}
}

// RecordError reports which record of a multi-record import failed.
// Position is the CSV line number or the 1-based XML element ordinal.
type RecordError struct {
	Position int
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Position, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether err was caused by bad input rather than by
// an internal failure.
func IsClientError(err error) bool {
	var validationErr *ValidationError
	var structuralErr *StructuralError
	return errors.As(err, &validationErr) || errors.As(err, &structuralErr)
}
