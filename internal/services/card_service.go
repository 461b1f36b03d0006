package services

import (
	"bytes"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/businesscards/internal/cards"
	"github.com/mrlokans/businesscards/internal/entities"
	"github.com/mrlokans/businesscards/internal/exporters"
	"github.com/mrlokans/businesscards/internal/importers"
)

// CardService coordinates validation, decoding, storage and encoding of
// business cards. It is stateless apart from its collaborators and safe
// for concurrent use.
type CardService struct {
	store CardStore
	qr    QRTextReader
	audit AuditLogger
}

// NewCardService creates a CardService. A nil audit logger disables auditing.
func NewCardService(store CardStore, qr QRTextReader, audit AuditLogger) *CardService {
	if audit == nil {
		audit = NopAuditLogger{}
	}
	return &CardService{
		store: store,
		qr:    qr,
		audit: audit,
	}
}

// Create validates and stores a single card.
func (s *CardService) Create(ctx context.Context, candidate entities.Candidate) (*entities.BusinessCard, error) {
	card, err := s.insertValid(ctx, candidate)
	if card != nil {
		s.audit.LogCreate(ctx, card.ID, card.Name, err)
	} else {
		s.audit.LogCreate(ctx, 0, candidate.Name, err)
	}
	return card, err
}

// ImportFile decodes a CSV or XML upload and stores its records in order.
//
// The first record that fails validation aborts the import with a
// *cards.RecordError; records before it stay stored.
func (s *CardService) ImportFile(ctx context.Context, fileName string, data []byte) (ImportResult, error) {
	result, err := s.importFile(ctx, fileName, data)

	source := result.Format
	if source == "" {
		source = "file"
	}
	s.audit.LogImport(ctx, source, fileName, result.Imported, err)

	return result, err
}

func (s *CardService) importFile(ctx context.Context, fileName string, data []byte) (ImportResult, error) {
	if len(data) == 0 {
		return ImportResult{}, emptyFileError()
	}

	decoder, err := importers.ForExtension(fileName)
	if err != nil {
		return ImportResult{}, err
	}
	result := ImportResult{Format: decoder.Format()}

	records, err := decoder.Decode(bytes.NewReader(data))
	if err != nil {
		return result, err
	}

	for _, rec := range records {
		if err := cards.Validate(rec.Candidate); err != nil {
			return result, &cards.RecordError{Position: rec.Position, Err: err}
		}

		card := rec.Candidate.ToBusinessCard()
		if _, err := s.store.Insert(ctx, &card); err != nil {
			return result, fmt.Errorf("failed to store record %d: %w", rec.Position, err)
		}
		result.Imported++
	}

	log.WithFields(log.Fields{
		"file":     fileName,
		"format":   result.Format,
		"imported": result.Imported,
	}).Info("Imported business cards")

	return result, nil
}

// ImportQR reads a QR code image and stores the card it describes.
func (s *CardService) ImportQR(ctx context.Context, image []byte) (*entities.BusinessCard, error) {
	card, err := s.importQR(ctx, image)

	imported := 0
	if card != nil {
		imported = 1
	}
	s.audit.LogImport(ctx, "qr", "qr image", imported, err)

	return card, err
}

func (s *CardService) importQR(ctx context.Context, image []byte) (*entities.BusinessCard, error) {
	if len(image) == 0 {
		return nil, emptyFileError()
	}

	text, err := s.qr.ReadText(image)
	if err != nil {
		return nil, err
	}

	candidate, err := importers.DecodeQRPayload(text)
	if err != nil {
		return nil, err
	}

	return s.insertValid(ctx, candidate)
}

// Export encodes every stored card in the requested format. Anything other
// than "xml" produces CSV.
func (s *CardService) Export(ctx context.Context, format string) (ExportResult, error) {
	encoder := exporters.ForFormat(format)
	result, err := s.export(ctx, encoder)

	s.audit.LogExport(ctx, encoder.Format(), result.Count, err)

	return result, err
}

func (s *CardService) export(ctx context.Context, encoder exporters.Encoder) (ExportResult, error) {
	list, err := s.store.ListForExport(ctx)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to load cards for export: %w", err)
	}

	data, err := exporters.EncodeToBytes(encoder, list)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to encode export: %w", err)
	}

	return ExportResult{
		Data:        data,
		ContentType: encoder.ContentType(),
		FileName:    encoder.FileName(),
		Count:       len(list),
	}, nil
}

// List returns stored cards, optionally filtered by a search term.
func (s *CardService) List(ctx context.Context, search string) ([]entities.BusinessCard, error) {
	return s.store.List(ctx, search)
}

// Get returns cards.ErrNotFound for unknown ids.
func (s *CardService) Get(ctx context.Context, id uint) (*entities.BusinessCard, error) {
	return s.store.GetByID(ctx, id)
}

// Delete removes a card. Deleting an unknown id is not an error.
func (s *CardService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	s.audit.LogDelete(ctx, id, deleted, err)
	return deleted, err
}

func (s *CardService) insertValid(ctx context.Context, candidate entities.Candidate) (*entities.BusinessCard, error) {
	if err := cards.Validate(candidate); err != nil {
		return nil, err
	}

	card := candidate.ToBusinessCard()
	if _, err := s.store.Insert(ctx, &card); err != nil {
		return nil, fmt.Errorf("failed to store business card: %w", err)
	}
	return &card, nil
}

func emptyFileError() error {
	return cards.NewStructuralError(cards.KindEmptyFile, "File is empty or missing", nil)
}
