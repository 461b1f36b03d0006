package services

import (
	"context"

	"github.com/mrlokans/businesscards/internal/entities"
)

// CardStore persists business cards.
// Implemented by database/businesscards.Repository.
type CardStore interface {
	List(ctx context.Context, search string) ([]entities.BusinessCard, error)
	GetByID(ctx context.Context, id uint) (*entities.BusinessCard, error)
	Insert(ctx context.Context, card *entities.BusinessCard) (uint, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ListForExport(ctx context.Context) ([]entities.BusinessCard, error)
}

// QRTextReader extracts the text payload from a QR code image.
// Implemented by qrcode.Reader.
type QRTextReader interface {
	ReadText(data []byte) (string, error)
}

// AuditLogger records card operations.
// Implemented by audit.Service; NopAuditLogger discards everything.
type AuditLogger interface {
	LogCreate(ctx context.Context, cardID uint, name string, err error)
	LogImport(ctx context.Context, source, fileName string, imported int, err error)
	LogExport(ctx context.Context, format string, count int, err error)
	LogDelete(ctx context.Context, cardID uint, deleted bool, err error)
}

// NopAuditLogger is used when auditing is disabled.
type NopAuditLogger struct{}

func (NopAuditLogger) LogCreate(context.Context, uint, string, error)         {}
func (NopAuditLogger) LogImport(context.Context, string, string, int, error) {}
func (NopAuditLogger) LogExport(context.Context, string, int, error)         {}
func (NopAuditLogger) LogDelete(context.Context, uint, bool, error)          {}

// ImportResult contains the outcome of a file import.
type ImportResult struct {
	Format   string
	Imported int
}

// ExportResult is an encoded export ready for download.
type ExportResult struct {
	Data        []byte
	ContentType string
	FileName    string
	Count       int
}
