package http

import (
	"context"

	"github.com/mrlokans/businesscards/internal/entities"
	"github.com/mrlokans/businesscards/internal/services"
)

// This file consolidates the service interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls.

// CardReader provides read access to stored cards.
type CardReader interface {
	List(ctx context.Context, search string) ([]entities.BusinessCard, error)
	Get(ctx context.Context, id uint) (*entities.BusinessCard, error)
}

// CardWriter creates and deletes single cards.
type CardWriter interface {
	Create(ctx context.Context, candidate entities.Candidate) (*entities.BusinessCard, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// CardImporter stores cards decoded from uploads.
type CardImporter interface {
	ImportFile(ctx context.Context, fileName string, data []byte) (services.ImportResult, error)
	ImportQR(ctx context.Context, image []byte) (*entities.BusinessCard, error)
}

// CardExporter encodes stored cards for download.
type CardExporter interface {
	Export(ctx context.Context, format string) (services.ExportResult, error)
}

// CardService combines every card capability.
// Implemented by services.CardService.
type CardService interface {
	CardReader
	CardWriter
	CardImporter
	CardExporter
}

var _ CardService = (*services.CardService)(nil)

// AuditReader lists recorded audit events.
// Implemented by audit.Service.
type AuditReader interface {
	GetEvents(ctx context.Context, eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error)
}

// Pinger reports whether the database is reachable.
// Implemented by database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}
