package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/businesscards/internal/database/audit"
	"github.com/mrlokans/businesscards/internal/entities"
)

// Service provides high-level audit logging for card operations.
type Service struct {
	repo    *audit.Repository
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records an audit event synchronously.
func (s *Service) Log(ctx context.Context, event *entities.AuditEvent) error {
	if event.RequestID == "" {
		event.RequestID = RequestIDFrom(ctx)
	}
	return s.repo.LogEvent(ctx, event)
}

// LogAsync records an audit event in the background (non-blocking).
// The write outlives request cancellation.
func (s *Service) LogAsync(ctx context.Context, event *entities.AuditEvent) {
	if event.RequestID == "" {
		event.RequestID = RequestIDFrom(ctx)
	}
	bg := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(bg, event); err != nil {
			log.WithError(err).WithField("action", event.Action).Warn("Failed to log audit event")
		}
	}()
}

// Wait blocks until all background writes have finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// LogCreate records a single card creation.
func (s *Service) LogCreate(ctx context.Context, cardID uint, name string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      "card_create",
		Description: "Created business card: " + name,
		Status:      entities.AuditStatusSuccess,
	}
	if cardID != 0 {
		event.EntityID = &cardID
	}
	markFailure(event, err)

	s.LogAsync(ctx, event)
}

// LogImport records a file or QR import. source is "csv", "xml" or "qr".
func (s *Service) LogImport(ctx context.Context, source, fileName string, imported int, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventImport,
		Action:      source + "_import",
		Description: fmt.Sprintf("Imported %d business cards from %s", imported, fileName),
		Status:      entities.AuditStatusSuccess,
	}

	metadata := map[string]any{
		"file_name": fileName,
		"imported":  imported,
	}
	if mdBytes, e := json.Marshal(metadata); e == nil {
		event.Metadata = string(mdBytes)
	}
	markFailure(event, err)

	s.LogAsync(ctx, event)
}

// LogExport records an export.
func (s *Service) LogExport(ctx context.Context, format string, count int, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventExport,
		Action:      strings.ToLower(format) + "_export",
		Description: fmt.Sprintf("Exported %d business cards as %s", count, strings.ToUpper(format)),
		Status:      entities.AuditStatusSuccess,
	}
	markFailure(event, err)

	s.LogAsync(ctx, event)
}

// LogDelete records a deletion request. Deleting an absent card is
// recorded too, with the description saying so.
func (s *Service) LogDelete(ctx context.Context, cardID uint, deleted bool, err error) {
	description := fmt.Sprintf("Deleted business card %d", cardID)
	if !deleted && err == nil {
		description = fmt.Sprintf("Business card %d not found, nothing deleted", cardID)
	}

	event := &entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      "card_delete",
		Description: description,
		EntityID:    &cardID,
		Status:      entities.AuditStatusSuccess,
	}
	markFailure(event, err)

	s.LogAsync(ctx, event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(ctx context.Context, eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(ctx, eventType, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(ctx, cutoff)
}

func markFailure(event *entities.AuditEvent, err error) {
	if err == nil {
		return
	}
	event.Status = entities.AuditStatusFailed
	event.ErrorMsg = truncate(err.Error(), 500)
}

// truncate shortens a string to max bytes without splitting a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
