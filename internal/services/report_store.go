package services

import (
	"context"
	"time"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// metadataTimestamp is the server clock used for created_at/updated_at.
// Truncated to milliseconds, the finest precision a BSON datetime keeps, so
// the value returned at write time round-trips unchanged through either
// backend.
func metadataTimestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ReportStore persists uploaded-report metadata. Reports are created once
// by the ingestion pipeline and never edited or deleted.
type ReportStore interface {
	// Create assigns the report's id and created_at, persists it, and
	// returns the stored record.
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	// ListByUser returns the user's reports ordered created_at descending,
	// ties broken by id descending. The slice is a snapshot; a fresh call
	// is needed to observe new uploads.
	ListByUser(ctx context.Context, userID string) ([]models.Report, error)
}
