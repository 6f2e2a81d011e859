package services

import (
	"context"
	"time"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// Ingestor turns one logical "upload a report" into an ordered pair of
// collaborator writes: blob first, metadata second. The blob goes first
// because a metadata record pointing at a missing file would be visible to
// the user, while a blob with no record is invisible and reclaimable.
//
// No lock spans the two writes and nothing is retried across the boundary:
// a blob failure means nothing was persisted (StorageError, safe to retry
// the whole upload), a metadata failure after the blob write leaves an
// orphaned blob (PartialFailureError, not safe to blindly re-run).
type Ingestor struct {
	Blobs   BlobStore
	Reports ReportStore
}

func NewIngestor(blobs BlobStore, reports ReportStore) *Ingestor {
	return &Ingestor{Blobs: blobs, Reports: reports}
}

// UploadInput is one report upload as received from the frontend.
type UploadInput struct {
	FileName   string
	Data       []byte
	ReportDate string // YYYY-MM-DD
	Notes      string
}

// UploadReport validates the input, stores the file, then persists the
// metadata record. On success the returned Report carries the
// server-assigned id and created_at.
func (s *Ingestor) UploadReport(ctx context.Context, userID string, in UploadInput) (*models.Report, error) {
	if len(in.Data) == 0 {
		return nil, apperrors.NewValidation("file", "a report file is required")
	}
	if in.ReportDate == "" {
		return nil, apperrors.NewValidation("report_date", "a report date is required")
	}
	reportDate, err := time.Parse(dateLayout, in.ReportDate)
	if err != nil {
		return nil, apperrors.NewValidation("report_date", "must be a date in YYYY-MM-DD format")
	}

	key := ReportBlobKey(userID, in.FileName)

	url, err := s.Blobs.Put(ctx, key, in.Data)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "put", Err: err}
	}

	report := &models.Report{
		UserID:     userID,
		FileName:   sanitizeFileName(in.FileName),
		BlobKey:    key,
		FileURL:    url,
		ReportDate: reportDate,
		Notes:      in.Notes,
	}

	created, err := s.Reports.Create(ctx, report)
	if err != nil {
		// The blob at key is now orphaned; surface that distinctly so a
		// reconciliation sweep can find it later.
		return nil, &apperrors.PartialFailureError{BlobKey: key, Err: err}
	}

	return created, nil
}
