package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

type PostgresReportStore struct {
	db *sql.DB
}

func NewPostgresReportStore(db *sql.DB) *PostgresReportStore {
	return &PostgresReportStore{db: db}
}

func (s *PostgresReportStore) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	report.ID = uuid.New().String()
	report.CreatedAt = metadataTimestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (id, user_id, file_name, blob_key, file_url, report_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		report.ID, report.UserID, report.FileName, report.BlobKey, report.FileURL,
		report.ReportDate, report.Notes, report.CreatedAt)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "create report", Err: err}
	}

	return report, nil
}

func (s *PostgresReportStore) ListByUser(ctx context.Context, userID string) ([]models.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, file_name, blob_key, file_url, report_date, notes, created_at
		FROM reports WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list reports", Err: err}
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var (
			r     models.Report
			notes sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.FileName, &r.BlobKey, &r.FileURL, &r.ReportDate, &notes, &r.CreatedAt); err != nil {
			return nil, &apperrors.PersistenceError{Op: "list reports", Err: err}
		}
		r.Notes = notes.String
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.PersistenceError{Op: "list reports", Err: err}
	}

	return reports, nil
}
