package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

// maxUploadBytes caps a report upload at 10MB, the same limit the frontend
// enforces.
const maxUploadBytes = 10 << 20

var (
	ingestor    *services.Ingestor
	reportStore services.ReportStore
)

// InitReportPipeline wires the ingestion pipeline and the selected report
// metadata backend into the report handlers.
func InitReportPipeline(ing *services.Ingestor, store services.ReportStore) {
	ingestor = ing
	reportStore = store
}

type UploadReportResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Report  *models.Report `json:"report,omitempty"`
}

type ListReportsResponse struct {
	Success bool            `json:"success"`
	Reports []models.Report `json:"reports"`
}

// UploadReport ingests one medical-report file with its metadata.
// Multipart form fields: file, report_date (YYYY-MM-DD), notes.
func UploadReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	// Cap the whole request body at 10MB, matching the frontend's limit.
	// ParseMultipartForm alone only bounds in-memory buffering, not size.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, apperrors.NewValidation("file", "must be 10MB or smaller"))
			return
		}
		writeError(w, apperrors.NewValidation("body", "failed to parse multipart form"))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperrors.NewValidation("file", "a report file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, apperrors.NewValidation("file", "failed to read uploaded file"))
		return
	}

	report, err := ingestor.UploadReport(r.Context(), userID, services.UploadInput{
		FileName:   fileHeader.Filename,
		Data:       data,
		ReportDate: r.FormValue("report_date"),
		Notes:      r.FormValue("notes"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, UploadReportResponse{
		Success: true,
		Message: "Report uploaded successfully",
		Report:  report,
	})
}

// ListReports returns the caller's reports, most recent upload first.
func ListReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	reports, err := reportStore.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if reports == nil {
		reports = make([]models.Report, 0)
	}

	writeJSON(w, http.StatusOK, ListReportsResponse{
		Success: true,
		Reports: reports,
	})
}
