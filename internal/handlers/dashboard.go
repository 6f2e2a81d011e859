package handlers

import (
	"net/http"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

var aggregator *services.Aggregator

// InitAggregator wires the record aggregator into the dashboard handler.
func InitAggregator(agg *services.Aggregator) {
	aggregator = agg
}

type DashboardResponse struct {
	Success bool                 `json:"success"`
	Record  *services.RecordView `json:"record"`
	Vitals  models.VitalSigns    `json:"vitals"`
}

type VitalsResponse struct {
	Success bool              `json:"success"`
	Vitals  models.VitalSigns `json:"vitals"`
}

// GetDashboard returns everything the dashboard page needs in one call:
// profile, completeness, reports (newest first) and the vitals cards.
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	record, err := aggregator.Aggregate(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DashboardResponse{
		Success: true,
		Record:  record,
		Vitals:  services.CurrentVitals(),
	})
}

// GetVitals returns the current placeholder vital signs.
func GetVitals(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(r); !ok {
		writeError(w, apperrors.ErrUnauthenticated)
		return
	}

	writeJSON(w, http.StatusOK, VitalsResponse{
		Success: true,
		Vitals:  services.CurrentVitals(),
	})
}
