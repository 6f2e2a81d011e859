package services

import (
	"context"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// RecordView is the read-side composition the dashboard consumes: the
// profile (if any), the derived completeness flag, and the user's reports
// newest first.
type RecordView struct {
	Profile  *models.Profile `json:"profile,omitempty"`
	Complete bool            `json:"complete"`
	Reports  []models.Report `json:"reports"`
}

// Aggregator composes the profile and report stores into one read. It
// performs no writes.
type Aggregator struct {
	Profiles ProfileStore
	Reports  ReportStore
}

func NewAggregator(profiles ProfileStore, reports ReportStore) *Aggregator {
	return &Aggregator{Profiles: profiles, Reports: reports}
}

// Aggregate returns the full record view for a user. A user with no
// profile row is simply incomplete, and a user with no reports gets an
// empty slice, not an error.
func (a *Aggregator) Aggregate(ctx context.Context, userID string) (*RecordView, error) {
	profile, err := a.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	reports, err := a.Reports.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reports == nil {
		reports = make([]models.Report, 0)
	}

	return &RecordView{
		Profile:  profile,
		Complete: profile.Complete(),
		Reports:  reports,
	}, nil
}
