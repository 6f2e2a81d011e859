package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

func TestAggregate_NewUserIsEmptyButNotAnError(t *testing.T) {
	agg := NewAggregator(newMemProfileStore(), newMemReportStore())

	view, err := agg.Aggregate(context.Background(), "user-a")
	require.NoError(t, err)

	assert.Nil(t, view.Profile)
	assert.False(t, view.Complete)
	require.NotNil(t, view.Reports)
	assert.Empty(t, view.Reports)
}

func TestAggregate_ComposesProfileAndReports(t *testing.T) {
	profiles := newMemProfileStore()
	reports := newMemReportStore()
	agg := NewAggregator(profiles, reports)

	profile, err := ParseProfileInput("user-a", ProfileInput{
		Name:        "Keertana",
		Age:         "24",
		DateOfBirth: "2001-03-14",
		Gender:      "female",
	})
	require.NoError(t, err)
	_, err = profiles.Save(context.Background(), profile)
	require.NoError(t, err)

	// Another user's report must never leak into the view
	_, err = reports.Create(context.Background(), &models.Report{UserID: "user-b", FileName: "other.pdf"})
	require.NoError(t, err)
	_, err = reports.Create(context.Background(), &models.Report{UserID: "user-a", FileName: "scan.pdf"})
	require.NoError(t, err)

	view, err := agg.Aggregate(context.Background(), "user-a")
	require.NoError(t, err)

	require.NotNil(t, view.Profile)
	assert.Equal(t, "Keertana", view.Profile.Name)
	assert.True(t, view.Complete)
	require.Len(t, view.Reports, 1)
	assert.Equal(t, "scan.pdf", view.Reports[0].FileName)
}

func TestAggregate_IncompleteProfile(t *testing.T) {
	profiles := newMemProfileStore()
	agg := NewAggregator(profiles, newMemReportStore())

	profile, err := ParseProfileInput("user-a", ProfileInput{Name: "Keertana", Age: "24"})
	require.NoError(t, err)
	_, err = profiles.Save(context.Background(), profile)
	require.NoError(t, err)

	view, err := agg.Aggregate(context.Background(), "user-a")
	require.NoError(t, err)
	assert.False(t, view.Complete)
}

func TestAggregate_PropagatesStoreFailure(t *testing.T) {
	profiles := newMemProfileStore()
	profiles.failGet = true
	agg := NewAggregator(profiles, newMemReportStore())

	_, err := agg.Aggregate(context.Background(), "user-a")
	assert.Error(t, err)
}

func TestListByUser_OrderedNewestFirstWithDeterministicTies(t *testing.T) {
	reports := newMemReportStore()

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	for _, ts := range []time.Time{t1, t2, t3} {
		ts := ts
		reports.clock = func() time.Time { return ts }
		_, err := reports.Create(context.Background(), &models.Report{UserID: "user-a"})
		require.NoError(t, err)
	}

	list, err := reports.ListByUser(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, t3, list[0].CreatedAt)
	assert.Equal(t, t2, list[1].CreatedAt)
	assert.Equal(t, t1, list[2].CreatedAt)

	// Ties on created_at break by id descending
	reports = newMemReportStore()
	reports.clock = func() time.Time { return t1 }
	_, err = reports.Create(context.Background(), &models.Report{UserID: "user-a"})
	require.NoError(t, err)
	_, err = reports.Create(context.Background(), &models.Report{UserID: "user-a"})
	require.NoError(t, err)

	tied, err := reports.ListByUser(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, tied, 2)
	assert.Greater(t, tied[0].ID, tied[1].ID)
}
