package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// fakeBlobStore records puts in memory and can be told to fail.
type fakeBlobStore struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	failPut  bool
	putCalls int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	if f.failPut {
		return "", errors.New("transport failure")
	}
	f.blobs[key] = data
	return "https://blobs.example/" + key, nil
}

func (f *fakeBlobStore) Resolve(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blobs[key]; !ok {
		return "", errors.New("no such blob")
	}
	return "https://blobs.example/" + key, nil
}

// memReportStore is an in-memory ReportStore honoring the ordering
// contract: created_at descending, id descending on ties.
type memReportStore struct {
	mu         sync.Mutex
	reports    []models.Report
	failCreate bool
	clock      func() time.Time
}

func newMemReportStore() *memReportStore {
	return &memReportStore{clock: func() time.Time { return time.Now().UTC() }}
}

func (m *memReportStore) Create(_ context.Context, report *models.Report) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return nil, &apperrors.PersistenceError{Op: "create report", Err: errors.New("constraint failure")}
	}
	report.ID = uuid.New().String()
	report.CreatedAt = m.clock()
	m.reports = append(m.reports, *report)
	return report, nil
}

func (m *memReportStore) ListByUser(_ context.Context, userID string) ([]models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Report, 0)
	for _, r := range m.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// memProfileStore is an in-memory ProfileStore with upsert semantics.
type memProfileStore struct {
	mu       sync.Mutex
	profiles map[string]models.Profile
	failGet  bool
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[string]models.Profile)}
}

func (m *memProfileStore) Get(_ context.Context, userID string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, &apperrors.PersistenceError{Op: "get profile", Err: errors.New("transport failure")}
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProfileStore) Save(_ context.Context, profile *models.Profile) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile.UpdatedAt = time.Now().UTC()
	m.profiles[profile.UserID] = *profile
	return profile, nil
}

func (m *memProfileStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.profiles)
}
