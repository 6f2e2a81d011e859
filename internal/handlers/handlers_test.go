package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// Shared test fakes wired through the Init* functions, plus an auth stub so
// handler tests run without Redis.

func stubAuth(userID string) func() {
	prev := requireAuth
	requireAuth = func(r *http.Request) (string, bool) {
		if userID == "" {
			return "", false
		}
		return userID, true
	}
	return func() { requireAuth = prev }
}

type stubBlobStore struct {
	mu    sync.Mutex
	blobs map[string]string
	fail  bool
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{blobs: make(map[string]string)}
}

func (s *stubBlobStore) Put(_ context.Context, key string, _ []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return "", errors.New("transport failure")
	}
	url := "https://blobs.example/" + key
	s.blobs[key] = url
	return url, nil
}

func (s *stubBlobStore) Resolve(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url, ok := s.blobs[key]
	if !ok {
		return "", errors.New("no such blob")
	}
	return url, nil
}

type stubReportStore struct {
	mu      sync.Mutex
	reports []models.Report
	fail    bool
}

func (s *stubReportStore) Create(_ context.Context, report *models.Report) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, &apperrors.PersistenceError{Op: "create report", Err: errors.New("constraint failure")}
	}
	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()
	s.reports = append(s.reports, *report)
	return report, nil
}

func (s *stubReportStore) ListByUser(_ context.Context, userID string) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Report, 0)
	for _, r := range s.reports {
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

type stubProfileStore struct {
	mu       sync.Mutex
	profiles map[string]models.Profile
}

func newStubProfileStore() *stubProfileStore {
	return &stubProfileStore{profiles: make(map[string]models.Profile)}
}

func (s *stubProfileStore) Get(_ context.Context, userID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *stubProfileStore) Save(_ context.Context, profile *models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile.UpdatedAt = time.Now().UTC()
	s.profiles[profile.UserID] = *profile
	return profile, nil
}

// multipartUpload builds a multipart body with an optional file part.
func multipartUpload(fileName string, fileData []byte, reportDate, notes string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if fileData != nil {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(fileData); err != nil {
			return nil, "", err
		}
	}
	if err := writer.WriteField("report_date", reportDate); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("notes", notes); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
