package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

func setupReportHandlers(t *testing.T) (*stubBlobStore, *stubReportStore) {
	t.Helper()
	blobs := newStubBlobStore()
	store := &stubReportStore{}
	InitReportPipeline(services.NewIngestor(blobs, store), store)
	return blobs, store
}

func TestUploadReport_RequiresAuth(t *testing.T) {
	setupReportHandlers(t)
	defer stubAuth("")()

	body, contentType, err := multipartUpload("scan.pdf", []byte("data"), "2024-01-05", "")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadReport(rec, req)

	assert.Equal(t, 401, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "auth_required", resp.Code)
}

func TestUploadReport_MissingFileIs400BeforeAnyWrite(t *testing.T) {
	blobs, store := setupReportHandlers(t)
	defer stubAuth("user-a")()

	body, contentType, err := multipartUpload("", nil, "2024-01-05", "")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadReport(rec, req)

	assert.Equal(t, 400, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Code)
	assert.Contains(t, resp.Message, "file")

	assert.Empty(t, blobs.blobs)
	assert.Empty(t, store.reports)
}

func TestUploadReport_OversizedFileIs400BeforeAnyWrite(t *testing.T) {
	blobs, store := setupReportHandlers(t)
	defer stubAuth("user-a")()

	// Just over the 10MB request cap
	body, contentType, err := multipartUpload("huge.pdf", bytes.Repeat([]byte{'a'}, 11<<20), "2024-01-05", "")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadReport(rec, req)

	assert.Equal(t, 400, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Code)
	assert.Contains(t, resp.Message, "10MB")

	assert.Empty(t, blobs.blobs)
	assert.Empty(t, store.reports)
}

func TestUploadReport_HappyPath(t *testing.T) {
	blobs, _ := setupReportHandlers(t)
	defer stubAuth("user-a")()

	body, contentType, err := multipartUpload("bloodwork.pdf", []byte("%PDF fake"), "2024-01-05", "annual checkup")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadReport(rec, req)

	require.Equal(t, 201, rec.Code, rec.Body.String())

	var resp UploadReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Report)
	assert.Equal(t, "user-a", resp.Report.UserID)
	assert.Equal(t, "bloodwork.pdf", resp.Report.FileName)
	assert.NotEmpty(t, resp.Report.ID)

	// The stored blob is resolvable right away
	_, err = blobs.Resolve(req.Context(), resp.Report.BlobKey)
	assert.NoError(t, err)

	// And the list endpoint shows it first
	listReq := httptest.NewRequest("GET", "/api/reports", nil)
	listRec := httptest.NewRecorder()
	ListReports(listRec, listReq)

	require.Equal(t, 200, listRec.Code)
	var listResp ListReportsResponse
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Reports, 1)
	assert.Equal(t, resp.Report.ID, listResp.Reports[0].ID)
}

func TestUploadReport_BlobFailureIs502(t *testing.T) {
	blobs, store := setupReportHandlers(t)
	blobs.fail = true
	defer stubAuth("user-a")()

	body, contentType, err := multipartUpload("scan.pdf", []byte("data"), "2024-01-05", "")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadReport(rec, req)

	assert.Equal(t, 502, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "storage_failed", resp.Code)
	assert.Empty(t, store.reports, "no orphan metadata record after a blob failure")
}

func TestUploadReport_MetadataFailureIsPartialFailure(t *testing.T) {
	_, store := setupReportHandlers(t)
	store.fail = true
	defer stubAuth("user-a")()

	body, contentType, err := multipartUpload("scan.pdf", []byte("data"), "2024-01-05", "")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	UploadReport(rec, req)

	assert.Equal(t, 500, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "partial_failure", resp.Code)
}

func TestListReports_EmptyIsNotAnError(t *testing.T) {
	setupReportHandlers(t)
	defer stubAuth("user-a")()

	req := httptest.NewRequest("GET", "/api/reports", nil)
	rec := httptest.NewRecorder()

	ListReports(rec, req)

	require.Equal(t, 200, rec.Code)
	var resp ListReportsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Reports)
	assert.Empty(t, resp.Reports)
}
