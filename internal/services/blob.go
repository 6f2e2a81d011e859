package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobStore is the content-storage collaborator. Keys are opaque to callers
// but generated by the ingestion pipeline so they stay namespaced per owner.
// The store itself does no hashing, deduplication, or encryption.
type BlobStore interface {
	// Put stores data under key and returns the delivery URL for the
	// stored file.
	Put(ctx context.Context, key string, data []byte) (string, error)
	// Resolve returns a retrievable URL for an already-stored key.
	Resolve(ctx context.Context, key string) (string, error)
}

// ReportBlobKey builds the storage key for an uploaded report file:
// reports/<userID>/<unix-nanos>-<rand>_<name>. The owner segment keeps one
// user's files from colliding with another's; the timestamp plus random
// suffix keeps concurrent uploads by the same user apart even when they
// land in the same clock tick.
func ReportBlobKey(userID, fileName string) string {
	return fmt.Sprintf("reports/%s/%d-%s_%s",
		userID, time.Now().UnixNano(), uuid.New().String()[:8], sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "report"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_", "#", "_", "?", "_", "%", "_")
	return replacer.Replace(name)
}
