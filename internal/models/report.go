package models

import "time"

// Report is the metadata record for one uploaded medical-report file. The
// file bytes live in the blob store under BlobKey; FileURL is the resolved
// delivery URL stored at ingestion time so the dashboard can link the file
// without a second blob-store round trip. Reports are immutable once
// created.
type Report struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	FileName   string    `bson:"file_name" json:"file_name"`
	BlobKey    string    `bson:"blob_key" json:"blob_key"`
	FileURL    string    `bson:"file_url" json:"file_url"`
	ReportDate time.Time `bson:"report_date" json:"report_date"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
