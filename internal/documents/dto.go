package documents

import (
	"fmt"
	"time"
)

// downloadPathFormat is the stable path clients fetch rendered artifacts from.
const downloadPathFormat = "/api/v1/resumes/%s/documents/%s/download"

// DocumentSummary is the API shape of a generated document listing entry.
type DocumentSummary struct {
	ID          string    `json:"id"`
	ResumeID    string    `json:"resumeId"`
	VersionID   string    `json:"versionId,omitempty"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	GeneratedAt time.Time `json:"generatedAt"`
	DownloadURL string    `json:"downloadUrl"`
}

// DownloadURL builds the download path for a document.
func DownloadURL(resumeID, documentID string) string {
	return fmt.Sprintf(downloadPathFormat, resumeID, documentID)
}

func toSummary(doc GeneratedDocument) DocumentSummary {
	return DocumentSummary{
		ID:          doc.ID,
		ResumeID:    doc.ResumeID,
		VersionID:   doc.VersionID,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		GeneratedAt: doc.GeneratedAt,
		DownloadURL: DownloadURL(doc.ResumeID, doc.ID),
	}
}
