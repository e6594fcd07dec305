package documents

import "time"

// GeneratedDocument is the stored metadata for one rendered artifact. The
// bytes live beside it in the repo and are written exactly once.
type GeneratedDocument struct {
	ID          string
	ResumeID    string
	VersionID   string // empty when generated from the live draft
	ContentType string
	SizeBytes   int64
	GeneratedAt time.Time
}

// DocxContentType is the media type of rendered DOCX artifacts.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
