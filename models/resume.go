// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"time"
)

// DefaultResumeVersion is the version label applied when a submission does
// not carry one.
const DefaultResumeVersion = "v1.0"

// DefaultResumeFileType is the file-type tag applied when neither the request
// nor the uploaded file name tells otherwise.
const DefaultResumeFileType = "pdf"

// ContentEncoding declares how the raw bytes of a resume must be interpreted.
type ContentEncoding string

const (
	// EncodingText marks UTF-8 text content.
	EncodingText ContentEncoding = "text"

	// EncodingBinary marks opaque binary content (PDF, DOCX, ...).
	EncodingBinary ContentEncoding = "binary"
)

// Resume is one submitted resume artifact. Rows are insert-only; the latest
// resume of a user is the one with the highest ResumeID, regardless of the
// Version label.
type Resume struct {
	// ResumeID is the server-assigned primary key.
	ResumeID int64

	// UserID references the owning [User].
	UserID int64

	// Content holds the raw resume bytes exactly as submitted.
	Content []byte

	// Encoding declares how Content should be interpreted.
	Encoding ContentEncoding

	// Version is a free-form, caller-supplied label (e.g. "v1.0").
	Version string

	// FileType is a short tag such as "pdf", "docx" or "txt".
	FileType string

	// UploadedAt is the insertion time.
	UploadedAt time.Time
}

// TableName returns the name of the database table
// associated with the Resume model.
func (r Resume) TableName() string {
	return "resumes"
}

// Summary returns the resume fields echoed back in the onboarding envelope.
func (r Resume) Summary() ResumeSummary {
	return ResumeSummary{
		ResumeID: r.ResumeID,
		Version:  r.Version,
		FileType: r.FileType,
		Size:     len(r.Content),
	}
}

// View converts the resume into its JSON representation. Text content is
// returned as-is, binary content is base64-encoded.
func (r Resume) View() ResumeView {
	content := string(r.Content)
	if r.Encoding == EncodingBinary {
		content = base64.StdEncoding.EncodeToString(r.Content)
	}

	return ResumeView{
		ResumeID:   r.ResumeID,
		UserID:     r.UserID,
		Version:    r.Version,
		FileType:   r.FileType,
		Encoding:   r.Encoding,
		Content:    content,
		UploadedAt: r.UploadedAt,
	}
}

// ResumeSummary is the short resume echo returned after a submission.
type ResumeSummary struct {
	ResumeID int64  `json:"id"`
	Version  string `json:"resume_version"`
	FileType string `json:"file_type"`
	Size     int    `json:"size"`
}

// ResumeView is the response body of GET /user/{user_id}/resume.
type ResumeView struct {
	ResumeID   int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Version    string          `json:"resume_version"`
	FileType   string          `json:"file_type"`
	Encoding   ContentEncoding `json:"encoding"`
	Content    string          `json:"resume_content"`
	UploadedAt time.Time       `json:"uploaded_at"`
}
