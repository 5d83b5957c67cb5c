// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JobLinks is the ordered list of job posting URLs of a submission.
// It is persisted as a JSON array in a single text column.
type JobLinks []string

// Value implements [driver.Valuer].
func (j JobLinks) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(j))
	if err != nil {
		return nil, fmt.Errorf("encode job links: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (j *JobLinks) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*j = JobLinks{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported job links column type %T", src)
	}

	var links []string
	if err := json.Unmarshal(raw, &links); err != nil {
		return fmt.Errorf("decode job links: %w", err)
	}
	*j = links
	return nil
}

// OnboardingRecord is the outcome of one onboarding submission. Records are
// insert-only: a resubmission creates a new record instead of replacing the
// previous one.
type OnboardingRecord struct {
	RecordID            int64          `json:"id"`
	UserID              int64          `json:"user_id"`
	JobLinks            JobLinks       `json:"job_links"`
	GetJobInMonths      int            `json:"get_job_in_months"`
	DailyTimeCommitment float64        `json:"daily_time_commitment"`
	LearningStyle       *string        `json:"learning_style,omitempty"`
	CareerTransition    *string        `json:"career_transition,omitempty"`
	Budget              *float64       `json:"budget,omitempty"`
	Analysis            AnalysisResult `json:"analysis"`
	WorkflowID          string         `json:"workflow_id"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the OnboardingRecord model.
func (o OnboardingRecord) TableName() string {
	return "onboarding_records"
}

// OnboardingRequest is the canonical shape of one onboarding submission,
// whatever transport encoding (JSON body or form fields) it arrived in.
type OnboardingRequest struct {
	// user profile
	Email       string  `json:"email" validate:"required,email"`
	FullName    string  `json:"full_name" validate:"required"`
	Phone       *string `json:"phone,omitempty"`
	CurrentRole *string `json:"current_role,omitempty"`
	TargetRole  *string `json:"target_role,omitempty"`

	// onboarding form
	JobLinks            []string `json:"job_links" validate:"required,min=1,dive,required"`
	GetJobInMonths      int      `json:"get_job_in_months" validate:"gt=0"`
	DailyTimeCommitment float64  `json:"daily_time_commitment" validate:"gt=0,lte=24"`
	LearningStyle       *string  `json:"learning_style,omitempty"`
	CareerTransition    *string  `json:"career_transition,omitempty"`
	Budget              *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`

	// resume
	ResumeContent  string `json:"resume_content"`
	ResumeEncoding string `json:"resume_encoding,omitempty" validate:"omitempty,oneof=text base64"`
	ResumeVersion  string `json:"resume_version,omitempty"`
	FileType       string `json:"file_type,omitempty"`

	// ResumeFile carries the bytes of an uploaded file part. It takes
	// precedence over ResumeContent.
	ResumeFile []byte `json:"-"`
}

// Normalize trims surrounding whitespace from free-text fields and drops
// blank job links and blank optional values.
func (r *OnboardingRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.FullName = strings.TrimSpace(r.FullName)
	r.ResumeVersion = strings.TrimSpace(r.ResumeVersion)
	r.FileType = strings.ToLower(strings.TrimSpace(r.FileType))
	r.ResumeEncoding = strings.ToLower(strings.TrimSpace(r.ResumeEncoding))

	r.Phone = trimOptional(r.Phone)
	r.CurrentRole = trimOptional(r.CurrentRole)
	r.TargetRole = trimOptional(r.TargetRole)
	r.LearningStyle = trimOptional(r.LearningStyle)
	r.CareerTransition = trimOptional(r.CareerTransition)

	links := make([]string, 0, len(r.JobLinks))
	for _, link := range r.JobLinks {
		if link = strings.TrimSpace(link); link != "" {
			links = append(links, link)
		}
	}
	r.JobLinks = links
}

// ResumeBytes returns the raw resume bytes together with their encoding tag.
// Uploaded files are always binary; base64 content is decoded to binary;
// anything else is stored as text.
func (r *OnboardingRequest) ResumeBytes() ([]byte, ContentEncoding, error) {
	if len(r.ResumeFile) > 0 {
		return r.ResumeFile, EncodingBinary, nil
	}

	if r.ResumeEncoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(r.ResumeContent))
		if err != nil {
			return nil, "", fmt.Errorf("decode base64 resume content: %w", err)
		}
		return decoded, EncodingBinary, nil
	}

	return []byte(r.ResumeContent), EncodingText, nil
}

// Profile builds the [User] described by the request.
func (r *OnboardingRequest) Profile() User {
	return User{
		Email:       r.Email,
		FullName:    r.FullName,
		Phone:       r.Phone,
		CurrentRole: r.CurrentRole,
		TargetRole:  r.TargetRole,
	}
}

// OnboardingResult is the success envelope returned by a submission.
type OnboardingResult struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	UserID       int64          `json:"user_id"`
	OnboardingID int64          `json:"onboarding_id"`
	User         UserSummary    `json:"user"`
	Resume       ResumeSummary  `json:"resume"`
	Analysis     AnalysisResult `json:"analysis"`
}

// OnboardingRecordResponse wraps a single stored record.
type OnboardingRecordResponse struct {
	Success bool             `json:"success"`
	Data    OnboardingRecord `json:"data"`
}

// OnboardingListResponse wraps every stored record.
type OnboardingListResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []OnboardingRecord `json:"data"`
}

// ErrorResponse is the body written for every non-2xx answer.
type ErrorResponse struct {
	Detail string   `json:"detail"`
	Fields []string `json:"fields,omitempty"`
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
