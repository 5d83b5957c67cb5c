// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/onboarding-intake/internal/validators"
	"github.com/MKhiriev/onboarding-intake/models"
)

// Form field names. The legacy names are still sent by older clients.
const (
	formResumeFile        = "resume"
	formLegacyJobLink     = "job_link"
	formLegacyJobDuration = "job_duration"
	formLegacyDailyCommit = "daily_commitment"
)

const (
	contentTypeJSON       = "application/json"
	contentTypeMultipart  = "multipart/form-data"
	contentTypeURLEncoded = "application/x-www-form-urlencoded"
)

// multipartMemory is the share of a multipart body kept in memory; larger
// parts spill to temporary files.
const multipartMemory = 1 << 20

const (
	ruleNumber = "number"
	ruleType   = "type"
)

// decodeOnboardingRequest reads a submission in any supported encoding into
// the canonical request shape.
func decodeOnboardingRequest(r *http.Request) (models.OnboardingRequest, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType := ""
	if contentType != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(contentType)
		if err != nil {
			return models.OnboardingRequest{}, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
	}

	switch mediaType {
	case "", contentTypeJSON:
		return decodeJSONSubmission(r.Body)

	case contentTypeMultipart:
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return models.OnboardingRequest{}, bodyError(err)
		}
		req, err := decodeFormSubmission(r.MultipartForm.Value)
		if err != nil {
			return models.OnboardingRequest{}, err
		}
		if err = attachResumeFile(&req, r.MultipartForm.File[formResumeFile]); err != nil {
			return models.OnboardingRequest{}, err
		}
		return req, nil

	case contentTypeURLEncoded:
		if err := r.ParseForm(); err != nil {
			return models.OnboardingRequest{}, bodyError(err)
		}
		return decodeFormSubmission(r.PostForm)

	default:
		return models.OnboardingRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}

func decodeJSONSubmission(body io.Reader) (models.OnboardingRequest, error) {
	var req models.OnboardingRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return models.OnboardingRequest{}, &validators.ValidationError{
				Violations: []validators.Violation{{Field: typeErr.Field, Rule: ruleType}},
			}
		}
		return models.OnboardingRequest{}, bodyError(err)
	}
	// exactly one JSON value per body
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON body")
		}
		return models.OnboardingRequest{}, bodyError(err)
	}
	return req, nil
}

func decodeFormSubmission(form url.Values) (models.OnboardingRequest, error) {
	req := models.OnboardingRequest{
		Email:            form.Get("email"),
		FullName:         form.Get("full_name"),
		Phone:            optionalValue(form, "phone"),
		CurrentRole:      optionalValue(form, "current_role"),
		TargetRole:       optionalValue(form, "target_role"),
		LearningStyle:    optionalValue(form, "learning_style"),
		CareerTransition: optionalValue(form, "career_transition"),
		ResumeContent:    form.Get("resume_content"),
		ResumeEncoding:   form.Get("resume_encoding"),
		ResumeVersion:    form.Get("resume_version"),
		FileType:         form.Get("file_type"),
	}

	errs := &validators.ValidationError{}
	numberViolation := func(field string) {
		errs.Violations = append(errs.Violations, validators.Violation{Field: field, Rule: ruleNumber})
	}

	links, err := formJobLinks(form)
	if err != nil {
		errs.Violations = append(errs.Violations, validators.Violation{Field: validators.FieldJobLinks, Rule: ruleType})
	}
	req.JobLinks = links

	if raw := firstValue(form, validators.FieldGetJobInMonths, formLegacyJobDuration); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			numberViolation(validators.FieldGetJobInMonths)
		}
		req.GetJobInMonths = months
	}

	if raw := firstValue(form, validators.FieldDailyTimeCommitment, formLegacyDailyCommit); raw != "" {
		daily, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			numberViolation(validators.FieldDailyTimeCommitment)
		}
		req.DailyTimeCommitment = daily
	}

	if raw := firstValue(form, validators.FieldBudget); raw != "" {
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			numberViolation(validators.FieldBudget)
		} else {
			req.Budget = &budget
		}
	}

	if len(errs.Violations) > 0 {
		return models.OnboardingRequest{}, errs
	}
	return req, nil
}

// formJobLinks collects job links from repeated job_links values, a single
// JSON array value, or the legacy job_link field.
func formJobLinks(form url.Values) ([]string, error) {
	values := append([]string{}, form[validators.FieldJobLinks]...)
	values = append(values, form[formLegacyJobLink]...)

	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var links []string
		if err := json.Unmarshal([]byte(values[0]), &links); err != nil {
			return nil, err
		}
		return links, nil
	}

	return values, nil
}

func attachResumeFile(req *models.OnboardingRequest, files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return nil
	}

	header := files[0]
	f, err := header.Open()
	if err != nil {
		return fmt.Errorf("%w: open resume part: %w", ErrMalformedBody, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return bodyError(err)
	}

	req.ResumeFile = content
	if strings.TrimSpace(req.FileType) == "" {
		req.FileType = strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	}
	return nil
}

func firstValue(form url.Values, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(form.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

func optionalValue(form url.Values, key string) *string {
	if _, ok := form[key]; !ok {
		return nil
	}
	v := form.Get(key)
	return &v
}

// bodyError classifies a body read failure.
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}
