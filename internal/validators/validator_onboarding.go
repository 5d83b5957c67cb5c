// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/onboarding-intake/models"
)

// Field names reported in [Violation.Field]. They match the JSON names of the
// request.
const (
	FieldEmail               = "email"
	FieldFullName            = "full_name"
	FieldJobLinks            = "job_links"
	FieldGetJobInMonths      = "get_job_in_months"
	FieldDailyTimeCommitment = "daily_time_commitment"
	FieldBudget              = "budget"
	FieldResumeContent       = "resume_content"
	FieldResumeEncoding      = "resume_encoding"
	FieldUserID              = "user_id"
)

// Rule names used for checks that have no struct tag.
const (
	RuleRequired = "required"
	RuleBase64   = "base64"
	RuleGt       = "gt"
)

var onboardingFields = []string{
	FieldEmail,
	FieldFullName,
	FieldJobLinks,
	FieldGetJobInMonths,
	FieldDailyTimeCommitment,
	FieldBudget,
	FieldResumeContent,
	FieldResumeEncoding,
}

// OnboardingValidator checks onboarding submissions and user ids. Struct
// rules come from the `validate` tags of [models.OnboardingRequest].
type OnboardingValidator struct {
	validate *validator.Validate
}

// NewOnboardingValidator returns a [Validator] for [models.OnboardingRequest]
// values and int64 user ids.
func NewOnboardingValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &OnboardingValidator{validate: v}
}

func (v *OnboardingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OnboardingRequest:
		return v.validateOnboardingRequest(ctx, value, fields...)
	case *models.OnboardingRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateOnboardingRequest(ctx, *value, fields...)

	case int64:
		return v.validateUserID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OnboardingValidator) validateOnboardingRequest(ctx context.Context, req models.OnboardingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = onboardingFields
	}
	for _, f := range fields {
		if !slices.Contains(onboardingFields, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	all := &ValidationError{}

	if err := v.validate.StructCtx(ctx, req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		for _, fe := range fieldErrs {
			all.add(rootField(fe.Field()), fe.Tag())
		}
	}

	if len(req.ResumeFile) == 0 {
		switch {
		case strings.TrimSpace(req.ResumeContent) == "":
			all.add(FieldResumeContent, RuleRequired)
		case req.ResumeEncoding == RuleBase64:
			if _, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.ResumeContent)); err != nil {
				all.add(FieldResumeContent, RuleBase64)
			}
		}
	}

	scoped := &ValidationError{}
	for _, violation := range all.Violations {
		if slices.Contains(fields, violation.Field) {
			scoped.Violations = append(scoped.Violations, violation)
		}
	}

	return scoped.orNil()
}

func (v *OnboardingValidator) validateUserID(userID int64, fields ...string) error {
	for _, f := range fields {
		if f != FieldUserID {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	errs := &ValidationError{}
	if userID <= 0 {
		errs.add(FieldUserID, RuleGt)
	}
	return errs.orNil()
}

// rootField strips the element index of dive errors: job_links[1] -> job_links.
func rootField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
