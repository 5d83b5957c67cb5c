// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/onboarding-intake/models"
)

const (
	usersTable       = "users"
	resumesTable     = "resumes"
	onboardingTable  = "onboarding_records"
	returningIDQuery = "RETURNING id"

	// current_role is a reserved word in PostgreSQL.
	colCurrentRole = `"current_role"`
)

var userColumns = []string{
	"id",
	"email",
	"full_name",
	"phone",
	colCurrentRole,
	"target_role",
	"created_at",
	"updated_at",
}

var resumeColumns = []string{
	"id",
	"user_id",
	"content",
	"content_encoding",
	"resume_version",
	"file_type",
	"uploaded_at",
}

var onboardingColumns = []string{
	"id",
	"user_id",
	"job_links",
	"get_job_in_months",
	"daily_time_commitment",
	"learning_style",
	"career_transition",
	"budget",
	"analysis",
	"workflow_id",
	"created_at",
	"updated_at",
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "full_name", "phone", colCurrentRole, "target_role", "created_at", "updated_at").
		Values(user.Email, user.FullName, user.Phone, user.CurrentRole, user.TargetRole, now, now).
		Suffix(returningIDQuery).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("full_name", user.FullName).
		Set("phone", user.Phone).
		Set(colCurrentRole, user.CurrentRole).
		Set("target_role", user.TargetRole).
		Set("updated_at", now).
		Where(sq.Eq{"id": user.UserID}).
		ToSql()
}

func buildInsertResumeQuery(b sq.StatementBuilderType, resume models.Resume) (string, []any, error) {
	return b.Insert(resumesTable).
		Columns("user_id", "content", "content_encoding", "resume_version", "file_type", "uploaded_at").
		Values(resume.UserID, resume.Content, string(resume.Encoding), resume.Version, resume.FileType, resume.UploadedAt).
		Suffix(returningIDQuery).
		ToSql()
}

func buildSelectLatestResumeQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(resumeColumns...).
		From(resumesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
}

func buildInsertOnboardingRecordQuery(b sq.StatementBuilderType, record models.OnboardingRecord) (string, []any, error) {
	return b.Insert(onboardingTable).
		Columns(
			"user_id",
			"job_links",
			"get_job_in_months",
			"daily_time_commitment",
			"learning_style",
			"career_transition",
			"budget",
			"analysis",
			"workflow_id",
			"created_at",
			"updated_at",
		).
		Values(
			record.UserID,
			record.JobLinks,
			record.GetJobInMonths,
			record.DailyTimeCommitment,
			record.LearningStyle,
			record.CareerTransition,
			record.Budget,
			record.Analysis,
			record.WorkflowID,
			record.CreatedAt,
			record.UpdatedAt,
		).
		Suffix(returningIDQuery).
		ToSql()
}

func buildSelectRecordByUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(onboardingColumns...).
		From(onboardingTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
}

func buildSelectAllRecordsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(onboardingColumns...).
		From(onboardingTable).
		OrderBy("id DESC").
		ToSql()
}
