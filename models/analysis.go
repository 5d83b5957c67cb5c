// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Validation errors returned by [AnalysisResult.Validate].
var (
	ErrAnalysisMissingStatus       = errors.New("analysis result has no status")
	ErrAnalysisMissingWorkflowID   = errors.New("analysis result has no workflow id")
	ErrAnalysisMissingLearningPath = errors.New("analysis result has no learning path")
)

// AnalysisRequest is the canonical payload sent to the external analysis
// workflow. Every field is always present in the encoded form so the
// workflow sees the same shape no matter how the submission arrived.
type AnalysisRequest struct {
	UserID              int64    `json:"user_id"`
	Email               string   `json:"email"`
	FullName            string   `json:"full_name"`
	CurrentRole         *string  `json:"current_role"`
	TargetRole          *string  `json:"target_role"`
	JobLinks            []string `json:"job_links"`
	GetJobInMonths      int      `json:"get_job_in_months"`
	DailyTimeCommitment float64  `json:"daily_time_commitment"`
	LearningStyle       *string  `json:"learning_style"`
	CareerTransition    *string  `json:"career_transition"`
	Budget              *float64 `json:"budget"`
	ResumeVersion       string   `json:"resume_version"`
	ResumeFileType      string   `json:"resume_file_type"`
}

// AnalysisResult is the structured answer of the analysis workflow. The
// field names and nesting are consumed by the frontend and must stay stable.
type AnalysisResult struct {
	Status                    string                     `json:"status"`
	WorkflowID                string                     `json:"workflow_id"`
	Message                   string                     `json:"message"`
	UserProfile               ProfileInsight             `json:"user_profile"`
	SkillGapAnalysis          SkillGapAnalysis           `json:"skill_gap_analysis"`
	RecommendedLearningPath   LearningPath               `json:"recommended_learning_path"`
	DailySchedule             DailySchedule              `json:"daily_schedule"`
	JobMarketInsights         JobMarketInsights          `json:"job_market_insights"`
	NetworkingRecommendations []NetworkingRecommendation `json:"networking_recommendations"`
	MilestoneTracker          []Milestone                `json:"milestone_tracker"`
	ResumeOptimization        ResumeOptimization         `json:"resume_optimization"`
	Timestamp                 string                     `json:"timestamp"`
}

// ProfileInsight summarises the user as seen by the workflow.
type ProfileInsight struct {
	TargetRole        string  `json:"target_role"`
	Urgency           string  `json:"urgency"`
	AvailabilityScore float64 `json:"availability_score"`
}

// SkillGapAnalysis lists skills missing for the target role.
type SkillGapAnalysis struct {
	MissingSkills     []string       `json:"missing_skills"`
	ProficiencyLevels map[string]int `json:"proficiency_levels"`
}

// LearningPath is the recommended plan; Modules are ordered by priority.
type LearningPath struct {
	DurationWeeks int              `json:"duration_weeks"`
	Modules       []LearningModule `json:"modules"`
}

// LearningModule is a single step of a [LearningPath].
type LearningModule struct {
	Name          string   `json:"name"`
	DurationHours int      `json:"duration_hours"`
	Priority      string   `json:"priority"`
	Resources     []string `json:"resources"`
}

// DailySchedule splits the daily commitment; Breakdown values are percentages.
type DailySchedule struct {
	TotalHours float64           `json:"total_hours"`
	Breakdown  ScheduleBreakdown `json:"breakdown"`
}

// ScheduleBreakdown holds percentages of the daily time.
type ScheduleBreakdown struct {
	Theory   int `json:"theory"`
	Practice int `json:"practice"`
	Projects int `json:"projects"`
}

// JobMarketInsights carries salary and demand figures for the target role.
type JobMarketInsights struct {
	AvgSalaryTargetRole      int      `json:"avg_salary_target_role"`
	JobOpeningsCount         int      `json:"job_openings_count"`
	RequiredExperienceMonths int      `json:"required_experience_months"`
	TopCompanies             []string `json:"top_companies"`
}

// NetworkingRecommendation is one suggested networking action.
type NetworkingRecommendation struct {
	Type   string `json:"type"`
	Action string `json:"action"`
}

// Milestone is a checkpoint of the plan.
type Milestone struct {
	Milestone    string `json:"milestone"`
	TargetDate   string `json:"target_date"`
	Projects     int    `json:"projects,omitempty"`
	Applications string `json:"applications,omitempty"`
}

// ResumeOptimization holds resume suggestions and a 0-100 score.
type ResumeOptimization struct {
	Suggestions    []string `json:"suggestions"`
	Score          int      `json:"score"`
	AreasToImprove []string `json:"areas_to_improve"`
}

// Validate checks the minimal contract every gateway answer must satisfy
// before it is persisted.
func (a AnalysisResult) Validate() error {
	if a.Status == "" {
		return ErrAnalysisMissingStatus
	}
	if a.WorkflowID == "" {
		return ErrAnalysisMissingWorkflowID
	}
	if a.RecommendedLearningPath.DurationWeeks <= 0 && len(a.RecommendedLearningPath.Modules) == 0 {
		return ErrAnalysisMissingLearningPath
	}
	return nil
}

// Value implements [driver.Valuer]; the result is stored as JSON text.
func (a AnalysisResult) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode analysis result: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (a *AnalysisResult) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = AnalysisResult{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported analysis column type %T", src)
	}

	if err := json.Unmarshal(raw, a); err != nil {
		return fmt.Errorf("decode analysis result: %w", err)
	}
	return nil
}
