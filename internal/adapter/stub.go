// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/onboarding-intake/models"
)

// Canned values of the stub workflow.
const (
	StubWorkflowID    = "n8n_workflow_001"
	StubStatus        = "success"
	StubMessage       = "Onboarding analysis completed"
	StubTimestamp     = "2025-11-06T12:00:00Z"
	stubUnknownRole   = "Unknown"
	urgencyHigh       = "high"
	urgencyMedium     = "medium"
	urgentWithinMonth = 3
	fullWorkdayHours  = 8
	weeksPerMonth     = 4
)

type stubAnalysisGateway struct{}

// NewStubAnalysisGateway returns a deterministic, side-effect free
// [AnalysisGateway]. Only the fields derived from the request vary between
// calls; every other section is a fixed sample analysis.
func NewStubAnalysisGateway() AnalysisGateway {
	return &stubAnalysisGateway{}
}

// Analyze implements [AnalysisGateway].
func (s *stubAnalysisGateway) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return models.AnalysisResult{}, mapTransportError(err)
	}

	targetRole := stubUnknownRole
	if req.TargetRole != nil && *req.TargetRole != "" {
		targetRole = *req.TargetRole
	}

	urgency := urgencyMedium
	if req.GetJobInMonths <= urgentWithinMonth {
		urgency = urgencyHigh
	}

	result := models.AnalysisResult{
		Status:     StubStatus,
		WorkflowID: StubWorkflowID,
		Message:    StubMessage,
		UserProfile: models.ProfileInsight{
			TargetRole:        targetRole,
			Urgency:           urgency,
			AvailabilityScore: req.DailyTimeCommitment / fullWorkdayHours * 100,
		},
		SkillGapAnalysis: models.SkillGapAnalysis{
			MissingSkills: []string{"Python", "Data Analysis", "SQL", "Tableau"},
			ProficiencyLevels: map[string]int{
				"Python":        30,
				"Data Analysis": 25,
				"SQL":           20,
				"Tableau":       0,
			},
		},
		RecommendedLearningPath: models.LearningPath{
			DurationWeeks: req.GetJobInMonths * weeksPerMonth,
			Modules: []models.LearningModule{
				{
					Name:          "Python Fundamentals",
					DurationHours: 40,
					Priority:      "high",
					Resources:     []string{"Coursera - Python for Data Analysis", "DataCamp - Python Basics"},
				},
				{
					Name:          "SQL Mastery",
					DurationHours: 35,
					Priority:      "high",
					Resources:     []string{"Mode Analytics SQL Tutorial", "LeetCode SQL Problems"},
				},
				{
					Name:          "Data Visualization with Tableau",
					DurationHours: 30,
					Priority:      "medium",
					Resources:     []string{"Tableau Public Gallery", "Udemy - Tableau Complete Course"},
				},
				{
					Name:          "Statistical Analysis",
					DurationHours: 25,
					Priority:      "medium",
					Resources:     []string{"Khan Academy Statistics", "Coursera - Statistics with R"},
				},
			},
		},
		DailySchedule: models.DailySchedule{
			TotalHours: req.DailyTimeCommitment,
			Breakdown:  models.ScheduleBreakdown{Theory: 40, Practice: 45, Projects: 15},
		},
		JobMarketInsights: models.JobMarketInsights{
			AvgSalaryTargetRole:      95000,
			JobOpeningsCount:         2847,
			RequiredExperienceMonths: 12,
			TopCompanies:             []string{"Google", "Microsoft", "Amazon", "Apple", "Meta"},
		},
		NetworkingRecommendations: []models.NetworkingRecommendation{
			{Type: "LinkedIn", Action: "Follow 20 data professionals in target companies"},
			{Type: "Community", Action: "Join local data science meetups"},
			{Type: "Conference", Action: "Attend tech conferences (Q2-Q3)"},
		},
		MilestoneTracker: []models.Milestone{
			{Milestone: "Complete Python & SQL", TargetDate: "Week 8", Projects: 3},
			{Milestone: "Build Portfolio with 3 Projects", TargetDate: "Week 16", Projects: 3},
			{Milestone: "Start Applying to Jobs", TargetDate: "Week 20", Applications: "5+ per week"},
		},
		ResumeOptimization: models.ResumeOptimization{
			Suggestions: []string{
				"Add quantifiable achievements",
				"Highlight relevant technical skills",
				"Include portfolio links",
				"Tailor for ATS systems",
			},
			Score:          65,
			AreasToImprove: []string{"Technical Skills Section", "Projects Section"},
		},
		Timestamp: StubTimestamp,
	}

	if err := result.Validate(); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w: %w", ErrGateway, ErrGatewayResponse, err)
	}

	return result, nil
}
