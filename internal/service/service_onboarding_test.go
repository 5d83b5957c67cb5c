// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/onboarding-intake/internal/adapter"
	"github.com/MKhiriev/onboarding-intake/internal/config"
	"github.com/MKhiriev/onboarding-intake/internal/logger"
	"github.com/MKhiriev/onboarding-intake/internal/mock"
	"github.com/MKhiriev/onboarding-intake/internal/store"
	"github.com/MKhiriev/onboarding-intake/models"
)

type pipelineMocks struct {
	users      *mock.MockUserRepository
	resumes    *mock.MockResumeRepository
	onboarding *mock.MockOnboardingRepository
	transactor *mock.MockTransactor
	gateway    *mock.MockAnalysisGateway
}

func (m *pipelineMocks) repositories() store.Repositories {
	return store.Repositories{Users: m.users, Resumes: m.resumes, Onboarding: m.onboarding}
}

// expectTransaction makes the transactor run fn against the repository mocks
// and return whatever fn returns, like a real unit of work would.
func (m *pipelineMocks) expectTransaction() *gomock.Call {
	return m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, store.Repositories) error) error {
			return fn(ctx, m.repositories())
		})
}

// newTestOnboardingSvc builds onboardingService on mocks.
func newTestOnboardingSvc(t *testing.T, ctrl *gomock.Controller) (*onboardingService, *pipelineMocks) {
	t.Helper()

	m := &pipelineMocks{
		users:      mock.NewMockUserRepository(ctrl),
		resumes:    mock.NewMockResumeRepository(ctrl),
		onboarding: mock.NewMockOnboardingRepository(ctrl),
		transactor: mock.NewMockTransactor(ctrl),
		gateway:    mock.NewMockAnalysisGateway(ctrl),
	}

	svc := NewOnboardingService(m.repositories(), m.transactor, m.gateway, config.Adapter{RequestTimeout: time.Second}, logger.Nop())
	return svc.(*onboardingService), m
}

func strPtr(s string) *string { return &s }

func validSubmission() models.OnboardingRequest {
	return models.OnboardingRequest{
		Email:               "a@x.com",
		FullName:            "A",
		TargetRole:          strPtr("Data Analyst"),
		JobLinks:            []string{"a.com/job1", "b.com/job2"},
		GetJobInMonths:      6,
		DailyTimeCommitment: 2.5,
		LearningStyle:       strPtr("visual"),
		ResumeContent:       "experienced analyst",
	}
}

func sampleAnalysis() models.AnalysisResult {
	return models.AnalysisResult{
		Status:                  "success",
		WorkflowID:              "wf-42",
		RecommendedLearningPath: models.LearningPath{DurationWeeks: 24},
	}
}

// ── SubmitOnboarding ─────────────────────────────────────────────────────────

func TestOnboardingService_SubmitOnboarding_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOnboardingSvc(t, ctrl)
	ctx := context.Background()
	req := validSubmission()
	req.Email = "  a@x.com "

	storedUser := models.User{UserID: 7, Email: "a@x.com", FullName: "A", TargetRole: strPtr("Data Analyst")}
	analysis := sampleAnalysis()

	m.expectTransaction()
	gomock.InOrder(
		m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "a@x.com", u.Email)
				assert.Equal(t, "A", u.FullName)
				assert.Equal(t, "Data Analyst", *u.TargetRole)
				return storedUser, nil
			},
		),
		m.resumes.EXPECT().AddResume(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.Resume) (models.Resume, error) {
				assert.Equal(t, int64(7), r.UserID)
				assert.Equal(t, []byte("experienced analyst"), r.Content)
				assert.Equal(t, models.EncodingText, r.Encoding)
				assert.Equal(t, models.DefaultResumeVersion, r.Version)
				assert.Equal(t, models.DefaultResumeFileType, r.FileType)
				r.ResumeID = 3
				return r, nil
			},
		),
		m.gateway.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, ar models.AnalysisRequest) (models.AnalysisResult, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline, "gateway call must be bounded")
				assert.Equal(t, int64(7), ar.UserID)
				assert.Equal(t, "a@x.com", ar.Email)
				assert.Equal(t, []string{"a.com/job1", "b.com/job2"}, ar.JobLinks)
				assert.Equal(t, 6, ar.GetJobInMonths)
				assert.Equal(t, 2.5, ar.DailyTimeCommitment)
				assert.Equal(t, "v1.0", ar.ResumeVersion)
				assert.Equal(t, "pdf", ar.ResumeFileType)
				return analysis, nil
			},
		),
		m.onboarding.EXPECT().AddOnboardingRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec models.OnboardingRecord) (models.OnboardingRecord, error) {
				assert.Equal(t, int64(7), rec.UserID)
				assert.Equal(t, models.JobLinks{"a.com/job1", "b.com/job2"}, rec.JobLinks)
				assert.Equal(t, "visual", *rec.LearningStyle)
				assert.Equal(t, "wf-42", rec.WorkflowID)
				assert.Equal(t, analysis, rec.Analysis)
				rec.RecordID = 11
				return rec, nil
			},
		),
	)

	result, err := svc.SubmitOnboarding(ctx, req)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, MsgOnboardingCompleted, result.Message)
	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, int64(11), result.OnboardingID)
	assert.Equal(t, models.UserSummary{UserID: 7, Email: "a@x.com", FullName: "A"}, result.User)
	assert.Equal(t, int64(3), result.Resume.ResumeID)
	assert.Equal(t, len("experienced analyst"), result.Resume.Size)
	assert.Equal(t, analysis, result.Analysis)
}

func TestOnboardingService_SubmitOnboarding_CallerResumeLabels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOnboardingSvc(t, ctrl)
	req := validSubmission()
	req.ResumeVersion = "v3-final"
	req.FileType = "DOCX"
	req.ResumeEncoding = "base64"
	req.ResumeContent = "JVBERi0xLjQ="

	m.expectTransaction()
	m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.resumes.EXPECT().AddResume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Resume) (models.Resume, error) {
			assert.Equal(t, "v3-final", r.Version)
			assert.Equal(t, "docx", r.FileType)
			assert.Equal(t, []byte("%PDF-1.4"), r.Content)
			assert.Equal(t, models.EncodingBinary, r.Encoding)
			return r, nil
		},
	)
	m.gateway.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ar models.AnalysisRequest) (models.AnalysisResult, error) {
			assert.Equal(t, "v3-final", ar.ResumeVersion)
			assert.Equal(t, "docx", ar.ResumeFileType)
			return sampleAnalysis(), nil
		},
	)
	m.onboarding.EXPECT().AddOnboardingRecord(gomock.Any(), gomock.Any()).Return(models.OnboardingRecord{RecordID: 1}, nil)

	_, err := svc.SubmitOnboarding(context.Background(), req)
	require.NoError(t, err)
}

func TestOnboardingService_SubmitOnboarding_UndecodableResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestOnboardingSvc(t, ctrl)
	req := validSubmission()
	req.ResumeEncoding = "base64"
	req.ResumeContent = "%%%"

	_, err := svc.SubmitOnboarding(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOnboardingService_SubmitOnboarding_StepFailures(t *testing.T) {
	errDB := errors.New("disk I/O error")
	gatewayErr := fmt.Errorf("%w: %w", adapter.ErrGateway, adapter.ErrGatewayTimeout)

	tests := []struct {
		name    string
		setup   func(m *pipelineMocks)
		wantErr error
	}{
		{
			name: "upsert fails",
			setup: func(m *pipelineMocks) {
				m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)
			},
			wantErr: store.ErrEmailAlreadyExists,
		},
		{
			name: "resume insert fails",
			setup: func(m *pipelineMocks) {
				m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				m.resumes.EXPECT().AddResume(gomock.Any(), gomock.Any()).Return(models.Resume{}, errDB)
			},
			wantErr: errDB,
		},
		{
			name: "gateway fails",
			setup: func(m *pipelineMocks) {
				m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				m.resumes.EXPECT().AddResume(gomock.Any(), gomock.Any()).Return(models.Resume{ResumeID: 1}, nil)
				m.gateway.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.AnalysisResult{}, gatewayErr)
			},
			wantErr: adapter.ErrGateway,
		},
		{
			name: "record insert fails",
			setup: func(m *pipelineMocks) {
				m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				m.resumes.EXPECT().AddResume(gomock.Any(), gomock.Any()).Return(models.Resume{ResumeID: 1}, nil)
				m.gateway.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(sampleAnalysis(), nil)
				m.onboarding.EXPECT().AddOnboardingRecord(gomock.Any(), gomock.Any()).Return(models.OnboardingRecord{}, store.ErrUserNotFound)
			},
			wantErr: store.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestOnboardingSvc(t, ctrl)
			m.expectTransaction()
			tt.setup(m)

			result, err := svc.SubmitOnboarding(context.Background(), validSubmission())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.OnboardingResult{}, result)
		})
	}
}

func TestOnboardingService_SubmitOnboarding_CommitFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOnboardingSvc(t, ctrl)

	m.transactor.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, store.Repositories) error) error {
			require.NoError(t, fn(ctx, m.repositories()))
			return store.ErrCommittingTransaction
		})
	m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.resumes.EXPECT().AddResume(gomock.Any(), gomock.Any()).Return(models.Resume{ResumeID: 1}, nil)
	m.gateway.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(sampleAnalysis(), nil)
	m.onboarding.EXPECT().AddOnboardingRecord(gomock.Any(), gomock.Any()).Return(models.OnboardingRecord{RecordID: 1}, nil)

	result, err := svc.SubmitOnboarding(context.Background(), validSubmission())

	assert.ErrorIs(t, err, store.ErrCommittingTransaction)
	assert.Equal(t, models.OnboardingResult{}, result)
}

func TestOnboardingService_Analyze_NoTimeoutConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOnboardingSvc(t, ctrl)
	svc.gatewayTimeout = 0

	m.gateway.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.AnalysisRequest) (models.AnalysisResult, error) {
			_, hasDeadline := ctx.Deadline()
			assert.False(t, hasDeadline)
			return sampleAnalysis(), nil
		},
	)

	_, err := svc.analyze(context.Background(), models.AnalysisRequest{})
	require.NoError(t, err)
}

// ── read operations ──────────────────────────────────────────────────────────

func TestOnboardingService_ReadOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestOnboardingSvc(t, ctrl)
	ctx := context.Background()

	record := models.OnboardingRecord{RecordID: 2, UserID: 5}
	resume := models.Resume{ResumeID: 9, UserID: 5}

	m.onboarding.EXPECT().GetRecordByUser(ctx, int64(5)).Return(record, nil)
	m.resumes.EXPECT().GetLatestResume(ctx, int64(5)).Return(resume, nil)
	m.onboarding.EXPECT().ListRecords(ctx).Return([]models.OnboardingRecord{record}, nil)
	m.onboarding.EXPECT().GetRecordByUser(ctx, int64(6)).Return(models.OnboardingRecord{}, store.ErrRecordNotFound)

	gotRecord, err := svc.GetOnboarding(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, record, gotRecord)

	gotResume, err := svc.GetLatestResume(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, resume, gotResume)

	all, err := svc.ListOnboarding(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.GetOnboarding(ctx, 6)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ── buildAnalysisRequest ─────────────────────────────────────────────────────

func TestBuildAnalysisRequest(t *testing.T) {
	user := models.User{UserID: 3, Email: "b@y.com", FullName: "B", CurrentRole: strPtr("Teacher")}
	req := validSubmission()
	req.Budget = func() *float64 { v := 500.0; return &v }()
	resume := models.Resume{Version: "v2", FileType: "txt"}

	got := buildAnalysisRequest(user, req, resume)

	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, "b@y.com", got.Email)
	assert.Equal(t, "Teacher", *got.CurrentRole)
	assert.Nil(t, got.TargetRole, "identity comes from the stored user")
	assert.Equal(t, 500.0, *got.Budget)
	assert.Equal(t, "v2", got.ResumeVersion)
	assert.Equal(t, "txt", got.ResumeFileType)

	req.JobLinks[0] = "mutated"
	assert.Equal(t, "a.com/job1", got.JobLinks[0])
}
