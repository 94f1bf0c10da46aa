package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/posture"
)

func goodPostureRequest() *dto.PostureRequest {
	return &dto.PostureRequest{
		Posture:         domain.PostureMetrics{NeckAngle: 10, BackCurvature: 5, ShoulderBalance: 95, HeadTilt: 2, DistanceFromScreen: 60},
		Face:            domain.FaceMetrics{DarkCircles: 10, SkinCondition: 90, FatigueLevel: 10, Hydration: 90},
		Eye:             domain.EyeMetrics{BlinkRate: 17, EyeOpenness: 90, EyeStrain: 10, ScreenGlare: 10},
		Lighting:        domain.LightingMetrics{Brightness: 60, Contrast: 60, BlueLight: 20},
		SessionDuration: 15,
	}
}

func TestPostureService_Record(t *testing.T) {
	repo := new(MockPostureRepository)
	svc := NewPostureService(repo, posture.NewGenerator(1))
	req := goodPostureRequest()
	want := posture.Evaluate(domain.PostureSession{Posture: req.Posture, Face: req.Face, Eye: req.Eye, Lighting: req.Lighting})

	repo.On("CreatePostureRecord", mock.Anything, mock.MatchedBy(func(r *domain.PostureRecord) bool {
		return r.UserID == "user-1" && r.SessionDuration == 15 && r.Session.Scores == want && !r.Session.Synthetic
	})).Return(nil).Once()

	resp, err := svc.Record(context.Background(), "user-1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, want, resp.Session.Scores)
	assert.Equal(t, 15, resp.SessionDuration)
	repo.AssertExpectations(t)
}

func TestPostureService_Record_StoreError(t *testing.T) {
	repo := new(MockPostureRepository)
	svc := NewPostureService(repo, posture.NewGenerator(1))
	repo.On("CreatePostureRecord", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.Record(context.Background(), "user-1", goodPostureRequest())
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeInternal))
}

func TestPostureService_Simulate(t *testing.T) {
	repo := new(MockPostureRepository)
	svc := NewPostureService(repo, posture.NewGenerator(42))

	resp := svc.Simulate()
	assert.True(t, resp.Session.Synthetic)
	assert.Empty(t, resp.ID)
	assert.Equal(t, posture.Evaluate(resp.Session), resp.Session.Scores)
	repo.AssertNotCalled(t, "CreatePostureRecord", mock.Anything, mock.Anything)
}
