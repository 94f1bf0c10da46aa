package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/logger"
	"health-screen/internal/posture"
	"health-screen/internal/util"
)

// PostureService scores and stores posture-check sessions.
type PostureService interface {
	Record(ctx context.Context, userID string, req *dto.PostureRequest) (*dto.PostureResponse, error)
	Simulate() *dto.PostureResponse
}

type postureServiceImpl struct {
	repo      domain.PostureRepository
	generator *posture.Generator
	now       func() time.Time
}

// NewPostureService creates a posture service. generator supplies the
// synthetic sessions returned by Simulate.
func NewPostureService(repo domain.PostureRepository, generator *posture.Generator) PostureService {
	return &postureServiceImpl{repo: repo, generator: generator, now: time.Now}
}

func (s *postureServiceImpl) Record(ctx context.Context, userID string, req *dto.PostureRequest) (*dto.PostureResponse, error) {
	session := domain.PostureSession{
		Posture:  req.Posture,
		Face:     req.Face,
		Eye:      req.Eye,
		Lighting: req.Lighting,
	}
	session.Scores = posture.Evaluate(session)

	record := &domain.PostureRecord{
		ID:              util.NewULID(),
		UserID:          userID,
		Session:         session,
		SessionDuration: req.SessionDuration,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.CreatePostureRecord(ctx, record); err != nil {
		logger.Get().Error("Failed to store posture record", zap.Error(err), zap.String("userID", userID))
		return nil, domain.NewInternalError("failed to store posture record", err)
	}

	logger.Get().Info("Posture session recorded",
		zap.String("userID", userID),
		zap.Int("overall", session.Scores.Overall))
	return &dto.PostureResponse{
		ID:              record.ID,
		Session:         session,
		SessionDuration: record.SessionDuration,
		CreatedAt:       record.CreatedAt,
	}, nil
}

// Simulate returns a synthetic session. It is not stored.
func (s *postureServiceImpl) Simulate() *dto.PostureResponse {
	return &dto.PostureResponse{
		Session:   s.generator.Sample(),
		CreatedAt: s.now().UTC(),
	}
}
