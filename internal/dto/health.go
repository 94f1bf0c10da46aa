package dto

import (
	"time"

	"health-screen/internal/domain"
	"health-screen/internal/survey"
)

// Disclaimer accompanies every scored result.
const Disclaimer = "Results are for reference only and do not replace a professional medical diagnosis."

// AnalysisResponse is a scored survey with the id it can be fetched by.
// @Description Scored survey result
type AnalysisResponse struct {
	ResultID  string    `json:"result_id"`
	CreatedAt time.Time `json:"created_at"`
	domain.ScoreResult
	Disclaimer string `json:"disclaimer"`
}

// DemoResponse is the demo analysis together with its sample input.
type DemoResponse struct {
	Note   string               `json:"note"`
	Input  domain.SurveyAnswers `json:"input"`
	Result *AnalysisResponse    `json:"result"`
}

// SurveyHistoryResponse is one page of a user's submissions.
type SurveyHistoryResponse struct {
	Surveys []*domain.Survey `json:"surveys"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// ChatRequest is one user message with the preceding conversation.
// @Description Request body for the chat assistant
type ChatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history,omitempty"`
}

// PostureRequest is a posture-check session submitted by the client.
// SessionDuration is in minutes.
type PostureRequest struct {
	Posture         domain.PostureMetrics  `json:"posture"`
	Face            domain.FaceMetrics     `json:"face"`
	Eye             domain.EyeMetrics      `json:"eye"`
	Lighting        domain.LightingMetrics `json:"lighting"`
	SessionDuration int                    `json:"session_duration"`
}

// PostureResponse is a scored posture session.
type PostureResponse struct {
	ID              string                `json:"id,omitempty"`
	Session         domain.PostureSession `json:"session"`
	SessionDuration int                   `json:"session_duration"`
	CreatedAt       time.Time             `json:"created_at"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// QuestionsResponse is the survey catalog.
type QuestionsResponse struct {
	Sections   []survey.Section `json:"sections"`
	Disclaimer string           `json:"disclaimer"`
}
