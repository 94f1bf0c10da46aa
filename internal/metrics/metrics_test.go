package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-screen/internal/domain"
)

func TestObserveAnalysis(t *testing.T) {
	m := New()
	m.ObserveAnalysis(SourceAnonymous, domain.RiskLow)
	m.ObserveAnalysis(SourceAnonymous, domain.RiskLow)
	m.ObserveAnalysis(SourceSubmitted, domain.RiskHigh)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues(SourceAnonymous, "LOW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues(SourceSubmitted, "HIGH")))
}

func TestObserveChatReply(t *testing.T) {
	m := New()
	m.ObserveChatReply(domain.ChatModeRuleBased)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.chatReplies.WithLabelValues("rule_based")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAnalysis(SourceAnonymous, domain.RiskLow)
		m.ObserveChatReply(domain.ChatModeLLM)
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest("GET", "/api/survey/questions", 200, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "healthscreen_http_request_duration_seconds")
	assert.Contains(t, string(body), `route="/api/survey/questions"`)
}
