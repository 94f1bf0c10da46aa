package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"health-screen/internal/domain"
)

func fields(errs domain.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateRegisterRequest("student@uni.edu", "longenough", "19-22"))

	errs := v.ValidateRegisterRequest("", "", "")
	assert.ElementsMatch(t, []string{"email", "password", "age_group"}, fields(errs))

	errs = v.ValidateRegisterRequest("Student <student@uni.edu>", "short", "30-40")
	assert.ElementsMatch(t, []string{"email", "password", "age_group"}, fields(errs))
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Equal(t, domain.CodeOutOfRange, errs[1].Code)
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateLoginRequest("a@b.c", "x"))
	assert.Len(t, v.ValidateLoginRequest(" ", ""), 2)
}

func TestValidateResultID(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateResultID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.Len(t, v.ValidateResultID(""), 1)
	assert.Len(t, v.ValidateResultID("not-a-ulid"), 1)
	assert.Len(t, v.ValidateResultID("01ARZ3NDEKTSV4RRFFQ69G5FAU"), 1, "U is not in the ULID alphabet")
}

func TestValidateChatRequest(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateChatRequest("my back hurts", []domain.ChatTurn{{Role: domain.ChatRoleUser, Content: "hi"}}))
	assert.Len(t, v.ValidateChatRequest("   ", nil), 1)
	assert.Len(t, v.ValidateChatRequest(strings.Repeat("a", MaxChatMessageLen+1), nil), 1)
	assert.Len(t, v.ValidateChatRequest("ok", []domain.ChatTurn{{Role: "system", Content: "x"}}), 1)
	assert.Len(t, v.ValidateChatRequest("ok", make([]domain.ChatTurn, MaxChatHistory+1)), 2)
}

func TestValidatePaginationAndPeriod(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidatePagination(20, 0))
	assert.Len(t, v.ValidatePagination(0, -1), 2)
	assert.Len(t, v.ValidatePagination(MaxPageLimit+1, 0), 1)

	for period := range TrendPeriods {
		assert.Empty(t, v.ValidateTrendPeriod(period))
	}
	assert.Len(t, v.ValidateTrendPeriod("1y"), 1)

	assert.Empty(t, v.ValidateSessionDuration(30))
	assert.Len(t, v.ValidateSessionDuration(-1), 1)
}
