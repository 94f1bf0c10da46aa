package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"health-screen/internal/domain"
)

// Request limits.
const (
	MinPasswordLength  = 8
	MaxPasswordLength  = 72 // bcrypt input limit
	MaxChatMessageLen  = 2000
	MaxChatHistory     = 50
	MaxPageLimit       = 100
	MaxPageOffset      = 100000
	MaxSessionDuration = 600
)

// TrendPeriods maps the accepted trend periods to their length in days.
var TrendPeriods = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest checks the credentials and age group. Consent is
// checked by the auth service.
func (v *Validator) ValidateRegisterRequest(email, password, ageGroup string) domain.ValidationErrors {
	errors := v.validateCredentials(email, password)

	if strings.TrimSpace(ageGroup) == "" {
		errors = append(errors, domain.NewMissingFieldError("age_group"))
	} else if !domain.ValidAgeGroup(ageGroup) {
		errors = append(errors, domain.NewInvalidFormatError("age_group", ageGroup))
	}

	return errors
}

// ValidateLoginRequest checks that both credentials are present.
func (v *Validator) ValidateLoginRequest(email, password string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}
	if password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}
	return errors
}

func (v *Validator) validateCredentials(email, password string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(email) {
		errors = append(errors, domain.NewInvalidFormatError("email", email))
	}

	if password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		errors = append(errors, domain.NewOutOfRangeError("password", len(password), MinPasswordLength, MaxPasswordLength))
	}

	return errors
}

// ValidateResultID checks a cached result id.
func (v *Validator) ValidateResultID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("result_id"))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("result_id", id))
	}
	return errors
}

// ValidateChatRequest checks the message and history size.
func (v *Validator) ValidateChatRequest(message string, history []domain.ChatTurn) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(message) > MaxChatMessageLen {
		errors = append(errors, domain.NewOutOfRangeError("message", len(message), 1, MaxChatMessageLen))
	}

	if len(history) > MaxChatHistory {
		errors = append(errors, domain.NewOutOfRangeError("history", len(history), 0, MaxChatHistory))
	}
	for _, turn := range history {
		if turn.Role != domain.ChatRoleUser && turn.Role != domain.ChatRoleAssistant {
			errors = append(errors, domain.NewInvalidFormatError("history.role", string(turn.Role)))
			break
		}
	}

	return errors
}

// ValidatePagination checks limit and offset query values.
func (v *Validator) ValidatePagination(limit, offset int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if limit <= 0 || limit > MaxPageLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, 1, MaxPageLimit))
	}
	if offset < 0 || offset > MaxPageOffset {
		errors = append(errors, domain.NewOutOfRangeError("offset", offset, 0, MaxPageOffset))
	}
	return errors
}

// ValidateTrendPeriod checks that period is one of TrendPeriods.
func (v *Validator) ValidateTrendPeriod(period string) domain.ValidationErrors {
	if _, ok := TrendPeriods[period]; !ok {
		return domain.ValidationErrors{domain.NewInvalidFormatError("period", period)}
	}
	return nil
}

// ValidateSessionDuration checks a posture session length in minutes.
func (v *Validator) ValidateSessionDuration(minutes int) domain.ValidationErrors {
	if minutes < 0 || minutes > MaxSessionDuration {
		return domain.ValidationErrors{domain.NewOutOfRangeError("session_duration", minutes, 0, MaxSessionDuration)}
	}
	return nil
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return validULID.MatchString(s)
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
