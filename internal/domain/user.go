package domain

import (
	"time"
)

// Age groups offered at registration.
var AgeGroups = []string{"15-18", "19-22", "23-25", "26+"}

// User represents a registered respondent
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	AgeGroup     string
	Gender       string
	Faculty      string
	ConsentGiven bool
	ConsentAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User instance with consent recorded now.
func NewUser(email, passwordHash, ageGroup string) *User {
	now := time.Now()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		AgeGroup:     ageGroup,
		ConsentGiven: true,
		ConsentAt:    &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ValidAgeGroup reports whether g is one of AgeGroups.
func ValidAgeGroup(g string) bool {
	for _, ag := range AgeGroups {
		if ag == g {
			return true
		}
	}
	return false
}

// ConsentForm is the text a respondent agrees to before registering.
type ConsentForm struct {
	Title      string   `json:"title"`
	Version    string   `json:"version"`
	Purpose    string   `json:"purpose"`
	DataUsage  []string `json:"data_usage"`
	Rights     []string `json:"rights"`
	Disclaimer string   `json:"disclaimer"`
}
