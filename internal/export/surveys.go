// Package export renders stored submissions as a flat CSV sheet for staff
// who work with spreadsheets.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"health-screen/internal/domain"
	"health-screen/internal/survey"
)

// Columns is the header row of the survey sheet.
var Columns = []string{
	"Survey ID",
	"User ID",
	"Submitted at",
	"Faculty",
	"Sitting hours/day",
	"Breaks",
	"Sitting posture",
	"Hunched back",
	"Highest pain level",
	"Pain frequency",
	"Screen hours/day",
	"Eye strain",
	"Screen distance",
	"Sleep hours",
	"Stress level",
	"Exercise frequency",
	"Musculoskeletal score",
	"Eye health score",
	"Mental health score",
	"Physical activity score",
	"Overall score",
	"Risk level",
}

var riskLabels = map[domain.RiskLevel]string{
	domain.RiskLow:    "Good",
	domain.RiskMedium: "Needs attention",
	domain.RiskHigh:   "Needs improvement",
}

var scoreColumns = []domain.Category{
	domain.CategoryMusculoskeletal,
	domain.CategoryEyeHealth,
	domain.CategoryMentalHealth,
	domain.CategoryPhysicalActivity,
}

// Row maps one submission to a sheet row aligned with Columns. Choice
// answers are replaced by the option label shown in the questionnaire.
// Score cells stay empty when the survey has no stored result.
func Row(s *domain.Survey) []string {
	a := &s.Answers
	row := make([]string, 0, len(Columns))
	row = append(row,
		s.ID,
		s.UserID,
		s.CreatedAt.UTC().Format(time.RFC3339),
		a.Faculty,
		number(a.SittingHours),
		Label("break_frequency", number(a.BreakFrequency)),
		choice("sitting_posture", a.SittingPosture),
		choice("hunched_back", a.HunchedBack),
		strconv.FormatFloat(s.Summary.MaxPain, 'f', -1, 64),
		choice("pain_frequency", a.PainFrequency),
		number(a.ScreenTime),
		number(a.EyeStrain),
		choice("screen_distance", a.ScreenDistance),
		number(a.SleepHours),
		number(a.StressLevel),
		choice("exercise_frequency", a.ExerciseFrequency),
	)

	if s.Result == nil {
		for range scoreColumns {
			row = append(row, "")
		}
		return append(row, "", "")
	}
	for _, c := range scoreColumns {
		cs, ok := s.Result.CategoryScore(c)
		if !ok {
			row = append(row, "")
			continue
		}
		row = append(row, strconv.FormatFloat(cs.Score, 'f', -1, 64))
	}
	return append(row,
		strconv.Itoa(s.Result.OverallScore),
		RiskLabel(s.Result.OverallRiskLevel),
	)
}

// Label returns the questionnaire label of value for the question, or value
// itself when the question has no such option.
func Label(questionID, value string) string {
	q, ok := survey.Lookup(questionID)
	if !ok {
		return value
	}
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// RiskLabel returns the readable name of a risk level.
func RiskLabel(level domain.RiskLevel) string {
	if label, ok := riskLabels[level]; ok {
		return label
	}
	return string(level)
}

func choice(questionID string, v *string) string {
	if v == nil {
		return ""
	}
	return Label(questionID, *v)
}

func number(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Writer streams survey rows as CSV.
type Writer struct {
	w    *csv.Writer
	rows int
}

// NewWriter returns a Writer that has already queued the header row.
func NewWriter(out io.Writer) (*Writer, error) {
	w := csv.NewWriter(out)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	return &Writer{w: w}, nil
}

// Write appends one row per survey.
func (w *Writer) Write(surveys []*domain.Survey) error {
	for _, s := range surveys {
		if err := w.w.Write(Row(s)); err != nil {
			return err
		}
		w.rows++
	}
	return nil
}

// Rows reports how many survey rows were written.
func (w *Writer) Rows() int { return w.rows }

// Flush writes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
