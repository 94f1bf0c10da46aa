// Package survey holds the self-screening question catalog and validates
// submitted answers against it.
package survey

// QuestionType tells the client how to render a question.
type QuestionType string

const (
	TypeNumber QuestionType = "number"
	TypeScale  QuestionType = "scale"
	TypeChoice QuestionType = "choice"
	TypeText   QuestionType = "text"
)

// Option is one selectable answer.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is a single catalog entry.
type Question struct {
	ID      string       `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Min     *float64     `json:"min,omitempty"`
	Max     *float64     `json:"max,omitempty"`
	Unit    string       `json:"unit,omitempty"`
	Options []Option     `json:"options,omitempty"`
}

// Section groups questions shown on one survey step.
type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

func bound(v float64) *float64 { return &v }

func number(id, text, unit string, min, max float64) Question {
	return Question{ID: id, Text: text, Type: TypeNumber, Min: bound(min), Max: bound(max), Unit: unit}
}

func scale(id, text string) Question {
	return Question{ID: id, Text: text, Type: TypeScale, Min: bound(0), Max: bound(10)}
}

func choice(id, text string, options ...Option) Question {
	return Question{ID: id, Text: text, Type: TypeChoice, Options: options}
}

var frequencyOptions = []Option{
	{Value: "never", Label: "Never"},
	{Value: "rarely", Label: "Rarely"},
	{Value: "sometimes", Label: "Sometimes"},
	{Value: "often", Label: "Often"},
	{Value: "always", Label: "Always"},
}

var occurrenceOptions = []Option{
	{Value: "never", Label: "Never"},
	{Value: "once", Label: "1-2 times a week"},
	{Value: "several", Label: "3-5 times a week"},
	{Value: "daily", Label: "Every day"},
}

var catalog = []Section{
	{
		ID:    "posture",
		Title: "Sitting and posture",
		Questions: []Question{
			number("sitting_hours", "How many hours do you sit per day?", "hours", 0, 24),
			{
				ID:   "break_frequency",
				Text: "How often do you get up from your seat?",
				Type: TypeNumber,
				Min:  bound(0),
				Max:  bound(999),
				Unit: "minutes",
				Options: []Option{
					{Value: "15", Label: "Every 15-30 minutes"},
					{Value: "30", Label: "Every 30-60 minutes"},
					{Value: "60", Label: "Every 1-2 hours"},
					{Value: "120", Label: "After more than 2 hours"},
					{Value: "999", Label: "Hardly ever"},
				},
			},
			choice("hunched_back", "Do you notice yourself hunching while sitting?", frequencyOptions...),
			choice("head_forward", "Does your head lean towards the screen?", frequencyOptions...),
			choice("sitting_posture", "Which best describes your usual sitting posture?",
				Option{Value: "good", Label: "Upright"},
				Option{Value: "slight_hunch", Label: "Slightly hunched"},
				Option{Value: "mixed", Label: "Changes a lot"},
				Option{Value: "head_forward", Label: "Head pushed forward"},
				Option{Value: "hunched", Label: "Hunched"},
			),
			scale("posture_quality", "Rate your own posture (0 poor, 10 excellent)"),
		},
	},
	{
		ID:    "pain",
		Title: "Pain",
		Questions: []Question{
			scale("neck_pain", "Neck or shoulder pain level"),
			scale("upper_back_pain", "Upper back pain level"),
			scale("lower_back_pain", "Lower back pain level"),
			scale("back_pain", "General back pain level"),
			choice("pain_frequency", "How often do you feel this pain?", occurrenceOptions...),
		},
	},
	{
		ID:    "eyes",
		Title: "Screen use and eyes",
		Questions: []Question{
			number("screen_time", "How many hours per day do you look at screens?", "hours", 0, 24),
			scale("eye_strain", "Eye strain level after screen use"),
			choice("dry_eyes", "Do your eyes feel dry or itchy?", frequencyOptions...),
			choice("headache", "How often do you get headaches after screen use?", occurrenceOptions...),
			choice("screen_distance", "How far are your eyes from the screen?",
				Option{Value: "too_close", Label: "Very close (under 30 cm)"},
				Option{Value: "close", Label: "Fairly close (30-50 cm)"},
				Option{Value: "normal", Label: "Comfortable (50-70 cm)"},
				Option{Value: "far", Label: "Far (over 70 cm)"},
			),
			choice("lighting", "How is the lighting where you study?",
				Option{Value: "too_dark", Label: "Too dark"},
				Option{Value: "dim", Label: "A bit dim"},
				Option{Value: "good", Label: "Bright and comfortable"},
				Option{Value: "too_bright", Label: "Too bright or glaring"},
			),
			choice("screen_break", "How often do you rest your eyes?",
				Option{Value: "regular", Label: "Every 20 minutes"},
				Option{Value: "hourly", Label: "About every hour"},
				Option{Value: "rarely", Label: "Rarely"},
				Option{Value: "never", Label: "Never"},
			),
		},
	},
	{
		ID:    "mental",
		Title: "Stress and sleep",
		Questions: []Question{
			scale("stress_level", "Stress level over the past week"),
			number("sleep_hours", "How many hours do you sleep per night?", "hours", 0, 24),
			scale("sleep_quality", "Rate your sleep quality (0 poor, 10 excellent)"),
			choice("screen_before_sleep", "Do you use screens right before sleeping?",
				Option{Value: "no", Label: "No"},
				Option{Value: "sometimes", Label: "Sometimes"},
				Option{Value: "often", Label: "Often"},
				Option{Value: "always", Label: "Always"},
			),
			scale("mood", "Rate your overall mood (0 low, 10 great)"),
		},
	},
	{
		ID:    "activity",
		Title: "Physical activity",
		Questions: []Question{
			number("exercise_minutes", "Minutes of exercise per week", "minutes", 0, 1440),
			choice("exercise_frequency", "How often do you exercise?", frequencyOptions...),
			number("daily_steps", "Average steps per day", "steps", 0, 100000),
			number("sedentary_hours", "Hours spent sitting or lying outside sleep", "hours", 0, 24),
		},
	},
	{
		ID:    "profile",
		Title: "About you",
		Questions: []Question{
			{ID: "faculty", Text: "Faculty or department", Type: TypeText},
			{ID: "notes", Text: "Anything else you want to tell us", Type: TypeText},
		},
	},
}

// Catalog returns the survey sections in display order.
func Catalog() []Section {
	return catalog
}

// Lookup finds a question by id.
func Lookup(id string) (Question, bool) {
	for _, section := range catalog {
		for _, q := range section.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
