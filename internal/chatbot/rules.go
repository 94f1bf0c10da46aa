package chatbot

import "strings"

type topic struct {
	keywords []string
	answer   string
}

// topics are matched in order; the first topic with a keyword contained in
// the message wins.
var topics = []topic{
	{
		keywords: []string{"back", "spine", "lower back", "lumbar"},
		answer: "🪑 Back pain from studying usually comes from slouching for long periods. " +
			"Sit with your lower back supported, feet flat and screen at eye level, and stand up to stretch every 30-45 minutes. " +
			"If the pain lasts more than a few weeks or spreads to your legs, see a doctor.",
	},
	{
		keywords: []string{"neck", "shoulder"},
		answer: "💆 Neck and shoulder pain often means your head drifts forward toward the screen. " +
			"Raise the screen to eye level, pull your chin back gently and roll your shoulders a few times every hour.",
	},
	{
		keywords: []string{"eye", "vision", "blur", "dry"},
		answer: "👀 Try the 20-20-20 rule: every 20 minutes look at something 20 feet away for 20 seconds. " +
			"Keep the screen an arm's length away, reduce glare and blink often. Persistent blurred vision is worth an eye exam.",
	},
	{
		keywords: []string{"posture", "sitting", "sit", "desk", "chair"},
		answer: "🧍 Good sitting posture: back against the chair, knees at about 90 degrees, feet on the floor and the top of the screen at eye level. " +
			"Change position regularly, since no posture is good for hours.",
	},
	{
		keywords: []string{"stretch", "exercise", "workout", "sport", "walk"},
		answer: "🏃 Aim for at least 150 minutes of moderate activity a week. " +
			"Between study sessions do simple stretches: neck tilts, shoulder rolls, a standing back bend and hamstring stretches, 15-30 seconds each.",
	},
	{
		keywords: []string{"stress", "anxious", "anxiety", "exam", "pressure", "overwhelm"},
		answer: "🧘 Stress is common during exams. Break work into small tasks, take short breaks and try slow breathing for a few minutes. " +
			"If stress keeps you from functioning, talk to a counselor or a trusted person.",
	},
	{
		keywords: []string{"sleep", "insomnia", "tired", "fatigue"},
		answer:   "😴 Students need 7-9 hours of sleep. Keep a regular bedtime, stop using screens 30-60 minutes before bed and avoid caffeine late in the day.",
	},
	{
		keywords: []string{"headache", "migraine"},
		answer: "🤕 Headaches during study are often linked to eye strain, dehydration or poor sleep. " +
			"Drink water, rest your eyes and check your screen brightness. Frequent or severe headaches should be checked by a doctor.",
	},
}

const defaultAnswer = "🤖 I can help with back and neck pain, eye strain, sitting posture, exercise, stress and sleep. " +
	"Could you tell me more about what you are experiencing?"

const greetingAnswer = "👋 Hi! I'm HealthBot, your school health assistant. What health issue would you like to talk about?"

var greetings = []string{"hello", "hi", "hey", "good morning", "good evening"}

// RuleBased answers from the keyword table. It never fails.
type RuleBased struct{}

// Reply returns the canned answer of the first matching topic.
func (RuleBased) Reply(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(text, kw) {
				return t.answer
			}
		}
	}
	for _, g := range greetings {
		if text == g || strings.HasPrefix(text, g+" ") || strings.HasPrefix(text, g+"!") || strings.HasPrefix(text, g+",") {
			return greetingAnswer
		}
	}
	return defaultAnswer
}
