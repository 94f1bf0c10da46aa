package domain

import "time"

// PostureMetrics are body measurements from a posture-check session.
type PostureMetrics struct {
	NeckAngle          float64 `json:"neck_angle"`
	BackCurvature      float64 `json:"back_curvature"`
	ShoulderBalance    float64 `json:"shoulder_balance"`
	HeadTilt           float64 `json:"head_tilt"`
	DistanceFromScreen float64 `json:"distance_from_screen"`
}

// FaceMetrics are facial fatigue indicators, each 0-100.
type FaceMetrics struct {
	DarkCircles   float64 `json:"dark_circles"`
	SkinCondition float64 `json:"skin_condition"`
	FatigueLevel  float64 `json:"fatigue_level"`
	Hydration     float64 `json:"hydration"`
}

// EyeMetrics are eye indicators. BlinkRate is blinks per minute.
type EyeMetrics struct {
	BlinkRate   float64 `json:"blink_rate"`
	EyeOpenness float64 `json:"eye_openness"`
	EyeStrain   float64 `json:"eye_strain"`
	ScreenGlare float64 `json:"screen_glare"`
}

// LightingMetrics describe the screen environment, each 0-100.
type LightingMetrics struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	BlueLight  float64 `json:"blue_light"`
}

// PostureScores are the 0-100 sub-scores derived from metrics.
type PostureScores struct {
	Posture  int `json:"posture"`
	Face     int `json:"face"`
	Eye      int `json:"eye"`
	Lighting int `json:"lighting"`
	Overall  int `json:"overall"`
}

// PostureSession is one posture-check capture.
type PostureSession struct {
	Posture  PostureMetrics  `json:"posture"`
	Face     FaceMetrics     `json:"face"`
	Eye      EyeMetrics      `json:"eye"`
	Lighting LightingMetrics `json:"lighting"`
	Scores   PostureScores   `json:"scores"`

	// Synthetic marks fixture data that did not come from a camera.
	Synthetic bool `json:"synthetic"`
}

// PostureRecord is a persisted session.
type PostureRecord struct {
	ID              string
	UserID          string
	Session         PostureSession
	SessionDuration int
	CreatedAt       time.Time
}
