package posture

import (
	"math/rand/v2"
	"sync"

	"health-screen/internal/domain"
)

// Generator produces synthetic posture-check sessions. Every session it
// returns is marked Synthetic. A fixed seed yields a fixed sequence.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// between returns a value in [lo, lo+span).
func (g *Generator) between(lo, span float64) float64 {
	return lo + g.rng.Float64()*span
}

// Sample returns one synthetic session with scores filled in.
func (g *Generator) Sample() domain.PostureSession {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := domain.PostureSession{
		Posture: domain.PostureMetrics{
			NeckAngle:          g.between(12, 18),
			BackCurvature:      g.between(8, 15),
			ShoulderBalance:    g.between(82, 16),
			HeadTilt:           g.between(0, 12),
			DistanceFromScreen: g.between(45, 30),
		},
		Face: domain.FaceMetrics{
			DarkCircles:   g.between(0, 100),
			SkinCondition: g.between(60, 35),
			FatigueLevel:  g.between(0, 100),
			Hydration:     g.between(50, 45),
		},
		Eye: domain.EyeMetrics{
			BlinkRate:   g.between(10, 15),
			EyeOpenness: g.between(70, 25),
			EyeStrain:   g.between(0, 100),
			ScreenGlare: g.between(0, 100),
		},
		Lighting: domain.LightingMetrics{
			Brightness: g.between(40, 50),
			Contrast:   g.between(30, 60),
			BlueLight:  g.between(20, 60),
		},
		Synthetic: true,
	}
	s.Scores = Evaluate(s)
	return s
}
