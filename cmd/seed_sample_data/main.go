package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"health-screen/internal/config"
	"health-screen/internal/database"
	"health-screen/internal/domain"
	"health-screen/internal/logger"
	"health-screen/internal/repository"
	"health-screen/internal/scoring"
	"health-screen/internal/util"
)

const samplePassword = "sample-password"

var faculties = []string{"Engineering", "Medicine", "Law", "Economics", "Arts", "Science"}

func main() {
	users := flag.Int("users", 60, "number of sample users")
	surveysPerUser := flag.Int("surveys", 4, "surveys per sample user")
	seed := flag.Uint64("seed", 42, "random seed")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	profile, err := scoring.ProfileByName(cfg.Scoring.Profile)
	if err != nil {
		log.Fatal("Invalid scoring profile", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash sample password", zap.Error(err))
	}

	s := &seeder{
		rng:          rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)),
		engine:       scoring.NewEngine(profile),
		txManager:    repository.NewTransactionManagerAdapter(db),
		userRepo:     repository.NewUserRepository(db),
		surveyRepo:   repository.NewSurveyRepository(db),
		passwordHash: string(hash),
		now:          time.Now().UTC(),
	}

	counts := map[string]int{}
	for i := 0; i < *users; i++ {
		kind := s.pickKind()
		if err := s.seedUser(ctx, i, kind, *surveysPerUser); err != nil {
			log.Error("Error seeding user, transaction rolled back", zap.Int("index", i), zap.Error(err))
			continue
		}
		counts[kind]++
	}
	log.Info("Sample data seeding completed",
		zap.Int("healthy", counts[kindHealthy]),
		zap.Int("moderate", counts[kindModerate]),
		zap.Int("at_risk", counts[kindAtRisk]),
	)
}

const (
	kindHealthy  = "healthy"
	kindModerate = "moderate"
	kindAtRisk   = "at_risk"
)

type seeder struct {
	rng          *rand.Rand
	engine       *scoring.Engine
	txManager    domain.TransactionManager
	userRepo     domain.UserRepository
	surveyRepo   domain.SurveyRepository
	passwordHash string
	now          time.Time
}

// pickKind draws 40% healthy, 35% moderate and 25% at risk.
func (s *seeder) pickKind() string {
	switch r := s.rng.Float64(); {
	case r < 0.40:
		return kindHealthy
	case r < 0.75:
		return kindModerate
	default:
		return kindAtRisk
	}
}

func (s *seeder) seedUser(ctx context.Context, index int, kind string, surveys int) error {
	user := domain.NewUser(
		fmt.Sprintf("sample%03d@campus.example", index),
		s.passwordHash,
		domain.AgeGroups[s.rng.IntN(len(domain.AgeGroups))],
	)
	user.ID = util.NewULID()
	user.FullName = fmt.Sprintf("Sample Student %03d", index)
	user.Faculty = faculties[s.rng.IntN(len(faculties))]

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.CreateUser(txCtx, user); err != nil {
			return fmt.Errorf("create user %s: %w", user.Email, err)
		}
		for j := 0; j < surveys; j++ {
			answers := s.answers(kind)
			answers.Faculty = user.Faculty
			submittedAt := s.now.Add(-time.Duration(s.rng.IntN(30*24)) * time.Hour)
			sv := &domain.Survey{
				ID:        util.NewULID(),
				UserID:    user.ID,
				Answers:   *answers,
				Summary:   scoring.Summarize(answers),
				CreatedAt: submittedAt,
			}
			analysis := &domain.Analysis{
				ID:          util.NewULID(),
				UserID:      user.ID,
				SurveyID:    sv.ID,
				Result:      s.engine.Score(answers),
				SubmittedAt: submittedAt,
			}
			if err := s.surveyRepo.CreateSurvey(txCtx, sv, analysis); err != nil {
				return fmt.Errorf("create survey for %s: %w", user.Email, err)
			}
		}
		return nil
	})
}

// between returns a value in [lo, hi] rounded to one decimal.
func (s *seeder) between(lo, hi float64) *float64 {
	v := lo + s.rng.Float64()*(hi-lo)
	return domain.Float(float64(int(v*10+0.5)) / 10)
}

func (s *seeder) level(lo, hi int) *float64 {
	return domain.Float(float64(lo + s.rng.IntN(hi-lo+1)))
}

func (s *seeder) oneOfMinutes(values ...float64) *float64 {
	return domain.Float(values[s.rng.IntN(len(values))])
}

func (s *seeder) oneOf(values ...string) *string {
	return domain.Str(values[s.rng.IntN(len(values))])
}

func (s *seeder) answers(kind string) *domain.SurveyAnswers {
	switch kind {
	case kindHealthy:
		return &domain.SurveyAnswers{
			SittingHours:      s.between(3, 6),
			ScreenTime:        s.between(2, 5),
			SleepHours:        s.between(7, 9),
			ExerciseMinutes:   s.between(150, 300),
			NeckPain:          s.level(0, 2),
			LowerBackPain:     s.level(0, 2),
			EyeStrain:         s.level(0, 3),
			StressLevel:       s.level(1, 4),
			PostureQuality:    s.level(7, 10),
			SleepQuality:      s.level(7, 10),
			Mood:              s.level(7, 10),
			BreakFrequency:    s.oneOfMinutes(15, 30),
			HunchedBack:       s.oneOf(domain.FreqNever, domain.FreqRarely),
			PainFrequency:     s.oneOf(domain.OccurNever, domain.OccurOnce),
			ExerciseFrequency: s.oneOf(domain.FreqOften, domain.FreqAlways),
		}
	case kindModerate:
		return &domain.SurveyAnswers{
			SittingHours:      s.between(6, 9),
			ScreenTime:        s.between(5, 8),
			SleepHours:        s.between(6, 7),
			ExerciseMinutes:   s.between(60, 150),
			NeckPain:          s.level(2, 5),
			LowerBackPain:     s.level(2, 5),
			EyeStrain:         s.level(3, 6),
			StressLevel:       s.level(4, 6),
			PostureQuality:    s.level(4, 7),
			SleepQuality:      s.level(4, 7),
			Mood:              s.level(4, 7),
			BreakFrequency:    s.oneOfMinutes(30, 60),
			HunchedBack:       s.oneOf(domain.FreqSometimes, domain.FreqOften),
			PainFrequency:     s.oneOf(domain.OccurOnce, domain.OccurSeveral),
			ExerciseFrequency: s.oneOf(domain.FreqRarely, domain.FreqSometimes),
		}
	default:
		return &domain.SurveyAnswers{
			SittingHours:      s.between(9, 14),
			ScreenTime:        s.between(8, 14),
			SleepHours:        s.between(4, 6),
			ExerciseMinutes:   s.between(0, 40),
			NeckPain:          s.level(6, 10),
			LowerBackPain:     s.level(6, 10),
			EyeStrain:         s.level(6, 10),
			StressLevel:       s.level(7, 10),
			PostureQuality:    s.level(0, 3),
			SleepQuality:      s.level(0, 3),
			Mood:              s.level(0, 3),
			BreakFrequency:    s.oneOfMinutes(120, 999),
			HunchedBack:       s.oneOf(domain.FreqOften, domain.FreqAlways),
			PainFrequency:     s.oneOf(domain.OccurSeveral, domain.OccurDaily),
			ExerciseFrequency: s.oneOf(domain.FreqNever, domain.FreqRarely),
		}
	}
}
