package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"health-screen/internal/domain"
	"health-screen/internal/repository/models"
)

// sittingRangeExpr buckets surveys by daily sitting time. GROUP BY repeats
// the expression because Oracle rejects grouping by a select alias.
const sittingRangeExpr = `CASE
		WHEN sitting_hours <= 4 THEN '0-4h'
		WHEN sitting_hours <= 6 THEN '4-6h'
		WHEN sitting_hours <= 8 THEN '6-8h'
		ELSE '>8h'
	END`

// DashboardRepositoryImpl implements domain.DashboardRepository with sqlx.
type DashboardRepositoryImpl struct {
	db DBTX
}

// NewDashboardRepository creates a dashboard repository backed by db.
func NewDashboardRepository(db *sqlx.DB) domain.DashboardRepository {
	return &DashboardRepositoryImpl{db: db}
}

// GetStats returns user and survey totals, the average overall score and
// the risk level distribution.
func (r *DashboardRepositoryImpl) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	exec := GetExecutor(ctx, r.db)
	stats := &domain.DashboardStats{
		RiskDistribution: map[domain.RiskLevel]int{
			domain.RiskLow:    0,
			domain.RiskMedium: 0,
			domain.RiskHigh:   0,
		},
	}

	if err := exec.GetContext(ctx, &stats.TotalUsers, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := exec.GetContext(ctx, &stats.TotalSurveys, `SELECT COUNT(*) FROM surveys`); err != nil {
		return nil, fmt.Errorf("failed to count surveys: %w", err)
	}

	var avg float64
	if err := exec.GetContext(ctx, &avg, `SELECT COALESCE(AVG(overall_score), 0) FROM analyses`); err != nil {
		return nil, fmt.Errorf("failed to average scores: %w", err)
	}
	stats.AvgHealthScore = roundOne(avg)

	var rows []models.RiskCount
	if err := exec.SelectContext(ctx, &rows, `SELECT risk_level, COUNT(*) AS cnt FROM analyses GROUP BY risk_level`); err != nil {
		return nil, fmt.Errorf("failed to get risk distribution: %w", err)
	}
	for _, row := range rows {
		stats.RiskDistribution[domain.RiskLevel(row.RiskLevel)] = row.Count
	}
	return stats, nil
}

// GetCommonIssues counts surveys matching each common problem, sorted by
// share of respondents, largest first.
func (r *DashboardRepositoryImpl) GetCommonIssues(ctx context.Context) ([]domain.IssueStat, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN exercise_minutes < 150 THEN 1 ELSE 0 END), 0) AS low_exercise,
		COALESCE(SUM(CASE WHEN sitting_hours > 8 THEN 1 ELSE 0 END), 0) AS long_sitting,
		COALESCE(SUM(CASE WHEN eye_strain >= 6 THEN 1 ELSE 0 END), 0) AS eye_strain,
		COALESCE(SUM(CASE WHEN stress_level >= 7 THEN 1 ELSE 0 END), 0) AS high_stress,
		COALESCE(SUM(CASE WHEN sleep_hours < 7 THEN 1 ELSE 0 END), 0) AS short_sleep
		FROM surveys`

	var counts models.IssueCounts
	if err := exec.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to count common issues: %w", err)
	}

	issues := []domain.IssueStat{
		issueStat(domain.IssueLongSitting, counts.LongSitting, counts.Total),
		issueStat(domain.IssueLowExercise, counts.LowExercise, counts.Total),
		issueStat(domain.IssueEyeStrain, counts.EyeStrain, counts.Total),
		issueStat(domain.IssueHighStress, counts.HighStress, counts.Total),
		issueStat(domain.IssueShortSleep, counts.ShortSleep, counts.Total),
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Percentage > issues[j].Percentage
	})
	return issues, nil
}

func issueStat(issue string, count, total int) domain.IssueStat {
	stat := domain.IssueStat{Issue: issue, Count: count}
	if total > 0 {
		stat.Percentage = roundOne(float64(count) * 100 / float64(total))
	}
	return stat
}

// GetAgeGroupStats aggregates analyses by the respondent's age group.
func (r *DashboardRepositoryImpl) GetAgeGroupStats(ctx context.Context) ([]domain.AgeGroupStat, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT u.age_group, COUNT(*) AS cnt, AVG(a.overall_score) AS avg_score,
		SUM(CASE WHEN a.risk_level = 'HIGH' THEN 1 ELSE 0 END) AS high_risk_count
		FROM users u
		JOIN analyses a ON a.user_id = u.id
		GROUP BY u.age_group
		ORDER BY u.age_group`

	var rows []models.AgeGroupRow
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get age group stats: %w", err)
	}

	stats := make([]domain.AgeGroupStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.AgeGroupStat{
			AgeGroup:      row.AgeGroup,
			Count:         row.Count,
			AvgScore:      roundOne(row.AvgScore),
			HighRiskCount: row.HighRiskCount,
		})
	}
	return stats, nil
}

// GetDailyScores returns the average overall score per UTC day since the
// given time, oldest day first. Days without submissions are omitted.
func (r *DashboardRepositoryImpl) GetDailyScores(ctx context.Context, since time.Time) ([]domain.DailyScore, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT s.created_at, a.overall_score
		FROM surveys s
		JOIN analyses a ON a.survey_id = s.id
		WHERE s.created_at >= ?
		ORDER BY s.created_at`)

	var points []models.ScorePoint
	if err := exec.SelectContext(ctx, &points, query, since); err != nil {
		return nil, fmt.Errorf("failed to get daily scores: %w", err)
	}
	return groupByDay(points), nil
}

func groupByDay(points []models.ScorePoint) []domain.DailyScore {
	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[time.Time]*bucket)
	days := make([]time.Time, 0)
	for _, p := range points {
		t := p.CreatedAt.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
			days = append(days, day)
		}
		b.sum += p.OverallScore
		b.count++
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	scores := make([]domain.DailyScore, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		scores = append(scores, domain.DailyScore{
			Date:        day,
			SurveyCount: b.count,
			AvgScore:    roundOne(float64(b.sum) / float64(b.count)),
		})
	}
	return scores
}

// GetSittingBackPain returns the average reported pain per sitting time
// bucket, ordered by average pain.
func (r *DashboardRepositoryImpl) GetSittingBackPain(ctx context.Context) ([]domain.SittingBackPainBucket, error) {
	exec := GetExecutor(ctx, r.db)
	query := `SELECT ` + sittingRangeExpr + ` AS sitting_range,
		AVG(back_pain) AS avg_back_pain,
		COUNT(*) AS cnt
		FROM surveys
		GROUP BY ` + sittingRangeExpr + `
		ORDER BY 2`

	var rows []models.SittingBucketRow
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to correlate sitting time and back pain: %w", err)
	}

	buckets := make([]domain.SittingBackPainBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.SittingBackPainBucket{
			SittingRange: row.SittingRange,
			AvgBackPain:  roundOne(row.AvgBackPain),
			Count:        row.Count,
		})
	}
	return buckets, nil
}

// GetRecentSurveys returns the newest scored submissions.
func (r *DashboardRepositoryImpl) GetRecentSurveys(ctx context.Context, limit int) ([]domain.RecentSurvey, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT s.id AS survey_id, u.age_group, s.created_at, a.overall_score, a.risk_level
		FROM surveys s
		JOIN users u ON u.id = s.user_id
		JOIN analyses a ON a.survey_id = s.id
		ORDER BY s.created_at DESC
		FETCH FIRST ? ROWS ONLY`)

	var rows []models.RecentSurveyRow
	if err := exec.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent surveys: %w", err)
	}

	recent := make([]domain.RecentSurvey, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, domain.RecentSurvey{
			SurveyID:     row.SurveyID,
			AgeGroup:     row.AgeGroup,
			CreatedAt:    row.CreatedAt,
			OverallScore: row.OverallScore,
			RiskLevel:    domain.RiskLevel(row.RiskLevel),
		})
	}
	return recent, nil
}

// roundOne rounds half away from zero to one decimal place.
func roundOne(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
