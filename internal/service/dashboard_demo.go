package service

import "health-screen/internal/domain"

// Demo dashboard dataset served while the store is unavailable.

func DemoStats() *domain.DashboardStats {
	return &domain.DashboardStats{
		TotalUsers:     295,
		TotalSurveys:   295,
		AvgHealthScore: 58.8,
		RiskDistribution: map[domain.RiskLevel]int{
			domain.RiskLow:    89,
			domain.RiskMedium: 132,
			domain.RiskHigh:   74,
		},
		DemoData: true,
	}
}

func DemoIssues() []domain.IssueStat {
	return []domain.IssueStat{
		{Issue: domain.IssueLowExercise, Count: 192, Percentage: 65.1},
		{Issue: domain.IssueLongSitting, Count: 178, Percentage: 60.3},
		{Issue: domain.IssueEyeStrain, Count: 156, Percentage: 52.9},
		{Issue: domain.IssueHighStress, Count: 134, Percentage: 45.4},
		{Issue: domain.IssueShortSleep, Count: 121, Percentage: 41.0},
	}
}

func DemoAgeGroups() []domain.AgeGroupStat {
	return []domain.AgeGroupStat{
		{AgeGroup: "15-18", Count: 74, AvgScore: 61.2, HighRiskCount: 15},
		{AgeGroup: "19-22", Count: 133, AvgScore: 57.8, HighRiskCount: 38},
		{AgeGroup: "23-25", Count: 59, AvgScore: 58.5, HighRiskCount: 14},
		{AgeGroup: "26+", Count: 29, AvgScore: 56.3, HighRiskCount: 7},
	}
}

func DemoSittingBackPain() []domain.SittingBackPainBucket {
	return []domain.SittingBackPainBucket{
		{SittingRange: "0-4h", AvgBackPain: 2.3, Count: 45},
		{SittingRange: "4-6h", AvgBackPain: 3.8, Count: 67},
		{SittingRange: "6-8h", AvgBackPain: 5.2, Count: 89},
		{SittingRange: ">8h", AvgBackPain: 6.7, Count: 94},
	}
}
