package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"health-screen/internal/config"
	"health-screen/internal/database"
	"health-screen/internal/domain"
	"health-screen/internal/export"
	"health-screen/internal/logger"
	"health-screen/internal/repository"
)

func main() {
	outDir := flag.String("dir", "exports", "directory the CSV file is written to")
	pageSize := flag.Int("page-size", 500, "surveys fetched per query")
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

	if *pageSize <= 0 {
		log.Fatal("Page size must be positive", zap.Int("page_size", *pageSize))
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Failed to create export directory", zap.String("dir", *outDir), zap.Error(err))
	}
	path := filepath.Join(*outDir, fmt.Sprintf("surveys_%s.csv", time.Now().Format("20060102_150405")))
	file, err := os.Create(path)
	if err != nil {
		log.Fatal("Failed to create export file", zap.String("path", path), zap.Error(err))
	}
	defer file.Close()

	risks, err := exportSurveys(ctx, repository.NewSurveyRepository(db), file, *pageSize)
	if err != nil {
		log.Fatal("Survey export failed", zap.String("path", path), zap.Error(err))
	}
	log.Info("Survey export completed",
		zap.String("path", path),
		zap.Int("surveys", risks.total),
		zap.Int("low", risks.counts[domain.RiskLow]),
		zap.Int("medium", risks.counts[domain.RiskMedium]),
		zap.Int("high", risks.counts[domain.RiskHigh]),
		zap.Int("unscored", risks.unscored),
	)
}

type riskCounts struct {
	total    int
	unscored int
	counts   map[domain.RiskLevel]int
}

// exportSurveys pages through every stored survey, newest first, and writes
// one CSV row per submission.
func exportSurveys(ctx context.Context, repo domain.SurveyRepository, out io.Writer, pageSize int) (riskCounts, error) {
	risks := riskCounts{counts: map[domain.RiskLevel]int{}}
	w, err := export.NewWriter(out)
	if err != nil {
		return risks, fmt.Errorf("write header: %w", err)
	}

	for offset := 0; ; offset += pageSize {
		page, err := repo.ListSurveys(ctx, pageSize, offset)
		if err != nil {
			return risks, err
		}
		if err := w.Write(page); err != nil {
			return risks, fmt.Errorf("write rows at offset %d: %w", offset, err)
		}
		for _, s := range page {
			if s.Result == nil {
				risks.unscored++
				continue
			}
			risks.counts[s.Result.OverallRiskLevel]++
		}
		if len(page) < pageSize {
			break
		}
	}
	risks.total = w.Rows()
	return risks, w.Flush()
}
