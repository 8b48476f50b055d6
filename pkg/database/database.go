package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/pharmdata/ndc-api/pkg/batch"
	"github.com/pharmdata/ndc-api/pkg/ndc"
)

// DB is the GORM database instance
var DB *gorm.DB

func init() {
	var err error

	DB, err = gorm.Open(postgres.Open(fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_DATABASE"),
		os.Getenv("POSTGRES_PORT"),
	)), &gorm.Config{
		Logger: logger.New(
			log.Default(),
			logger.Config{
				SlowThreshold:             10 * time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "ndc_",
		},
	})

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Configure connection pool
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connection established")

	// Auto migrate the schema
	if err := AutoMigrate(); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
}

// AutoMigrate runs automatic migration for all models
func AutoMigrate() error {
	log.Println("Running auto migration...")

	err := DB.AutoMigrate(
		&Conversion{},
		&Run{},
	)

	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("Auto migration completed successfully")
	return nil
}

// Ping checks the database connection
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// RecordConversion upserts the audit row for a single-code conversion.
func RecordConversion(ctx context.Context, input string, direction ndc.Direction, res ndc.Result) error {
	row := Conversion{
		Input:      input,
		Direction:  string(direction),
		Output:     res.Code,
		Variant:    string(res.Variant),
		Confidence: string(res.Confidence),
	}

	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "input"}, {Name: "direction"}},
		DoUpdates: clause.AssignmentColumns([]string{"output", "variant", "confidence", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert conversion: %w", err)
	}
	return nil
}

// RecordRun stores the summary of a batch run.
func RecordRun(ctx context.Context, direction ndc.Direction, source string, report *batch.Report) error {
	samples := make([]string, len(report.Samples))
	for i, s := range report.Samples {
		samples[i] = fmt.Sprintf("%s -> %s", s.Before, s.After)
	}

	row := Run{
		Date:      time.Now(),
		Direction: string(direction),
		Source:    source,
		Total:     report.Total,
		Certain:   report.Certain,
		Heuristic: report.Heuristic,
		Ambiguous: report.Ambiguous,
		Failed:    report.Failed,
		Samples:   pq.StringArray(samples),
		Complete:  true,
	}

	if err := DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}
