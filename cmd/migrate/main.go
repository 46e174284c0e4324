package main

import (
	"log"
	"os"

	"guruvela-be/internal/model"
	"guruvela-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Running AutoMigrate...")

	models := []interface{}{
		&model.CollegeCutoff{},
		&model.FixedResponse{},
		&model.ContentPage{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Step 2: Creating CSAB table and indexes...")

	// CSAB rows share the JoSAA row shape.
	postMigrationSQL := []string{
		`CREATE TABLE IF NOT EXISTS ` + model.CsabCutoffTable + ` (LIKE ` + model.CollegeCutoffTable + ` INCLUDING ALL);`,
		`CREATE INDEX IF NOT EXISTS idx_fixed_responses_keywords ON fixed_responses USING GIN (question_keywords);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_fixed_responses_topic_lang ON fixed_responses (topic_id, language);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_content_pages_slug_lang_unique ON content_pages (slug, language);`,
		`CREATE INDEX IF NOT EXISTS idx_cutoff_branch_lower ON ` + model.CollegeCutoffTable + ` (lower(branch_name));`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
