package main

import (
	"context"
	"log"
	"os"

	"guruvela-be/internal/repository/unitofwork"
	"guruvela-be/pkg/content"
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

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: begin transaction: %v", err)
	}

	if err := seed(ctx, uow); err != nil {
		_ = uow.Rollback()
		log.Fatalf("Error: seeding failed: %v", err)
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: commit: %v", err)
	}
	log.Println("Seeding completed!")
}

func seed(ctx context.Context, uow unitofwork.UnitOfWork) error {
	log.Println("Seeding content pages...")
	for i := range pages {
		if err := uow.ContentPageRepository().Save(ctx, &pages[i]); err != nil {
			return err
		}
		log.Printf("Saved page: %s (%s)", pages[i].Slug, pages[i].Language)
	}

	log.Println("Seeding fixed responses...")
	for i := range entries {
		if err := uow.FixedResponseRepository().Save(ctx, &entries[i]); err != nil {
			return err
		}
		log.Printf("Saved answer: %s (%s)", entries[i].TopicID, entries[i].Language)
	}
	return nil
}

var pages = []content.Page{
	{
		Slug:     content.HelpSlug,
		Language: content.LanguageEnglish,
		Title:    "JoSAA Comprehensive FAQ",
		PageType: content.PageTypeFAQ,
		Content: "JoSAA runs joint seat allocation for IITs, NITs, IIITs and GFTIs. " +
			"Register, fill choices in order of preference, then lock them before the deadline. " +
			"After each round you may Freeze, Float or Slide your allotted seat.",
	},
	{
		Slug:     "how-to-use",
		Language: content.LanguageEnglish,
		Title:    "How to Use Guruvela",
		PageType: content.PageTypeGuide,
		Content: "Ask the assistant a question, or share your rank, category and home state " +
			"to see colleges whose closing ranks you can reach.",
	},
}

var entries = []content.Entry{
	{
		TopicID:        "josaa_documents_general",
		Language:       content.LanguageEnglish,
		AnswerText:     "Keep your JEE admit card and scorecard, Class 10 and 12 mark sheets, category certificate if any, a photo ID and the medical fitness certificate ready for verification.",
		RelatedContent: content.HelpSlug,
		Keywords:       []string{"documents", "document", "certificate", "verification"},
	},
	{
		TopicID:        "josaa_float_freeze_slide_meaning",
		Language:       content.LanguageEnglish,
		AnswerText:     "Freeze accepts the allotted seat and leaves later rounds. Float keeps the seat while allowing an upgrade to any higher choice. Slide keeps the seat while allowing an upgrade to a higher branch in the same institute.",
		RelatedContent: content.HelpSlug,
		Keywords:       []string{"float", "freeze", "slide"},
	},
	{
		TopicID:        "iit_preparatory_what_is",
		Language:       content.LanguageEnglish,
		AnswerText:     "Candidates from reserved categories who miss the regular cutoff may get a preparatory rank. They study a one-year preparatory course at an IIT before joining the B.Tech program.",
		RelatedContent: "how-to-use",
		Keywords:       []string{"preparatory", "prep"},
	},
	{
		TopicID:        "josaa_colorblind_general",
		Language:       content.LanguageEnglish,
		AnswerText:     "Colorblind candidates are eligible for most programs. A few branches list color vision as a requirement, so check the institute's medical criteria and carry a certificate from a government hospital.",
		RelatedContent: content.HelpSlug,
		Keywords:       []string{"colorblind", "colorblindness", "medical"},
	},
}
