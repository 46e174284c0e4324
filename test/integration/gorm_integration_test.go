package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"guruvela-be/internal/config"
	"guruvela-be/internal/repository/unitofwork"
	"guruvela-be/internal/service"
	"guruvela-be/pkg/content"
	"guruvela-be/pkg/database"
	"guruvela-be/pkg/prediction"
	"guruvela-be/pkg/query"
)

func openDB(t *testing.T) *gorm.DB {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err, "Failed to connect to DB")
	return gormDB
}

func TestGormConnection(t *testing.T) {
	gormDB := openDB(t)
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.JosaaCutoffRepository())
	assert.NotNil(t, uow.CsabCutoffRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	t.Run("Count cutoff tables", func(t *testing.T) {
		_, err := uow.JosaaCutoffRepository().Count(context.Background())
		assert.NoError(t, err)
		_, err = uow.CsabCutoffRepository().Count(context.Background())
		assert.NoError(t, err)
	})

	t.Run("Run a JoSAA prediction", func(t *testing.T) {
		cfg := config.Load()
		spec, err := prediction.BuildQuery(prediction.Request{
			Rank:     5000,
			ExamType: query.ExamJEEMain,
			Category: query.CategoryOpen,
			Quota:    prediction.QuotaAllIndia,
			Gender:   prediction.GenderNeutral,
		}, service.JosaaDataset(cfg.Prediction, 10))
		require.NoError(t, err)

		records, err := uow.JosaaCutoffRepository().FindCutoffs(context.Background(), spec)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(records), 10)
		for i := 1; i < len(records); i++ {
			assert.LessOrEqual(t, records[i-1].ClosingRank, records[i].ClosingRank)
		}
	})
}

func TestContentRoundTrip(t *testing.T) {
	gormDB := openDB(t)
	ctx := context.Background()

	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback() }()

	page := content.Page{Slug: "integration-test-page", Language: content.LanguageHinglish, Title: "Test", PageType: content.PageTypeGuide}
	require.NoError(t, uow.ContentPageRepository().Save(ctx, &page))

	got, err := uow.ContentPageRepository().FindBySlug(ctx, page.Slug, content.LanguageHinglish)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Test", got.Title)

	missing, err := uow.ContentPageRepository().FindBySlug(ctx, page.Slug, content.LanguageTeluguish)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
