package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"course-portal-be/internal/entity"
	"course-portal-be/internal/repository/implementation"
	"course-portal-be/pkg/database"
	"course-portal-be/pkg/fingerprint"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	require.NoError(t, sqlDB.Ping())

	ctx := context.Background()
	submissions := implementation.NewSubmissionRepository(gormDB)
	progress := implementation.NewProgressRepository(gormDB)

	t.Run("Check Submission Repository", func(t *testing.T) {
		count, err := submissions.Count(ctx)
		assert.NoError(t, err)
		t.Logf("Submission count: %d", count)
	})

	t.Run("Progress Upsert Round Trip", func(t *testing.T) {
		sessionId := fingerprint.NewSessionID()
		device := "itest-" + uuid.New().String()[:8]

		record := &entity.ProgressRecord{
			SessionId:         sessionId,
			DeviceFingerprint: device,
			UserAgent:         "integration-test",
			CurrentStep:       1,
			TotalSteps:        5,
		}
		require.NoError(t, progress.Upsert(ctx, record))
		firstId := record.Id

		// Same key again: the row is replaced in place.
		record.CurrentStep = 3
		require.NoError(t, progress.Upsert(ctx, record))
		assert.Equal(t, firstId, record.Id)

		stored, err := progress.LatestByDevice(ctx, device)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 3, stored.CurrentStep)
		assert.Equal(t, sessionId, stored.SessionId)

		require.NoError(t, progress.Delete(ctx, sessionId, device))
		gone, err := progress.LatestByDevice(ctx, device)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}
