//go:build integration

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/testutil"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("task_tracker_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func TestPostgres_ConcurrentAssignConvergesOnOneRow(t *testing.T) {
	db := setupPostgres(t)
	repo := repository.NewTaskRepository(db)

	user := testutil.CreateUser(t, db, "user1")
	task := testutil.CreateTask(t, db, "Contended Task")

	const workers = 8
	results := make([][]models.TaskAssignment, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = repo.AssignUsers(context.Background(), task.ID, []uint64{user.ID})
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i], 1)
		assert.Equal(t, results[0][0].ID, results[i][0].ID)
	}
	assert.Equal(t, int64(1), testutil.CountAssignments(t, db, task.ID))
}

func TestPostgres_TaskAndUserDeletesCascade(t *testing.T) {
	db := setupPostgres(t)
	repo := repository.NewTaskRepository(db)
	ctx := context.Background()

	user1 := testutil.CreateUser(t, db, "user1")
	user2 := testutil.CreateUser(t, db, "user2")
	task := testutil.CreateTask(t, db, "Cascade Task")

	_, err := repo.AssignUsers(ctx, task.ID, []uint64{user1.ID, user2.ID})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, user1.ID).Error)
	assert.Equal(t, int64(1), testutil.CountAssignments(t, db, task.ID))

	require.NoError(t, repo.Delete(ctx, task.ID))
	assert.Zero(t, testutil.CountAssignments(t, db, task.ID))
}
