package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/yukikurage/task-tracker/internal/config"
	"github.com/yukikurage/task-tracker/internal/database"
	"github.com/yukikurage/task-tracker/internal/logger"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/services"
	"gorm.io/gorm"
)

const (
	seedUsers    = 5
	seedTasks    = 10
	seedPassword = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Log)

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seed(context.Background(), db, log); err != nil {
		log.Error("failed to seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seed creates the dummy users and tasks. Users that already exist are
// reused, so running it twice only adds tasks.
func seed(ctx context.Context, db *gorm.DB, log *slog.Logger) error {
	log.Info("seeding dummy data")

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	assignmentService := services.NewAssignmentService(taskRepo, userRepo)

	userIDs := make([]uint64, 0, seedUsers)
	for i := 1; i <= seedUsers; i++ {
		username := fmt.Sprintf("user%d", i)
		user, err := userService.Register(ctx, services.RegisterUserInput{
			Username: username,
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("%s@example.com", username),
			Mobile:   fmt.Sprintf("98765432%d", i),
			Password: seedPassword,
		})
		if errors.Is(err, services.ErrUsernameTaken) {
			user, err = userRepo.FindByUsername(ctx, username)
		}
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", username, err)
		}
		userIDs = append(userIDs, user.ID)
	}
	log.Info("users ready", slog.Int("count", len(userIDs)))

	for i := 1; i <= seedTasks; i++ {
		task := &models.Task{
			Name:        fmt.Sprintf("Task %d", i),
			Description: fmt.Sprintf("This is a description for Task %d.", i),
			TaskType:    models.TaskTypes[rand.IntN(len(models.TaskTypes))],
			Status:      models.TaskStatuses[rand.IntN(len(models.TaskStatuses))],
		}
		if rand.IntN(2) == 0 {
			now := time.Now()
			task.CompletedAt = &now
		}

		// completed_at cannot be set through TaskService
		if err := taskRepo.Create(ctx, task, nil); err != nil {
			return fmt.Errorf("failed to seed task %d: %w", i, err)
		}

		assignees := randomSubset(userIDs, rand.IntN(3))
		if len(assignees) == 0 {
			continue
		}
		if _, err := assignmentService.AssignUsers(ctx, task.ID, assignees); err != nil {
			return fmt.Errorf("failed to assign task %d: %w", i, err)
		}
	}
	log.Info("tasks created", slog.Int("count", seedTasks))

	return nil
}

func randomSubset(ids []uint64, n int) []uint64 {
	shuffled := make([]uint64, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:min(n, len(shuffled))]
}
