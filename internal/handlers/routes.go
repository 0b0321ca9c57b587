package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/middleware"
)

// RegisterRoutes mounts the API on r
func RegisterRoutes(r gin.IRouter, taskHandler *TaskHandler, userHandler *UserHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})

	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.ListTasks)
		tasks.POST("/", taskHandler.CreateTask)

		task := tasks.Group("/:id", middleware.RequireIDParam())
		task.GET("/", taskHandler.GetTask)
		task.PUT("/", taskHandler.UpdateTask)
		task.PATCH("/", taskHandler.PartialUpdateTask)
		task.DELETE("/", taskHandler.DeleteTask)
		task.POST("/assign_users/", taskHandler.AssignUsers)
		task.POST("/unassign_users/", taskHandler.UnassignUsers)
		task.DELETE("/unassign_users/", taskHandler.UnassignUsers)
	}

	users := r.Group("/users")
	{
		users.GET("/", userHandler.ListUsers)

		user := users.Group("/:id", middleware.RequireIDParam())
		user.GET("/", userHandler.GetUser)
		user.GET("/tasks/", userHandler.ListUserTasks)
	}
}
