package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/strength-log/internal/service"
)

// SetupRoutes wires every handler into the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	programService service.ProgramService,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
) {
	authHandler := NewAuthHandler(authService)
	programHandler := NewProgramHandler(programService)
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	analyticsHandler := NewAnalyticsHandler(workoutService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		programGroup := protected.Group("/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.ListPrograms)
			programGroup.GET("/:id", programHandler.GetProgram)
			programGroup.PUT("/:id", programHandler.UpdateProgram)
			programGroup.DELETE("/:id", programHandler.DeleteProgram)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/validate", workoutHandler.ValidateWorkout)
			workoutGroup.POST("/:id/unvalidate", workoutHandler.UnvalidateWorkout)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/video-upload-url", exerciseHandler.RequestVideoUploadURL)
			exerciseGroup.POST("/:id/video", exerciseHandler.ConfirmVideoUpload)
			exerciseGroup.GET("/:id/video-url", exerciseHandler.VideoDownloadURL)
		}

		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.GET("/e1rm/:exerciseId", analyticsHandler.ExerciseE1RMSeries)
			analyticsGroup.GET("/top-sets", analyticsHandler.WorkoutTopSets)
			analyticsGroup.GET("/weekly-volume", analyticsHandler.WeeklyVolume)
			analyticsGroup.GET("/weekly-frequency", analyticsHandler.WeeklyFrequency)
		}
	}
}
