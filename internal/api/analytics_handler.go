package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"alcyxob/strength-log/internal/analytics"
	"alcyxob/strength-log/internal/service"
)

// AnalyticsHandler glues the pure analytics engine to the workout history.
// Corrupt records are already filtered by ListWorkouts, so the engine only
// ever sees validated shapes.
type AnalyticsHandler struct {
	workoutService service.WorkoutService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(workoutService service.WorkoutService) *AnalyticsHandler {
	return &AnalyticsHandler{workoutService: workoutService}
}

// ExerciseE1RMSeries returns the estimated-1RM time series for one exercise.
func (h *AnalyticsHandler) ExerciseE1RMSeries(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	points := analytics.BuildExerciseE1RMSeries(workouts, c.Param("exerciseId"))
	c.JSON(http.StatusOK, points)
}

// WorkoutTopSets returns the heaviest set per exercise per workout.
func (h *AnalyticsHandler) WorkoutTopSets(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	points := analytics.BuildWorkoutTopSets(workouts)
	if points == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}
	c.JSON(http.StatusOK, points)
}

// WeeklyVolume returns week-bucketed volume for the window given by the
// start and end query parameters (YYYY-MM-DD, both inclusive).
func (h *AnalyticsHandler) WeeklyVolume(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	points := analytics.BuildWeeklyExerciseVolumeByWeek(workouts, start, end)
	if points == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}
	c.JSON(http.StatusOK, points)
}

// WeeklyFrequency returns week-bucketed training frequency for the window
// given by the start and end query parameters.
func (h *AnalyticsHandler) WeeklyFrequency(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	points := analytics.BuildWeeklyExerciseFrequencyByWeek(workouts, start, end)
	if points == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}
	c.JSON(http.StatusOK, points)
}

func parseDateRange(c *gin.Context) (start, end time.Time, ok bool) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing start date.")
		return start, end, false
	}
	end, err = time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid or missing end date.")
		return start, end, false
	}
	return start, end, true
}
