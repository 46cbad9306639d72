package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// WorkoutRequest accepts the date as either a full RFC 3339 instant or a
// bare YYYY-MM-DD string; either way only the calendar date survives
// serialization.
type WorkoutRequest struct {
	Date      string                         `json:"date" binding:"required"`
	Notes     string                         `json:"notes"`
	Exercises []service.WorkoutExerciseInput `json:"exercises"`
}

func (r WorkoutRequest) toInput() (service.WorkoutInput, error) {
	date, err := parseWorkoutDate(r.Date)
	if err != nil {
		return service.WorkoutInput{}, err
	}
	return service.WorkoutInput{
		Date:      date,
		Notes:     r.Notes,
		Exercises: r.Exercises,
	}, nil
}

func parseWorkoutDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// CreateWorkout logs a new workout session.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+req.Date)
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), ownerID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout replaces the payload fields of an existing workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID.")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date: "+req.Date)
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), ownerID, workoutID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}

// GetWorkout returns one workout by id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID.")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), ownerID, workoutID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}

// ListWorkouts returns the caller's workout history, oldest first.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
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
	if workouts == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// DeleteWorkout removes a workout by id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID.")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), ownerID, workoutID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ValidateWorkout flags a workout as validated.
func (h *WorkoutHandler) ValidateWorkout(c *gin.Context) {
	h.setValidated(c, true)
}

// UnvalidateWorkout clears the validated flag.
func (h *WorkoutHandler) UnvalidateWorkout(c *gin.Context) {
	h.setValidated(c, false)
}

func (h *WorkoutHandler) setValidated(c *gin.Context, validated bool) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID.")
		return
	}

	var workout any
	if validated {
		workout, err = h.workoutService.ValidateWorkout(c.Request.Context(), ownerID, workoutID)
	} else {
		workout, err = h.workoutService.UnvalidateWorkout(c.Request.Context(), ownerID, workoutID)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}
