package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/strength-log/internal/domain"
	"alcyxob/strength-log/internal/service"
)

// ExerciseHandler holds the exercise catalog service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

type CreateExerciseRequest struct {
	Name         string              `json:"name" binding:"required"`
	AllowedUnits []domain.WeightUnit `json:"allowedUnits"`
}

type VideoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmVideoRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// CreateExercise adds a user-owned exercise to the catalog.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), ownerID, req.Name, req.AllowedUnits)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

// GetExercise returns one catalog entry visible to the caller.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// ListExercises returns every catalog entry visible to the caller.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if exercises == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// DeleteExercise removes a user-owned catalog entry.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestVideoUploadURL issues a presigned PUT URL for a demo video.
func (h *ExerciseHandler) RequestVideoUploadURL(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req VideoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	response, err := h.exerciseService.RequestVideoUploadURL(c.Request.Context(), ownerID, c.Param("id"), req.ContentType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ConfirmVideoUpload records an uploaded demo video on the exercise.
func (h *ExerciseHandler) ConfirmVideoUpload(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req ConfirmVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.ConfirmVideoUpload(c.Request.Context(), ownerID, c.Param("id"), req.ObjectKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// VideoDownloadURL issues a presigned GET URL for a demo video.
func (h *ExerciseHandler) VideoDownloadURL(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	url, err := h.exerciseService.VideoDownloadURL(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
