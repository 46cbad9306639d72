package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/strength-log/internal/editor"
	"alcyxob/strength-log/internal/service"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// CreateProgram composes and saves the submitted editor draft. A composition
// failure comes back as 400 with the item-scoped message so the editor can
// point at the offending field.
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var draft editor.ProgramDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	program, err := h.programService.CreateProgram(c.Request.Context(), ownerID, draft)
	if err != nil {
		var compErr editor.CompositionError
		if errors.As(err, &compErr) {
			abortWithError(c, http.StatusBadRequest, compErr.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, program)
}

// UpdateProgram recomposes the draft and replaces the stored program.
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	programID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID.")
		return
	}

	var draft editor.ProgramDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	program, err := h.programService.UpdateProgram(c.Request.Context(), ownerID, programID, draft)
	if err != nil {
		var compErr editor.CompositionError
		if errors.As(err, &compErr) {
			abortWithError(c, http.StatusBadRequest, compErr.Error())
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

// GetProgram returns one program by id.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	programID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID.")
		return
	}

	program, err := h.programService.GetProgram(c.Request.Context(), ownerID, programID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

// ListPrograms returns the caller's programs.
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	programs, err := h.programService.ListPrograms(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if programs == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}

	c.JSON(http.StatusOK, programs)
}

// DeleteProgram removes a program by id.
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	programID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID.")
		return
	}

	if err := h.programService.DeleteProgram(c.Request.Context(), ownerID, programID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
