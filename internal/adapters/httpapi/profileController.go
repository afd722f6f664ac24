package httpapi

import (
	"errors"
	"net/http"

	directoryPort "emojifeed/internal/ports/directory"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{ pc ProfileUseCase }

func NewProfileController(pc ProfileUseCase) *ProfileController {
	return &ProfileController{pc: pc}
}

func (ctl *ProfileController) GetUserByID(c *gin.Context) {
	author, err := ctl.pc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (ctl *ProfileController) GetUserByUsername(c *gin.Context) {
	profile, err := ctl.pc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeProfileError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func writeProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, directoryPort.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, directoryPort.ErrAuthorIncomplete):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	}
}
