package httpapi

import (
	"errors"
	"net/http"

	"emojifeed/internal/core/post"
	directoryPort "emojifeed/internal/ports/directory"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), req.Content, userID.(string))
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) GetAll(c *gin.Context) {
	items, err := ctl.pc.GetAll(c.Request.Context())
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": items})
}

func (ctl *PostController) GetPostsByUserID(c *gin.Context) {
	items, err := ctl.pc.GetPostsByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": items})
}

func (ctl *PostController) GetByID(c *gin.Context) {
	item, err := ctl.pc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePostError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// writePostError maps the post/enrichment error taxonomy to status codes.
// Anything unrecognized came from a collaborator and surfaces as 503.
func writePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrEmptyContent),
		errors.Is(err, post.ErrContentTooLong),
		errors.Is(err, post.ErrNotEmoji),
		errors.Is(err, post.ErrNumericOnly):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, post.ErrPostNotFound),
		errors.Is(err, directoryPort.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, directoryPort.ErrAuthorIncomplete):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	}
}
