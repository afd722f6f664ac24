package httpapi

import (
	"context"

	"emojifeed/internal/adapters/httpapi/middleware"
	directoryPort "emojifeed/internal/ports/directory"
	postPort "emojifeed/internal/ports/post"

	"github.com/gin-gonic/gin"
)

// PostUseCase: inbound port required by the post controller
type PostUseCase interface {
	CreatePost(ctx context.Context, content, authorID string) (*postPort.PostDTO, error)
	GetAll(ctx context.Context) ([]*postPort.FeedItemDTO, error)
	GetPostsByUserID(ctx context.Context, userID string) ([]*postPort.FeedItemDTO, error)
	GetByID(ctx context.Context, id string) (*postPort.FeedItemDTO, error)
}

type ProfileUseCase interface {
	GetUserByID(ctx context.Context, id string) (*directoryPort.AuthorDTO, error)
	GetUserByUsername(ctx context.Context, username string) (*directoryPort.ProfileDTO, error)
}

// SetupRoutes wires controllers; use cases are injected from outside
func SetupRoutes(
	postUC PostUseCase,
	profileUC ProfileUseCase,
	limiter middleware.RateLimiter,
) *gin.Engine {
	r := gin.Default()
	pc := NewPostController(postUC)
	prc := NewProfileController(profileUC)

	// read paths are public
	r.GET("/posts", pc.GetAll)
	r.GET("/posts/:id", pc.GetByID)
	r.GET("/users/:userId/posts", pc.GetPostsByUserID)

	// creating posts requires an authenticated caller
	r.POST("/posts", middleware.JWTAuthMiddleware(), middleware.RateLimitMiddleware(limiter), pc.CreatePost)

	r.GET("/profiles/id/:id", prc.GetUserByID)
	r.GET("/profiles/username/:username", prc.GetUserByUsername)

	return r
}
