package server

import (
	"log/slog"

	"github.com/f-r00t/hugin-api/internal/middleware"
	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/v2/posts
// @Summary List posts
// @Description Paginated post listing with optional keyword, date range and avatar exclusion filters
// @Tags posts
// @Produce json
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (default 10)"
// @Param order query string false "id sort direction, asc or desc (default desc)"
// @Param search query string false "Keyword matched against message and board"
// @Param startDate query int false "Inclusive lower created_at bound, unix seconds"
// @Param endDate query int false "Inclusive upper created_at bound, unix seconds"
// @Param excludeAvatar query string false "Set to the literal true to omit avatars"
// @Success 200 {object} models.PostPage
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, err := s.postService.GetAll(c.Context(), parsePostsQuery(c))
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "post listing failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}

// GetLatestPosts handles GET /api/v2/posts/latest
// @Summary List latest posts
// @Description Same contract as the post listing; kept as a stable alias for Hugin clients
// @Tags posts
// @Produce json
// @Success 200 {object} models.PostPage
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/latest [get]
func (s *Server) GetLatestPosts(c *fiber.Ctx) error {
	page, err := s.postService.GetLatest(c.Context(), parsePostsQuery(c))
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "latest post listing failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}

// GetPost handles GET /api/v2/posts/:tx_hash
// @Summary Get one post by transaction hash
// @Description Returns the enriched post, or an empty object with 404 when the hash is unknown
// @Tags posts
// @Produce json
// @Param tx_hash path string true "Post transaction hash"
// @Success 200 {object} models.EnrichedPost
// @Failure 404 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/{tx_hash} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	txHash := c.Params("tx_hash")

	post, err := s.postService.GetByTxHash(c.Context(), txHash)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "post lookup failed",
			slog.String("tx_hash", txHash),
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}
	if post == nil {
		// Hugin clients probe for posts by hash; a miss answers with an
		// empty object, not an error payload.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
	}

	return c.JSON(post)
}

// GetPostReplies handles GET /api/v2/posts/:tx_hash/replies
// @Summary List direct replies of a post
// @Tags posts
// @Produce json
// @Param tx_hash path string true "Post transaction hash"
// @Success 200 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/{tx_hash}/replies [get]
func (s *Server) GetPostReplies(c *fiber.Ctx) error {
	txHash := c.Params("tx_hash")

	replies, err := s.postService.GetAllRepliesOfPost(c.Context(), txHash)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "reply lookup failed",
			slog.String("tx_hash", txHash),
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(replies)
}
