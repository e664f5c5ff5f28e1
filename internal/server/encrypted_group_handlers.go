package server

import (
	"log/slog"

	"github.com/f-r00t/hugin-api/internal/middleware"
	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetEncryptedGroupPosts handles GET /api/v2/posts/encrypted/group
// @Summary List encrypted group posts
// @Description Paginated listing of sealed group messages; no keyword search, the payload is ciphertext
// @Tags encrypted-group
// @Produce json
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (default 10)"
// @Param order query string false "id sort direction, asc or desc (default desc)"
// @Param startDate query int false "Inclusive lower created_at bound, unix seconds"
// @Param endDate query int false "Inclusive upper created_at bound, unix seconds"
// @Success 200 {object} models.EncryptedGroupPage
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/encrypted/group [get]
func (s *Server) GetEncryptedGroupPosts(c *fiber.Ctx) error {
	page, err := s.encryptedGroupService.GetAll(c.Context(), parseEncryptedGroupQuery(c))
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "encrypted group listing failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}

// GetLatestEncryptedGroupPosts handles GET /api/v2/posts/encrypted/group/latest
// @Summary List latest encrypted group posts
// @Tags encrypted-group
// @Produce json
// @Success 200 {object} models.EncryptedGroupPage
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/encrypted/group/latest [get]
func (s *Server) GetLatestEncryptedGroupPosts(c *fiber.Ctx) error {
	page, err := s.encryptedGroupService.GetLatest(c.Context(), parseEncryptedGroupQuery(c))
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "latest encrypted group listing failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}

// GetEncryptedGroupPost handles GET /api/v2/posts/encrypted/group/:tx_hash
// @Summary Get one encrypted group post by transaction hash
// @Tags encrypted-group
// @Produce json
// @Param tx_hash path string true "Transaction hash"
// @Success 200 {object} models.EnrichedPostEncryptedGroup
// @Failure 404 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/encrypted/group/{tx_hash} [get]
func (s *Server) GetEncryptedGroupPost(c *fiber.Ctx) error {
	txHash := c.Params("tx_hash")

	post, err := s.encryptedGroupService.GetByTxHash(c.Context(), txHash)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "encrypted group lookup failed",
			slog.String("tx_hash", txHash),
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}
	if post == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
	}

	return c.JSON(post)
}
