package server

import (
	"log/slog"

	"github.com/f-r00t/hugin-api/internal/middleware"
	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetHashtags handles GET /api/v2/hashtags
// @Summary List hashtags
// @Tags hashtags
// @Produce json
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (default 10)"
// @Param order query string false "id sort direction, asc or desc (default desc)"
// @Success 200 {object} models.Page[models.Hashtag]
// @Failure 400 {object} models.ErrorResponse
// @Router /hashtags [get]
func (s *Server) GetHashtags(c *fiber.Ctx) error {
	q := parseListQuery(c)

	page, err := s.hashtagService.GetAll(c.Context(), q.Page, q.Size, q.Order)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "hashtag listing failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}

// GetHashtag handles GET /api/v2/hashtags/:name
// @Summary Get one hashtag by name
// @Tags hashtags
// @Produce json
// @Param name path string true "Hashtag name without the # prefix"
// @Success 200 {object} models.Hashtag
// @Failure 404 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /hashtags/{name} [get]
func (s *Server) GetHashtag(c *fiber.Ctx) error {
	name := c.Params("name")

	hashtag, err := s.hashtagService.GetByName(c.Context(), name)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "hashtag lookup failed",
			slog.String("name", name),
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}
	if hashtag == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
	}

	return c.JSON(hashtag)
}
