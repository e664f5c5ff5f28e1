package server

import (
	"log/slog"

	"github.com/f-r00t/hugin-api/internal/middleware"
	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPopularPosts handles GET /api/v2/statistics/posts/popular
// @Summary Rank posts by reply count
// @Description Each entry's subject is the tx_hash of a replied-to post
// @Tags statistics
// @Produce json
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (default 10)"
// @Param order query string false "Count sort direction, asc or desc (default desc)"
// @Success 200 {object} models.Page[models.PopularityEntry]
// @Failure 400 {object} models.ErrorResponse
// @Router /statistics/posts/popular [get]
func (s *Server) GetPopularPosts(c *fiber.Ctx) error {
	q := parseListQuery(c)

	page, err := s.statisticsService.PopularPosts(c.Context(), q.Page, q.Size, q.Order)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "popular posts query failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}

// GetPopularBoards handles GET /api/v2/statistics/boards/popular
// @Summary Rank boards by post volume
// @Tags statistics
// @Produce json
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (default 10)"
// @Param order query string false "Count sort direction, asc or desc (default desc)"
// @Success 200 {object} models.Page[models.PopularityEntry]
// @Failure 400 {object} models.ErrorResponse
// @Router /statistics/boards/popular [get]
func (s *Server) GetPopularBoards(c *fiber.Ctx) error {
	q := parseListQuery(c)

	page, err := s.statisticsService.PopularBoards(c.Context(), q.Page, q.Size, q.Order)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "popular boards query failed",
			slog.String("error", err.Error()))
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewStoreError(err))
	}

	return c.JSON(page)
}
