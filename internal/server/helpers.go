package server

import (
	"github.com/f-r00t/hugin-api/internal/paging"
	"github.com/f-r00t/hugin-api/internal/service"
	"github.com/f-r00t/hugin-api/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

// listQuery holds the coerced page/size/order query parameters.
type listQuery struct {
	Page  int
	Size  int
	Order string
}

// parseListQuery extracts page, size and order. Malformed numbers fall back to
// defaults rather than erroring; the listing endpoints always answer.
func parseListQuery(c *fiber.Ctx) listQuery {
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}

	size := c.QueryInt("size", paging.DefaultSize)
	if size <= 0 {
		size = paging.DefaultSize
	}

	return listQuery{
		Page:  page,
		Size:  size,
		Order: c.Query("order", "desc"),
	}
}

// parsePostsQuery extracts the full filterable listing input. A lone date
// bound or an unparsable date yields a nil bound, which the filter reads as
// "no constraint". excludeAvatar must be the literal "true".
func parsePostsQuery(c *fiber.Ctx) service.ListPostsInput {
	q := parseListQuery(c)

	return service.ListPostsInput{
		Page:          q.Page,
		Size:          q.Size,
		Order:         q.Order,
		SearchKeyword: c.Query("search"),
		StartDate:     timeutil.UnixToDateTime(c.Query("startDate")),
		EndDate:       timeutil.UnixToDateTime(c.Query("endDate")),
		ExcludeAvatar: c.Query("excludeAvatar") == "true",
	}
}

func parseEncryptedGroupQuery(c *fiber.Ctx) service.ListEncryptedGroupInput {
	q := parseListQuery(c)

	return service.ListEncryptedGroupInput{
		Page:      q.Page,
		Size:      q.Size,
		Order:     q.Order,
		StartDate: timeutil.UnixToDateTime(c.Query("startDate")),
		EndDate:   timeutil.UnixToDateTime(c.Query("endDate")),
	}
}
