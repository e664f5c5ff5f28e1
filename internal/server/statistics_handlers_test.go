package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPopularPosts(t *testing.T) {
	_, app, db := newTestServer(t)
	seedPosts(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v2/statistics/posts/popular", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.Page[models.PopularityEntry]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))

	assert.Equal(t, int64(1), page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.PopularityEntry{Subject: "aaa", Count: 2}, page.Items[0])
}

func TestGetPopularBoards(t *testing.T) {
	_, app, db := newTestServer(t)
	seedPosts(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v2/statistics/boards/popular", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.Page[models.PopularityEntry]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))

	assert.Equal(t, int64(2), page.TotalItems)
	require.Len(t, page.Items, 2)
	assert.Equal(t, models.PopularityEntry{Subject: "Hugin", Count: 2}, page.Items[0])
	assert.Equal(t, models.PopularityEntry{Subject: "Home", Count: 1}, page.Items[1])
}

func TestGetPopularPosts_EmptyTable(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v2/statistics/posts/popular", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.Page[models.PopularityEntry]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))

	assert.Equal(t, int64(0), page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
