package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/f-r00t/hugin-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashtags(t *testing.T) {
	_, app, db := newTestServer(t)
	require.NoError(t, db.Create(&[]*models.Hashtag{
		{Name: "kryptokrona"},
		{Name: "hugin"},
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v2/hashtags?order=asc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.Page[models.Hashtag]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))

	assert.Equal(t, int64(2), page.TotalItems)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "kryptokrona", page.Items[0].Name)
}

func TestGetHashtag(t *testing.T) {
	_, app, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Hashtag{Name: "hugin"}).Error)

	t.Run("Found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v2/hashtags/hugin", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var hashtag models.Hashtag
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&hashtag))
		assert.Equal(t, "hugin", hashtag.Name)
	})

	t.Run("Miss answers empty object", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v2/hashtags/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "{}", strings.TrimSpace(string(body)))
	})
}
