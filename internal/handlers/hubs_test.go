package handlers_test

import (
	"net/http"
	"testing"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubCRUD(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "hubs@example.com")

	resp := doJSON(t, app, "POST", "/api/hubs/", token, map[string]string{
		"title": "Side Projects",
		"slug":  "side-projects",
		"color": "hub-tech",
		"icon":  "rocket",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var hub models.Hub
	decodeBody(t, resp, &hub)
	assert.False(t, hub.IsDefault)

	resp = doJSON(t, app, "PUT", "/api/hubs/"+hub.ID.String(), token, map[string]string{
		"title": "Projects",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &hub)
	assert.Equal(t, "Projects", hub.Title)
	assert.Equal(t, "side-projects", hub.Slug)

	resp = doJSON(t, app, "DELETE", "/api/hubs/"+hub.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/hubs/", token, nil)
	var hubs []models.Hub
	decodeBody(t, resp, &hubs)
	assert.Empty(t, hubs)
}

func TestHubRequiresTitleAndSlug(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "hubvalidate@example.com")

	resp := doJSON(t, app, "POST", "/api/hubs/", token, map[string]string{
		"title": "No slug",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteHubFreesSlug(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "hubslug@example.com")

	body := map[string]string{"title": "Fitness", "slug": "fitness"}

	resp := doJSON(t, app, "POST", "/api/hubs/", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var hub models.Hub
	decodeBody(t, resp, &hub)

	resp = doJSON(t, app, "DELETE", "/api/hubs/"+hub.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The slug is free again once the hub is gone
	resp = doJSON(t, app, "POST", "/api/hubs/", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var recreated models.Hub
	decodeBody(t, resp, &recreated)
	assert.Equal(t, "fitness", recreated.Slug)
	assert.NotEqual(t, hub.ID, recreated.ID)
}

func TestProvisionAfterDeletingDefaults(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "reprovision@example.com")

	resp := doJSON(t, app, "POST", "/api/provision", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/hubs/", token, nil)
	var hubs []models.Hub
	decodeBody(t, resp, &hubs)
	require.Len(t, hubs, 5)

	for _, h := range hubs {
		resp = doJSON(t, app, "DELETE", "/api/hubs/"+h.ID.String(), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}

	resp = doJSON(t, app, "POST", "/api/provision", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/hubs/", token, nil)
	hubs = nil
	decodeBody(t, resp, &hubs)
	assert.Len(t, hubs, 5)
}

func TestDeleteHubKeepsTasks(t *testing.T) {
	app := setupApp(t)
	userID, token := newUser(t, "hubtasks@example.com")

	hub := models.Hub{Owner: userID, Title: "Doomed", Slug: "doomed"}
	require.NoError(t, database.DB.Create(&hub).Error)
	task := models.Task{Owner: userID, Title: "Survivor", HubID: &hub.ID}
	require.NoError(t, database.DB.Create(&task).Error)

	resp := doJSON(t, app, "DELETE", "/api/hubs/"+hub.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	database.DB.Model(&models.Task{}).Where("owner = ?", userID).Count(&count)
	assert.EqualValues(t, 1, count)
}
