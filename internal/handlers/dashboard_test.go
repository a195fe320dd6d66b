package handlers_test

import (
	"net/http"
	"testing"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct {
	LifeScore int `json:"lifeScore"`
	Breakdown struct {
		Tasks  float64 `json:"tasks"`
		Habits float64 `json:"habits"`
		Events float64 `json:"events"`
		Mood   float64 `json:"mood"`
	} `json:"breakdown"`
	TasksCompleted       int `json:"tasksCompleted"`
	TasksTotal           int `json:"tasksTotal"`
	HabitsCompletedToday int `json:"habitsCompletedToday"`
	HabitsTotal          int `json:"habitsTotal"`
	CurrentStreak        int `json:"currentStreak"`
	Credits              int `json:"credits"`
}

func TestDashboardSummaryEmptyAccount(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "empty-dash@example.com")

	resp := doJSON(t, app, "GET", "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s summary
	decodeBody(t, resp, &s)

	// Only the placeholder factors contribute: 80*0.15 + 75*0.15 = 23.25 -> 23
	assert.Equal(t, 23, s.LifeScore)
	assert.Equal(t, 0.0, s.Breakdown.Tasks)
	assert.Equal(t, 0.0, s.Breakdown.Habits)
	assert.Equal(t, 0, s.TasksTotal)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 0, s.Credits)
}

func TestDashboardSummary(t *testing.T) {
	app := setupApp(t)
	userID, token := newUser(t, "dash@example.com")

	require.NoError(t, database.DB.Create(&models.Task{Owner: userID, Title: "a", Status: "done"}).Error)
	require.NoError(t, database.DB.Create(&models.Task{Owner: userID, Title: "b", Status: "todo"}).Error)
	require.NoError(t, database.DB.Create(&models.Habit{Owner: userID, Name: "h1", Cadence: "daily", CompletedToday: true, Streak: 4}).Error)
	require.NoError(t, database.DB.Create(&models.Habit{Owner: userID, Name: "h2", Cadence: "daily", Streak: 9}).Error)
	require.NoError(t, database.DB.Create(&models.CreditsTransaction{UserID: userID, Amount: 30, Reason: "seed", Type: "earn"}).Error)

	resp := doJSON(t, app, "GET", "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s summary
	decodeBody(t, resp, &s)

	// 50*0.4 + 50*0.3 + 80*0.15 + 75*0.15 = 58.25 -> 58
	assert.Equal(t, 58, s.LifeScore)
	assert.InDelta(t, 50.0, s.Breakdown.Tasks, 0.0001)
	assert.InDelta(t, 50.0, s.Breakdown.Habits, 0.0001)
	assert.Equal(t, 1, s.TasksCompleted)
	assert.Equal(t, 2, s.TasksTotal)
	assert.Equal(t, 1, s.HabitsCompletedToday)
	assert.Equal(t, 2, s.HabitsTotal)
	assert.Equal(t, 9, s.CurrentStreak)
	assert.Equal(t, 30, s.Credits)
}
