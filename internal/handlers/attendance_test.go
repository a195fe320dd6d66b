package handlers_test

import (
	"net/http"
	"testing"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceGetOrCreate(t *testing.T) {
	app := setupApp(t)
	userID, token := newUser(t, "attend@example.com")

	// First touch creates the row with defaults
	resp := doJSON(t, app, "PATCH", "/api/attendance/2025-03-01", token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var first models.CalendarDay
	decodeBody(t, resp, &first)
	assert.True(t, first.WentToCollege)
	assert.False(t, first.CompletedPlannedTasks)
	assert.Equal(t, "2025-03-01", first.Date)

	// Second touch returns the same row
	resp = doJSON(t, app, "PATCH", "/api/attendance/2025-03-01", token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second models.CalendarDay
	decodeBody(t, resp, &second)
	assert.Equal(t, first.ID, second.ID)

	// Exactly one insert happened
	var count int64
	database.DB.Model(&models.CalendarDay{}).
		Where("user_id = ? AND date = ?", userID, "2025-03-01").
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateAttendanceRecordsAbsence(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "absent@example.com")

	resp := doJSON(t, app, "PATCH", "/api/attendance/2025-03-02", token, map[string]interface{}{
		"wentToCollege": false,
		"absenceType":   "sick",
		"absenceNote":   "flu",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var day models.CalendarDay
	decodeBody(t, resp, &day)
	assert.False(t, day.WentToCollege)
	require.NotNil(t, day.AbsenceType)
	assert.Equal(t, "sick", *day.AbsenceType)
	require.NotNil(t, day.AbsenceNote)
	assert.Equal(t, "flu", *day.AbsenceNote)
}

func TestUpdateAttendanceRejectsUnknownAbsenceType(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "badabsence@example.com")

	resp := doJSON(t, app, "PATCH", "/api/attendance/2025-03-03", token, map[string]interface{}{
		"absenceType": "vacation",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAttendanceRejectsBadDate(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t, "baddate@example.com")

	resp := doJSON(t, app, "PATCH", "/api/attendance/march-1st", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestMarkTasksCompletedFunnelsThroughGetOrCreate(t *testing.T) {
	app := setupApp(t)
	userID, token := newUser(t, "plan@example.com")

	// No prior row for the date: the mark call must create it
	resp := doJSON(t, app, "POST", "/api/attendance/2025-03-04/tasks-completed", token, map[string]interface{}{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var day models.CalendarDay
	decodeBody(t, resp, &day)
	assert.True(t, day.CompletedPlannedTasks)
	assert.True(t, day.WentToCollege) // default preserved

	var count int64
	database.DB.Model(&models.CalendarDay{}).Where("user_id = ?", userID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAttendanceIsPerUser(t *testing.T) {
	app := setupApp(t)
	_, aliceToken := newUser(t, "alice-attend@example.com")
	_, bobToken := newUser(t, "bob-attend@example.com")

	resp := doJSON(t, app, "PATCH", "/api/attendance/2025-03-05", aliceToken, map[string]interface{}{
		"wentToCollege": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/attendance/", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var days []models.CalendarDay
	decodeBody(t, resp, &days)
	assert.Empty(t, days)
}

func TestExportAttendanceCSV(t *testing.T) {
	app := setupApp(t)
	userID, token := newUser(t, "export@example.com")

	sick := "sick"
	require.NoError(t, database.DB.Create(&models.CalendarDay{
		UserID: userID, Date: "2025-01-01", WentToCollege: true, CompletedPlannedTasks: false,
	}).Error)
	require.NoError(t, database.DB.Create(&models.CalendarDay{
		UserID: userID, Date: "2025-01-02", WentToCollege: false, AbsenceType: &sick, CompletedPlannedTasks: true,
	}).Error)

	resp := doJSON(t, app, "GET", "/api/attendance/export", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attendance-")

	body := readBody(t, resp)
	want := "Date,Went to College,Absence Type,Note,Completed Tasks\n" +
		`"2025-01-02","No","sick","-","Yes"` + "\n" +
		`"2025-01-01","Yes","-","-","No"`
	assert.Equal(t, want, body)
}
