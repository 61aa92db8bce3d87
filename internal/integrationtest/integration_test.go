package integrationtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/asharma/money-reminders/internal/config"
	"github.com/asharma/money-reminders/internal/service"
	"github.com/asharma/money-reminders/internal/store"
)

// setupService connects to the real database configured via the environment
// and returns a router. Tests are skipped when DBHOST is not set, so the
// suite only runs against a prepared database.
func setupService(t *testing.T) *gin.Engine {
	if os.Getenv("DBHOST") == "" {
		t.Skip("integration tests need DBHOST, DBUSER and DBPWD")
	}
	cfg := config.Load()
	sqlDB := store.CreateDatabase(cfg.DSN())
	store.Setup(sqlDB)
	gin.SetMode(gin.ReleaseMode)
	return service.SetupHttpRouter(nil)
}

// TestReminderHappyPath tests a POST, GET, PATCH, and DELETE with valid data.
func TestReminderHappyPath(t *testing.T) {
	router := setupService(t)

	// test the endpoint for creating a reminder
	postRecorder := httptest.NewRecorder()
	postRequest, _ := http.NewRequest("POST", "/api/reminders", strings.NewReader(`
		{
			"personName": "Rahul Sharma",
			"phoneNumber": "9876543210",
			"amount": 500,
			"dueDate": "2026-09-02T00:00:00Z"
		}
	`))
	router.ServeHTTP(postRecorder, postRequest)
	assert.Equal(t, http.StatusCreated, postRecorder.Code)
	var postBody map[string]interface{}
	json.Unmarshal(postRecorder.Body.Bytes(), &postBody)
	assert.Equal(t, "Rahul Sharma", postBody["personName"])
	assert.Equal(t, "9876543210", postBody["phoneNumber"])
	assert.Equal(t, 500.0, postBody["amount"])
	assert.Equal(t, "2026-09-02T00:00:00Z", postBody["dueDate"])
	assert.Equal(t, false, postBody["isPaid"])
	idAsFloat64 := postBody["id"]
	idAsString := fmt.Sprintf("%.0f", idAsFloat64)

	// test the endpoint for finding a reminder
	getRecorder := httptest.NewRecorder()
	getRequest, _ := http.NewRequest("GET", "/api/reminders/"+idAsString, nil)
	router.ServeHTTP(getRecorder, getRequest)
	assert.Equal(t, http.StatusOK, getRecorder.Code)
	var getBody map[string]interface{}
	json.Unmarshal(getRecorder.Body.Bytes(), &getBody)
	assert.Equal(t, idAsFloat64, getBody["id"])
	assert.Equal(t, "Rahul Sharma", getBody["personName"])
	assert.Equal(t, false, getBody["isPaid"])

	// the new reminder must appear exactly once in the list
	listRecorder := httptest.NewRecorder()
	listRequest, _ := http.NewRequest("GET", "/api/reminders", nil)
	router.ServeHTTP(listRecorder, listRequest)
	assert.Equal(t, http.StatusOK, listRecorder.Code)
	var listBody []map[string]interface{}
	json.Unmarshal(listRecorder.Body.Bytes(), &listBody)
	occurrences := 0
	for _, row := range listBody {
		if row["id"] == idAsFloat64 {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)

	// test the endpoint for updating a reminder, flipping only isPaid
	patchRecorder := httptest.NewRecorder()
	patchRequest, _ := http.NewRequest("PATCH", "/api/reminders/"+idAsString, strings.NewReader(`
		{
			"isPaid": true
		}
	`))
	router.ServeHTTP(patchRecorder, patchRequest)
	assert.Equal(t, http.StatusOK, patchRecorder.Code)
	var patchBody map[string]interface{}
	json.Unmarshal(patchRecorder.Body.Bytes(), &patchBody)
	assert.Equal(t, idAsFloat64, patchBody["id"])
	assert.Equal(t, "Rahul Sharma", patchBody["personName"])
	assert.Equal(t, "9876543210", patchBody["phoneNumber"])
	assert.Equal(t, 500.0, patchBody["amount"])
	assert.Equal(t, true, patchBody["isPaid"])

	// test the endpoint for deleting a reminder
	deleteRecorder := httptest.NewRecorder()
	deleteRequest, _ := http.NewRequest("DELETE", "/api/reminders/"+idAsString, nil)
	router.ServeHTTP(deleteRecorder, deleteRequest)
	assert.Equal(t, http.StatusNoContent, deleteRecorder.Code)

	// the reminder must be gone from subsequent lists
	afterRecorder := httptest.NewRecorder()
	afterRequest, _ := http.NewRequest("GET", "/api/reminders", nil)
	router.ServeHTTP(afterRecorder, afterRequest)
	assert.Equal(t, http.StatusOK, afterRecorder.Code)
	var afterBody []map[string]interface{}
	json.Unmarshal(afterRecorder.Body.Bytes(), &afterBody)
	for _, row := range afterBody {
		assert.NotEqual(t, idAsFloat64, row["id"])
	}
}

// TestReminderNotFoundPaths tests a PATCH against an id that was never
// created and checks that no new row appears.
func TestReminderNotFoundPaths(t *testing.T) {
	router := setupService(t)

	listRecorder := httptest.NewRecorder()
	listRequest, _ := http.NewRequest("GET", "/api/reminders", nil)
	router.ServeHTTP(listRecorder, listRequest)
	var before []map[string]interface{}
	json.Unmarshal(listRecorder.Body.Bytes(), &before)

	patchRecorder := httptest.NewRecorder()
	patchRequest, _ := http.NewRequest("PATCH", "/api/reminders/99999999", strings.NewReader(`
		{
			"isPaid": true
		}
	`))
	router.ServeHTTP(patchRecorder, patchRequest)
	assert.Equal(t, http.StatusNotFound, patchRecorder.Code)

	afterRecorder := httptest.NewRecorder()
	afterRequest, _ := http.NewRequest("GET", "/api/reminders", nil)
	router.ServeHTTP(afterRecorder, afterRequest)
	var after []map[string]interface{}
	json.Unmarshal(afterRecorder.Body.Bytes(), &after)
	assert.Equal(t, len(before), len(after))

	// deleting an id that does not exist is still answered with 204
	deleteRecorder := httptest.NewRecorder()
	deleteRequest, _ := http.NewRequest("DELETE", "/api/reminders/99999999", nil)
	router.ServeHTTP(deleteRecorder, deleteRequest)
	assert.Equal(t, http.StatusNoContent, deleteRecorder.Code)
}
