package service

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/asharma/money-reminders/internal/model"
	"github.com/asharma/money-reminders/internal/store"
)

// SetupHttpRouter initializes the REST API router and registers all
// endpoints under /api/reminders. When allowedOrigins is not empty, CORS
// headers are emitted for the browser client running on a different origin.
func SetupHttpRouter(allowedOrigins []string) *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		router = gin.New()
		router.Use(gin.Recovery())
	} else {
		router = gin.Default()
	}
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Accept", "Content-Type"},
		}))
	}
	api := router.Group("/api")
	api.GET("/reminders", findAllReminders)
	api.POST("/reminders", createReminder)
	api.GET("/reminders/:id", findReminderByID)
	api.PATCH("/reminders/:id", updateReminderByID)
	api.DELETE("/reminders/:id", deleteReminderByID)
	return router
}

// findAllReminders responds with the list of all reminders as JSON, ordered
// by due date with the latest first.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/api/reminders"
func findAllReminders(c *gin.Context) {
	reminders, err := store.List()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, reminders)
}

// createReminder inserts the reminder specified in the request's JSON into
// the database. The body must contain personName, phoneNumber, a positive
// amount and a dueDate; isPaid is optional and defaults to false. It
// responds with the full reminder data including the newly assigned id.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/reminders --request "POST" --include --header "Content-Type: application/json" --data '{"personName": "Rahul Sharma", "phoneNumber": "9876543210", "amount": 500, "dueDate": "2026-09-02T00:00:00Z"}'
func createReminder(c *gin.Context) {
	var in model.ReminderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	if verr := in.ValidateCreate(); verr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, verr)
		return
	}
	reminder, err := store.Create(in)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusCreated, reminder)
}

// findReminderByID locates the reminder whose id matches the id parameter of
// the request URL, then returns that reminder as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/reminders/56
func findReminderByID(c *gin.Context) {
	id, errConv := strconv.ParseInt(c.Param("id"), 10, 64)
	if errConv != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "reminder not found"})
		return
	}
	reminder, err := store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "reminder not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, reminder)
}

// updateReminderByID updates the reminder whose id matches the id parameter
// of the request URL, merges the values specified in the JSON (and only
// those), and finally responds with the new version of the reminder.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/api/reminders/56 --request "PATCH" --include --header "Content-Type: application/json" --data '{"isPaid": true}'
//	> curl http://localhost:8080/api/reminders/56 --request "PATCH" --include --header "Content-Type: application/json" --data '{"amount": 750, "dueDate": "2026-09-20T00:00:00Z"}'
func updateReminderByID(c *gin.Context) {
	id, errConv := strconv.ParseInt(c.Param("id"), 10, 64)
	if errConv != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "reminder not found"})
		return
	}

	var in model.ReminderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}

	// It only makes sense to continue if we have at least one value to update.
	if in.Empty() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "no values to be updated"})
		return
	}
	if verr := in.ValidateUpdate(); verr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, verr)
		return
	}

	reminder, err := store.Update(id, in)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "reminder not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, reminder)
}

// deleteReminderByID deletes the reminder whose id matches the id parameter
// of the request URL from the database. The response is 204 regardless of
// whether the reminder existed, which is deliberately asymmetric with the
// 404 of the update path: delete is idempotent and skips the existence
// check.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/reminders/56 --request "DELETE"
func deleteReminderByID(c *gin.Context) {
	id, errConv := strconv.ParseInt(c.Param("id"), 10, 64)
	if errConv != nil {
		c.Status(http.StatusNoContent)
		return
	}
	if err := store.Delete(id); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
