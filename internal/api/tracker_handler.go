package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/kevink520/exercisetracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackerHandler holds the tracker service dependency.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- DTOs for API (Data Transfer Objects) ---

// UserResponse is the DTO for a registered user.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// EntryResponse is the DTO returned after logging an exercise.
type EntryResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntryResponse is one entry inside a LogResponse.
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the DTO for a log query.
type LogResponse struct {
	ID       string             `json:"_id"`
	Username string             `json:"username"`
	From     string             `json:"from,omitempty"`
	To       string             `json:"to,omitempty"`
	Count    int                `json:"count"`
	Log      []LogEntryResponse `json:"log"`
}

// MapUserToResponse converts a service.UserResult to UserResponse DTO.
func MapUserToResponse(u *service.UserResult) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}

// MapEntryToResponse converts a service.EntrySummary to EntryResponse DTO.
func MapEntryToResponse(e *service.EntrySummary) EntryResponse {
	if e == nil {
		return EntryResponse{}
	}
	return EntryResponse{
		ID:          e.ID,
		Username:    e.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	}
}

// MapLogToResponse converts a service.LogResult to LogResponse DTO.
func MapLogToResponse(l *service.LogResult) LogResponse {
	if l == nil {
		return LogResponse{}
	}
	entries := make([]LogEntryResponse, len(l.Log))
	for i, e := range l.Log {
		entries[i] = LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		}
	}
	return LogResponse{
		ID:       l.ID,
		Username: l.Username,
		From:     l.From,
		To:       l.To,
		Count:    l.Count,
		Log:      entries,
	}
}

// --- Handler Methods ---

// CreateUser handles POST /api/exercise/new-user. The username arrives as
// a form field.
func (h *TrackerHandler) CreateUser(c *gin.Context) {
	username := c.PostForm("username")

	result, err := h.trackerService.CreateUser(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(result))
}

// AddEntry handles POST /api/exercise/add. All fields arrive as form
// values; date is optional.
func (h *TrackerHandler) AddEntry(c *gin.Context) {
	userID := c.PostForm("userId")
	description := c.PostForm("description")
	duration := c.PostForm("duration")
	date := c.PostForm("date")

	result, err := h.trackerService.AddEntry(c.Request.Context(), userID, description, duration, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapEntryToResponse(result))
}

// GetLog handles GET /api/exercise/log?userId=&from=&to=&limit=.
func (h *TrackerHandler) GetLog(c *gin.Context) {
	userID := c.Query("userId")
	from := c.Query("from")
	to := c.Query("to")
	limit := c.Query("limit")

	result, err := h.trackerService.QueryLog(c.Request.Context(), userID, from, to, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(result))
}

// respondError maps service errors onto HTTP statuses: caller-fixable
// kinds answer 400 with the message verbatim, storage failures are logged
// and answered generically so internal detail never leaks.
func respondError(c *gin.Context, err error) {
	var verr service.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWithError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrUsernameTaken):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR: request %s failed: %v", RequestIDFromContext(c), err)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

// abortWithError sends a JSON error payload and stops the handler chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
