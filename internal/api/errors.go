package api

import (
	"context"  // Cancellation errors
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"sthira/internal/accounts"  // Repository errors
	"sthira/internal/app"       // State machine errors
	"sthira/internal/auth"      // Authentication errors
	"sthira/internal/dashboard" // Presenter errors
	"sthira/internal/domain"    // Measurement errors
	"sthira/internal/session"   // Session store errors
	"sthira/internal/simulate"  // Simulated service errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// statusClientClosed is written when the client went away mid-request
const statusClientClosed = 499

// respondError maps a service error to its status code and JSON body
func respondError(c *gin.Context, err error) {
	var fieldErr *app.FieldError
	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fieldErr.Error(), "field": fieldErr.Field, "label": fieldErr.Label})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.AbortWithStatus(statusClientClosed) // Nobody is listening for a body
	case errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, app.ErrUnknownSection),
		errors.Is(err, domain.ErrInvalidMeasurement),
		errors.Is(err, simulate.ErrEmptyConcern),
		errors.Is(err, simulate.ErrDietFieldsMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, app.ErrNotSignedIn),
		errors.Is(err, app.ErrNotInWizard),
		errors.Is(err, app.ErrNotOnDashboard):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrSessionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
	case errors.Is(err, simulate.ErrUnknownRecipe), errors.Is(err, simulate.ErrUnknownAgeGroup):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, accounts.ErrNotFound), errors.Is(err, dashboard.ErrAccountGone):
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Route
			"error": err.Error(),  // Error message
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

// eventJSON is the wire shape of an app.Event
type eventJSON struct {
	Name string    `json:"name"`
	Data app.Event `json:"data"`
}

func renderEvents(events []app.Event) []eventJSON {
	out := make([]eventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, eventJSON{Name: e.EventName(), Data: e})
	}
	return out
}
