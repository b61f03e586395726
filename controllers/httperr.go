package controllers

import (
	"errors"
	"log"
	"net/http"

	"school_equipment_lending/app"
	"school_equipment_lending/db"
	"school_equipment_lending/lending"

	"github.com/gin-gonic/gin"
)

// writeError maps the lending error taxonomy onto HTTP statuses. Messages
// from typed errors are caller-facing; anything unexpected is logged and
// hidden behind a generic 500.
func writeError(c *gin.Context, err error) {
	var ve *lending.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, app.H{"error": ve.Error()})
		return
	}

	var nf *lending.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, app.H{"error": nf.Error()})
		return
	}

	var ist *lending.InvalidStateTransitionError
	if errors.As(err, &ist) {
		c.JSON(http.StatusConflict, app.H{"error": ist.Error()})
		return
	}

	var ia *lending.InsufficientAvailabilityError
	if errors.As(err, &ia) {
		c.JSON(http.StatusConflict, app.H{"error": ia.Error()})
		return
	}

	var ce *lending.CapacityExceededError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, app.H{"error": ce.Error(), "remaining": ce.Remaining})
		return
	}

	var or *lending.OverReturnError
	if errors.As(err, &or) {
		c.JSON(http.StatusConflict, app.H{"error": or.Error()})
		return
	}

	if errors.Is(err, db.ErrForbidden) {
		c.JSON(http.StatusForbidden, app.H{"error": "forbidden"})
		return
	}

	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, app.H{"error": "internal error"})
}
