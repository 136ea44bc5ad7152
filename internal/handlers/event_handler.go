package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akylbek/payment-system/status-engine/internal/apperrors"
	"github.com/akylbek/payment-system/status-engine/internal/interfaces"
	"github.com/akylbek/payment-system/status-engine/internal/models"
)

type EventHandler struct {
	repo interfaces.PaymentStatusRepository
}

func NewEventHandler(repo interfaces.PaymentStatusRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

// ListEvents returns recorded outgoing events. Either object_id alone, or
// any combination of created_after/created_before/limit/offset.
func (h *EventHandler) ListEvents(c *gin.Context) {
	constraints, err := eventConstraintsFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := h.repo.ListEvents(c.Request.Context(), constraints)
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

func eventConstraintsFromQuery(c *gin.Context) (models.EventListConstraints, error) {
	constraints := models.EventListConstraints{
		ObjectID: c.Query("object_id"),
	}

	if raw := c.Query("created_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return constraints, &apperrors.IncorrectValueProvided{FieldName: "created_after"}
		}
		constraints.CreatedAfter = &t
	}
	if raw := c.Query("created_before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return constraints, &apperrors.IncorrectValueProvided{FieldName: "created_before"}
		}
		constraints.CreatedBefore = &t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return constraints, &apperrors.IncorrectValueProvided{FieldName: "limit"}
		}
		constraints.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return constraints, &apperrors.IncorrectValueProvided{FieldName: "offset"}
		}
		constraints.Offset = n
	}

	return constraints, constraints.Validate()
}
