package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

type NotificationFeedResponse struct {
	Feed   entity.ClientFeed     `json:"feed"`
	Stored []entity.Notification `json:"stored"`
	Unread int                   `json:"unread"`
}

// NotificationFeed godoc
// @Summary      Notification feed
// @Description  Derived client feeds plus the caller's stored notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {object} NotificationFeedResponse
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *Handler) NotificationFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed, snap, err := h.s.NotificationFeed(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to load notifications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NotificationFeedResponse{
		Feed:   feed,
		Stored: snap.Items,
		Unread: snap.Unread + feed.Unread(),
	})
}

// CreateNotification godoc
// @Summary      Store a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        request body entity.Notification true "Notification"
// @Success      201 {object} entity.Notification
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications [post]
func (h *Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var n entity.Notification

	err := json.NewDecoder(r.Body).Decode(&n)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	created, err := h.s.AppendNotification(ctx, n)
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to store notification")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, created)
}

// MarkNotificationRead godoc
// @Summary      Mark one notification read
// @Tags         notifications
// @Param        id path string true "Notification ID"
// @Success      204 "Marked"
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Notification not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid notification id")
		return
	}

	err = h.s.MarkNotificationRead(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Notification not found")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to mark notification read")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteNotification godoc
// @Summary      Delete one notification
// @Tags         notifications
// @Param        id path string true "Notification ID"
// @Success      204 "Deleted"
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Notification not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications/{id} [delete]
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid notification id")
		return
	}

	err = h.s.RemoveNotification(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Notification not found")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete notification")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearNotifications godoc
// @Summary      Clear all notifications
// @Description  Deletes the caller's stored notifications and advances the clear marker
// @Tags         notifications
// @Success      204 "Cleared"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications [delete]
func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.ClearNotifications(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to clear notifications")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NotificationPanelOpened godoc
// @Summary      Notification panel opened
// @Description  Marks stored notifications read and advances the feed watermark
// @Tags         notifications
// @Success      204 "Recorded"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications/panel/opened [post]
func (h *Handler) NotificationPanelOpened(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.PanelOpened(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to record panel visit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NotificationPanelClosed godoc
// @Summary      Notification panel closed
// @Tags         notifications
// @Success      204 "Recorded"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications/panel/closed [post]
func (h *Handler) NotificationPanelClosed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.PanelClosed(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to record panel visit")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type HideNotificationRequest struct {
	Type     entity.NotificationType `json:"type"`
	ClientID uuid.UUID               `json:"client_id"`
}

// HideClientNotification godoc
// @Summary      Hide a client notification
// @Description  Dismisses one client+type combination from the caller's derived feed
// @Tags         notifications
// @Accept       json
// @Param        request body HideNotificationRequest true "What to hide"
// @Success      204 "Hidden"
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /notifications/hide [post]
func (h *Handler) HideClientNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req HideNotificationRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = h.s.HideClientNotification(ctx, req.Type, req.ClientID)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to hide notification")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
