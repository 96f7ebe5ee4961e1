package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/notification"
	"github.com/perivi8/business-guru-admin/internal/service"
)

type Service interface {
	ListClients(ctx context.Context) ([]entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, update entity.ClientUpdate) (entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ApproveUser(ctx context.Context, id uuid.UUID, email string) (entity.DeliveryOutcome, error)
	RejectUser(ctx context.Context, id uuid.UUID, email, reason string) (entity.DeliveryOutcome, error)

	DocumentDetails(ctx context.Context, clientID uuid.UUID, key string) (entity.ResolvedDocument, error)
	DocumentPreview(ctx context.Context, clientID uuid.UUID, key string) (string, error)
	DocumentDownload(ctx context.Context, clientID uuid.UUID, key string) (entity.DownloadedDocument, error)

	TogglePaymentGateway(ctx context.Context, clientID uuid.UUID, gateway string, requested entity.GatewayStatus) (service.ToggleResult, error)
	UpdateLoanStatus(ctx context.Context, clientID uuid.UUID, requested entity.LoanStatus) (entity.DeliveryOutcome, error)
	BatchUpdateStatus(ctx context.Context, updates []entity.StatusUpdate) error

	NotificationFeed(ctx context.Context) (entity.ClientFeed, notification.Snapshot, error)
	AppendNotification(ctx context.Context, n entity.Notification) (entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
	RemoveNotification(ctx context.Context, id uuid.UUID) error
	ClearNotifications(ctx context.Context) error
	PanelOpened(ctx context.Context) error
	PanelClosed(ctx context.Context) error
	HideClientNotification(ctx context.Context, typ entity.NotificationType, clientID uuid.UUID) error
}

// @title Business Guru Admin API
// @version 1.0
// @description Admin API for client, document and notification management.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health check
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

// ListClients godoc
// @Summary      Client list
// @Description  Returns all clients visible to the caller
// @Tags         clients
// @Produce      json
// @Success      200 {array} entity.Client
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients [get]
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.ListClients(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to load clients")
		return
	}

	SendJSON(ctx, w, http.StatusOK, clients)
}

// GetClient godoc
// @Summary      Client details
// @Tags         clients
// @Produce      json
// @Param        client_id path string true "Client ID"
// @Success      200 {object} entity.Client
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Client not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id} [get]
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := clientIDParam(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	client, err := h.s.Client(ctx, clientID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Client not found")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to load client")

		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

// UpdateClient godoc
// @Summary      Update client
// @Description  Partially updates a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client_id path string true "Client ID"
// @Param        request body entity.ClientUpdate true "Fields to update"
// @Success      200 {object} entity.Client
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Client not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id} [put]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := clientIDParam(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var update entity.ClientUpdate

	err = json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = service.ValidateClientUpdate(update)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	client, err := h.s.UpdateClient(ctx, clientID, update)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Client not found")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to update client")

		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

// DeleteClient godoc
// @Summary      Delete client
// @Description  Deletes a client, admin only
// @Tags         clients
// @Param        client_id path string true "Client ID"
// @Success      204 "Deleted"
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      403 {object} ResponseError "Admin access required"
// @Failure      404 {object} ResponseError "Client not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id} [delete]
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := clientIDParam(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	err = h.s.DeleteClient(ctx, clientID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrForbidden):
			SendErr(ctx, w, http.StatusForbidden, err, "Admin access required")
		case errors.Is(err, entity.ErrNotFound):
			SendErr(ctx, w, http.StatusNotFound, err, "Client not found")
		default:
			SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete client")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DocumentDetails godoc
// @Summary      Document details
// @Description  Resolves a document key to its display name, size and URL
// @Tags         documents
// @Produce      json
// @Param        client_id path string true "Client ID"
// @Param        key path string true "Document key"
// @Success      200 {object} entity.ResolvedDocument
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Document not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id}/documents/{key} [get]
func (h *Handler) DocumentDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, key, err := documentParams(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request parameters")
		return
	}

	resolved, err := h.s.DocumentDetails(ctx, clientID, key)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Document not found")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to resolve document")

		return
	}

	SendJSON(ctx, w, http.StatusOK, resolved)
}

type DocumentPreviewResponse struct {
	URL string `json:"url"`
}

// DocumentPreview godoc
// @Summary      Document preview URL
// @Description  Returns a cache-busted direct URL for in-browser preview
// @Tags         documents
// @Produce      json
// @Param        client_id path string true "Client ID"
// @Param        key path string true "Document key"
// @Success      200 {object} DocumentPreviewResponse
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Document not found or not previewable"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id}/documents/{key}/preview [get]
func (h *Handler) DocumentPreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, key, err := documentParams(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request parameters")
		return
	}

	previewURL, err := h.s.DocumentPreview(ctx, clientID, key)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Document not found or not previewable")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to resolve document")

		return
	}

	SendJSON(ctx, w, http.StatusOK, DocumentPreviewResponse{URL: previewURL})
}

// DocumentDownload godoc
// @Summary      Document download
// @Description  Streams the document bytes as an attachment
// @Tags         documents
// @Produce      application/pdf
// @Param        client_id path string true "Client ID"
// @Param        key path string true "Document key"
// @Success      200 {file} binary "Document"
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      404 {object} ResponseError "Document not found"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id}/documents/{key}/download [get]
func (h *Handler) DocumentDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, key, err := documentParams(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request parameters")
		return
	}

	doc, err := h.s.DocumentDownload(ctx, clientID, key)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Document not found")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to download document")

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.QueryEscape(doc.Name)))

	http.ServeContent(w, r, doc.Name, time.Now(), bytes.NewReader(doc.Data))
}

type UpdateGatewayStatusRequest struct {
	Gateway string               `json:"gateway"`
	Status  entity.GatewayStatus `json:"status"`
}

// UpdatePaymentGateway godoc
// @Summary      Toggle payment gateway status
// @Description  Requesting the currently active value flips the status back to pending
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Param        client_id path string true "Client ID"
// @Param        request body UpdateGatewayStatusRequest true "Gateway and requested status"
// @Success      200 {object} service.ToggleResult
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      409 {object} ResponseError "Update rejected, local state reverted"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id}/status/payment-gateway [put]
func (h *Handler) UpdatePaymentGateway(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := clientIDParam(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req UpdateGatewayStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	if req.Gateway == "" {
		SendErr(ctx, w, http.StatusBadRequest, errors.New("gateway is required"), "Invalid request body")
		return
	}

	res, err := h.s.TogglePaymentGateway(ctx, clientID, req.Gateway, req.Status)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		if res.Reverted {
			// the caller gets the rolled-back state plus a retry hint
			SendJSON(ctx, w, http.StatusConflict, res)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to update status")

		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type UpdateLoanStatusRequest struct {
	Status entity.LoanStatus `json:"status"`
}

type UpdateLoanStatusResponse struct {
	Status  entity.LoanStatus      `json:"status"`
	Outcome entity.DeliveryOutcome `json:"outcome,omitempty"`
}

// UpdateLoanStatus godoc
// @Summary      Update loan status
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Param        client_id path string true "Client ID"
// @Param        request body UpdateLoanStatusRequest true "Requested status"
// @Success      200 {object} UpdateLoanStatusResponse
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/{client_id}/status/loan [put]
func (h *Handler) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := clientIDParam(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req UpdateLoanStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	outcome, err := h.s.UpdateLoanStatus(ctx, clientID, req.Status)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to update status")

		return
	}

	SendJSON(ctx, w, http.StatusOK, UpdateLoanStatusResponse{Status: req.Status, Outcome: outcome})
}

// BatchUpdateStatus godoc
// @Summary      Batch status update
// @Description  Applies several status updates atomically, all local changes revert on failure
// @Tags         statuses
// @Accept       json
// @Param        request body []entity.StatusUpdate true "Status updates"
// @Success      204 "Applied"
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /clients/status/batch [put]
func (h *Handler) BatchUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var updates []entity.StatusUpdate

	err := json.NewDecoder(r.Body).Decode(&updates)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = h.s.BatchUpdateStatus(ctx, updates)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to update statuses")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type UserActionRequest struct {
	Email  string `json:"email"`
	Reason string `json:"reason,omitempty"`
}

type UserActionResponse struct {
	Outcome entity.DeliveryOutcome `json:"outcome,omitempty"`
}

// ApproveUser godoc
// @Summary      Approve user registration
// @Description  Approves a pending registration and emails the applicant
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        request body UserActionRequest true "Applicant email"
// @Success      200 {object} UserActionResponse
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      403 {object} ResponseError "Admin access required"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /users/{user_id}/approve [post]
func (h *Handler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, req, err := parseUserAction(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
		return
	}

	outcome, err := h.s.ApproveUser(ctx, userID, req.Email)
	if err != nil {
		sendUserActionErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, UserActionResponse{Outcome: outcome})
}

// RejectUser godoc
// @Summary      Reject user registration
// @Description  Rejects a pending registration and emails the applicant the reason
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        request body UserActionRequest true "Applicant email and rejection reason"
// @Success      200 {object} UserActionResponse
// @Failure      400 {object} ResponseError "Bad request"
// @Failure      403 {object} ResponseError "Admin access required"
// @Failure      500 {object} ResponseError "Server error"
// @Security     BearerAuth
// @Router       /users/{user_id}/reject [post]
func (h *Handler) RejectUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, req, err := parseUserAction(r)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
		return
	}

	if req.Reason == "" {
		SendErr(ctx, w, http.StatusBadRequest, errors.New("reason is required"), "Invalid request body")
		return
	}

	outcome, err := h.s.RejectUser(ctx, userID, req.Email, req.Reason)
	if err != nil {
		sendUserActionErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, UserActionResponse{Outcome: outcome})
}

func parseUserAction(r *http.Request) (uuid.UUID, UserActionRequest, error) {
	userID, err := uuid.FromString(chi.URLParam(r, "user_id"))
	if err != nil {
		return uuid.Nil, UserActionRequest{}, err
	}

	var req UserActionRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return uuid.Nil, UserActionRequest{}, err
	}

	return userID, req, nil
}

func sendUserActionErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Admin access required")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "User not found")
	case errors.Is(err, entity.ErrBackendRejected):
		SendErr(ctx, w, http.StatusConflict, err, "Action rejected")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, "Failed to process user action")
	}
}

func clientIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.FromString(chi.URLParam(r, "client_id"))
}

func documentParams(r *http.Request) (uuid.UUID, string, error) {
	clientID, err := clientIDParam(r)
	if err != nil {
		return uuid.Nil, "", err
	}

	key := chi.URLParam(r, "key")
	if key == "" {
		return uuid.Nil, "", errors.New("document key is required")
	}

	return clientID, key, nil
}
