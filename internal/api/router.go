package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/perivi8/business-guru-admin/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/clients", h.ListClients)
			r.Get("/clients/{client_id}", h.GetClient)
			r.Put("/clients/{client_id}", h.UpdateClient)
			r.Delete("/clients/{client_id}", h.DeleteClient)

			r.Get("/clients/{client_id}/documents/{key}", h.DocumentDetails)
			r.Get("/clients/{client_id}/documents/{key}/preview", h.DocumentPreview)
			r.Get("/clients/{client_id}/documents/{key}/download", h.DocumentDownload)

			r.Put("/clients/{client_id}/status/payment-gateway", h.UpdatePaymentGateway)
			r.Put("/clients/{client_id}/status/loan", h.UpdateLoanStatus)
			r.Put("/clients/status/batch", h.BatchUpdateStatus)

			r.Post("/users/{user_id}/approve", h.ApproveUser)
			r.Post("/users/{user_id}/reject", h.RejectUser)

			r.Get("/notifications", h.NotificationFeed)
			r.Post("/notifications", h.CreateNotification)
			r.Delete("/notifications", h.ClearNotifications)
			r.Put("/notifications/{id}/read", h.MarkNotificationRead)
			r.Delete("/notifications/{id}", h.DeleteNotification)
			r.Post("/notifications/panel/opened", h.NotificationPanelOpened)
			r.Post("/notifications/panel/closed", h.NotificationPanelClosed)
			r.Post("/notifications/hide", h.HideClientNotification)
		})
	})

	return router
}
