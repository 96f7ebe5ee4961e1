package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/notification"
	"github.com/perivi8/business-guru-admin/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Clients interface {
	ListClients(ctx context.Context) ([]entity.Client, error)
	Client(ctx context.Context, id uuid.UUID) (entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, update entity.ClientUpdate) (entity.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ApproveUser(ctx context.Context, id uuid.UUID) error
	RejectUser(ctx context.Context, id uuid.UUID, reason string) error
}

type StatusClient interface {
	UpdatePaymentGateway(ctx context.Context, clientID uuid.UUID, gateway string, status entity.GatewayStatus) (entity.DeliveryOutcome, error)
	UpdateLoanStatus(ctx context.Context, clientID uuid.UUID, status entity.LoanStatus) (entity.DeliveryOutcome, error)
	UpdateBatch(ctx context.Context, updates []entity.StatusUpdate) error
}

type Storage interface {
	Download(ctx context.Context, url string) ([]byte, error)
	StreamDocument(ctx context.Context, clientID uuid.UUID, key string) (entity.DownloadedDocument, error)
	LookupDocumentURL(ctx context.Context, clientID uuid.UUID, key string) (string, error)
}

type StatusRepository interface {
	ClientStatus(ctx context.Context, clientID uuid.UUID, dimension entity.StatusDimension, gateway string) (entity.ClientStatus, error)
	UpsertClientStatus(ctx context.Context, status entity.ClientStatus) error
}

// Prefs is the narrow per-user preferences store behind the watermark and
// hidden-notification bookkeeping.
type Prefs interface {
	GetPref(ctx context.Context, key string) (time.Time, bool, error)
	SetPref(ctx context.Context, key string, value time.Time) error
}

type Producer interface {
	SendStatusChanged(ctx context.Context, clientID uuid.UUID, dimension, gateway, status string, changedBy uuid.UUID)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

type Service struct {
	clients    Clients
	status     StatusClient
	storage    Storage
	statusRepo StatusRepository
	prefs      Prefs
	stores     *notification.Stores
	producer   Producer
	mailer     Mailer
	cfg        config.Notifications

	cacheMu   sync.RWMutex
	cached    []entity.Client
	fetchedAt time.Time
}

func New(
	clients Clients,
	status StatusClient,
	storage Storage,
	statusRepo StatusRepository,
	prefs Prefs,
	stores *notification.Stores,
	producer Producer,
	mailer Mailer,
	cfg config.Notifications,
) *Service {
	return &Service{
		clients:    clients,
		status:     status,
		storage:    storage,
		statusRepo: statusRepo,
		prefs:      prefs,
		stores:     stores,
		producer:   producer,
		mailer:     mailer,
		cfg:        cfg,
	}
}

// ListClients loads the full client list from the backend and refreshes the
// local cache the notification feeds derive from.
func (s *Service) ListClients(ctx context.Context) ([]entity.Client, error) {
	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	s.cacheMu.Lock()
	s.cached = clients
	s.fetchedAt = time.Now()
	s.cacheMu.Unlock()

	return clients, nil
}

// RefreshClients is the periodic job body. A refresh racing a user-triggered
// load is accepted: last write wins, there is no version check.
func (s *Service) RefreshClients(ctx context.Context) error {
	_, err := s.ListClients(ctx)
	return err
}

func (s *Service) cachedClients(ctx context.Context) ([]entity.Client, error) {
	s.cacheMu.RLock()
	cached := s.cached
	fetchedAt := s.fetchedAt
	s.cacheMu.RUnlock()

	if !fetchedAt.IsZero() {
		return cached, nil
	}

	return s.ListClients(ctx)
}

func (s *Service) Client(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	client, err := s.clients.Client(ctx, id)
	if err != nil {
		return entity.Client{}, fmt.Errorf("get client %s: %w", id, err)
	}

	return client, nil
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, update entity.ClientUpdate) (entity.Client, error) {
	client, err := s.clients.UpdateClient(ctx, id, update)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client %s: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Client %s updated", id))

	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return fmt.Errorf("get user from context: %w", err)
	}

	if !user.IsAdmin() {
		return fmt.Errorf("%w: user %s is not an admin", entity.ErrForbidden, user.ID)
	}

	err = s.clients.DeleteClient(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Client %s deleted", id))

	return nil
}

func (s *Service) ApproveUser(ctx context.Context, id uuid.UUID, email string) (entity.DeliveryOutcome, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("get user from context: %w", err)
	}

	if !user.IsAdmin() {
		return entity.DeliveryNone, fmt.Errorf("%w: user %s is not an admin", entity.ErrForbidden, user.ID)
	}

	err = s.clients.ApproveUser(ctx, id)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("approve user %s: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Registration of user %s approved", id))

	return s.sendRegistrationMail(ctx, email,
		"Your Business Guru registration is approved",
		"Your registration has been approved. You can sign in now."), nil
}

func (s *Service) RejectUser(ctx context.Context, id uuid.UUID, email, reason string) (entity.DeliveryOutcome, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("get user from context: %w", err)
	}

	if !user.IsAdmin() {
		return entity.DeliveryNone, fmt.Errorf("%w: user %s is not an admin", entity.ErrForbidden, user.ID)
	}

	err = s.clients.RejectUser(ctx, id, reason)
	if err != nil {
		return entity.DeliveryNone, fmt.Errorf("reject user %s: %w", id, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Registration of user %s rejected", id))

	return s.sendRegistrationMail(ctx, email,
		"Your Business Guru registration was rejected",
		fmt.Sprintf("Your registration was rejected. Reason: %s", reason)), nil
}

func (s *Service) sendRegistrationMail(ctx context.Context, email, subject, body string) entity.DeliveryOutcome {
	if s.mailer == nil || email == "" {
		return entity.DeliveryNone
	}

	err := s.mailer.SendMessage(subject, body, []string{email}, "text/plain")
	if err != nil {
		slog.ErrorContext(ctx, "send registration mail", "error", err)
		return entity.DeliveryEmailFailed
	}

	return entity.DeliveryEmailSent
}
