package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/perivi8/business-guru-admin/internal/entity"
	"github.com/perivi8/business-guru-admin/internal/mocks"
	"github.com/perivi8/business-guru-admin/internal/notification"
	"github.com/perivi8/business-guru-admin/internal/service"
	"github.com/perivi8/business-guru-admin/pkg/config"
)

var notificationsCfg = config.Notifications{
	RecentCreationWindow: time.Minute,
	NewLimit:             10,
	UpdatedLimit:         10,
	AdminLimit:           5,
}

func adminCtx() (context.Context, entity.User) {
	user := entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Role: entity.RoleAdmin,
	}

	return entity.SetUserToContext(context.Background(), user), user
}

func TestService_TogglePaymentGateway(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statusClient := mocks.NewMockStatusClient(ctrl)
	statusRepo := mocks.NewMockStatusRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx, user := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	statusRepo.EXPECT().ClientStatus(ctx, clientID, entity.DimensionPaymentGateway, "cashfree").
		Return(entity.ClientStatus{
			ClientID:  clientID,
			Dimension: entity.DimensionPaymentGateway,
			Gateway:   "cashfree",
			Status:    entity.GatewayApproved.String(),
		}, nil)
	statusRepo.EXPECT().UpsertClientStatus(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, st entity.ClientStatus) error {
			require.Equal(t, entity.GatewayPending.String(), st.Status)
			require.Equal(t, user.ID, st.UpdatedBy)
			return nil
		})
	statusClient.EXPECT().UpdatePaymentGateway(ctx, clientID, "cashfree", entity.GatewayPending).
		Return(entity.DeliveryEmailSent, nil)
	producer.EXPECT().SendStatusChanged(ctx, clientID, "payment_gateway", "cashfree", "pending", user.ID)

	s := service.New(nil, statusClient, nil, statusRepo, nil, nil, producer, nil, notificationsCfg)

	// toggling the value that is already active flips the status to pending
	res, err := s.TogglePaymentGateway(ctx, clientID, "cashfree", entity.GatewayApproved)
	require.NoError(t, err)
	require.Equal(t, entity.GatewayPending, res.Status)
	require.Equal(t, entity.DeliveryEmailSent, res.Outcome)
	require.False(t, res.Reverted)
}

func TestService_TogglePaymentGateway_RevertsOnBackendFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statusClient := mocks.NewMockStatusClient(ctrl)
	statusRepo := mocks.NewMockStatusRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx, _ := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	statusRepo.EXPECT().ClientStatus(ctx, clientID, entity.DimensionPaymentGateway, "razorpay").
		Return(entity.ClientStatus{
			ClientID:  clientID,
			Dimension: entity.DimensionPaymentGateway,
			Gateway:   "razorpay",
			Status:    entity.GatewayNotApproved.String(),
		}, nil)

	gomock.InOrder(
		statusRepo.EXPECT().UpsertClientStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, st entity.ClientStatus) error {
				require.Equal(t, entity.GatewayApproved.String(), st.Status)
				return nil
			}),
		statusRepo.EXPECT().UpsertClientStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, st entity.ClientStatus) error {
				require.Equal(t, entity.GatewayNotApproved.String(), st.Status)
				return nil
			}),
	)

	statusClient.EXPECT().UpdatePaymentGateway(ctx, clientID, "razorpay", entity.GatewayApproved).
		Return(entity.DeliveryNone, entity.ErrBackendRejected)

	s := service.New(nil, statusClient, nil, statusRepo, nil, nil, producer, nil, notificationsCfg)

	res, err := s.TogglePaymentGateway(ctx, clientID, "razorpay", entity.GatewayApproved)
	require.ErrorIs(t, err, entity.ErrBackendRejected)
	require.True(t, res.Reverted)
	require.Equal(t, entity.GatewayNotApproved, res.Status)
	require.Equal(t, entity.GatewayApproved.NextPlausible(), res.RetryStatus)
}

func TestService_TogglePaymentGateway_FirstToggleStartsFromPending(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statusClient := mocks.NewMockStatusClient(ctrl)
	statusRepo := mocks.NewMockStatusRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx, _ := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	statusRepo.EXPECT().ClientStatus(ctx, clientID, entity.DimensionPaymentGateway, "cashfree").
		Return(entity.ClientStatus{}, entity.ErrNotFound)
	statusRepo.EXPECT().UpsertClientStatus(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, st entity.ClientStatus) error {
			require.Equal(t, entity.GatewayApproved.String(), st.Status)
			return nil
		})
	statusClient.EXPECT().UpdatePaymentGateway(ctx, clientID, "cashfree", entity.GatewayApproved).
		Return(entity.DeliveryNone, nil)
	producer.EXPECT().SendStatusChanged(ctx, clientID, "payment_gateway", "cashfree", "approved", gomock.Any())

	s := service.New(nil, statusClient, nil, statusRepo, nil, nil, producer, nil, notificationsCfg)

	res, err := s.TogglePaymentGateway(ctx, clientID, "cashfree", entity.GatewayApproved)
	require.NoError(t, err)
	require.Equal(t, entity.GatewayApproved, res.Status)
}

func TestService_BatchUpdateStatus_RevertsAllOnFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	statusClient := mocks.NewMockStatusClient(ctrl)
	statusRepo := mocks.NewMockStatusRepository(ctrl)

	ctx, _ := adminCtx()

	updates := []entity.StatusUpdate{
		{ClientID: uuid.Must(uuid.NewV4()), Dimension: entity.DimensionPaymentGateway, Gateway: "cashfree", Status: "approved"},
		{ClientID: uuid.Must(uuid.NewV4()), Dimension: entity.DimensionLoan, Status: "hold"},
	}

	statusRepo.EXPECT().ClientStatus(ctx, updates[0].ClientID, entity.DimensionPaymentGateway, "cashfree").
		Return(entity.ClientStatus{Status: "pending"}, nil)
	statusRepo.EXPECT().ClientStatus(ctx, updates[1].ClientID, entity.DimensionLoan, "").
		Return(entity.ClientStatus{Status: "approved"}, nil)

	// two optimistic writes, then two reverts after the backend call fails
	statusRepo.EXPECT().UpsertClientStatus(ctx, gomock.Any()).Return(nil).Times(4)
	statusClient.EXPECT().UpdateBatch(ctx, updates).Return(errors.New("boom"))

	s := service.New(nil, statusClient, nil, statusRepo, nil, nil, nil, nil, notificationsCfg)

	err := s.BatchUpdateStatus(ctx, updates)
	require.Error(t, err)
}

func TestService_DocumentDownload_FallsBackToStream(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)
	storage := mocks.NewMockStorage(ctrl)

	ctx, _ := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	clients.EXPECT().Client(ctx, clientID).Return(entity.Client{
		ID: clientID,
		Documents: map[string]entity.DocumentValue{
			"gst_certificate": {URL: "https://cdn.example.com/docs/gst.pdf", OriginalFilename: "gst.pdf"},
		},
	}, nil)

	storage.EXPECT().Download(ctx, "https://cdn.example.com/docs/gst.pdf").
		Return(nil, entity.ErrEmptyPayload)
	storage.EXPECT().StreamDocument(ctx, clientID, "gst_certificate").
		Return(entity.DownloadedDocument{Name: "gst.pdf", Data: []byte("%PDF-1.4")}, nil)

	s := service.New(clients, nil, storage, nil, nil, nil, nil, nil, notificationsCfg)

	doc, err := s.DocumentDownload(ctx, clientID, "gst_certificate")
	require.NoError(t, err)
	require.Equal(t, "gst.pdf", doc.Name)
	require.NotEmpty(t, doc.Data)
}

func TestService_DocumentDownload_LastResortURLLookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)
	storage := mocks.NewMockStorage(ctrl)

	ctx, _ := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	// processed-only document: no direct URL, so the chain starts at streaming
	clients.EXPECT().Client(ctx, clientID).Return(entity.Client{
		ID: clientID,
		ProcessedDocuments: map[string]entity.ProcessedDocument{
			"partner_aadhar_0": {FileName: "aadhar_front.pdf"},
		},
	}, nil)

	storage.EXPECT().StreamDocument(ctx, clientID, "partner_aadhar_0").
		Return(entity.DownloadedDocument{}, entity.ErrNotFound)
	storage.EXPECT().LookupDocumentURL(ctx, clientID, "partner_aadhar_0").
		Return("https://cdn.example.com/docs/aadhar_front.pdf", nil)
	storage.EXPECT().Download(ctx, "https://cdn.example.com/docs/aadhar_front.pdf").
		Return([]byte("%PDF-1.4"), nil)

	s := service.New(clients, nil, storage, nil, nil, nil, nil, nil, notificationsCfg)

	doc, err := s.DocumentDownload(ctx, clientID, "partner_0_aadhar")
	require.NoError(t, err)
	require.Equal(t, "aadhar_front.pdf", doc.Name)
}

func TestService_DocumentDownload_StreamServerErrorStillFallsThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)
	storage := mocks.NewMockStorage(ctrl)

	ctx, _ := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	clients.EXPECT().Client(ctx, clientID).Return(entity.Client{
		ID: clientID,
		ProcessedDocuments: map[string]entity.ProcessedDocument{
			"gst_certificate": {FileName: "gst.pdf"},
		},
	}, nil)

	// a 5xx from the stream endpoint is not a miss, the lookup is still tried
	storage.EXPECT().StreamDocument(ctx, clientID, "gst_certificate").
		Return(entity.DownloadedDocument{}, errors.New("unexpected code 500"))
	storage.EXPECT().LookupDocumentURL(ctx, clientID, "gst_certificate").
		Return("https://cdn.example.com/docs/gst.pdf", nil)
	storage.EXPECT().Download(ctx, "https://cdn.example.com/docs/gst.pdf").
		Return([]byte("%PDF-1.4"), nil)

	s := service.New(clients, nil, storage, nil, nil, nil, nil, nil, notificationsCfg)

	doc, err := s.DocumentDownload(ctx, clientID, "gst_certificate")
	require.NoError(t, err)
	require.Equal(t, "gst.pdf", doc.Name)
}

func TestService_DocumentPreview_CacheBusts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)

	ctx, _ := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	clients.EXPECT().Client(ctx, clientID).Return(entity.Client{
		ID: clientID,
		Documents: map[string]entity.DocumentValue{
			"pan_card": {URL: "https://cdn.example.com/docs/pan.pdf"},
		},
	}, nil)

	s := service.New(clients, nil, nil, nil, nil, nil, nil, nil, notificationsCfg)

	url, err := s.DocumentPreview(ctx, clientID, "pan_card")
	require.NoError(t, err)
	require.Contains(t, url, "https://cdn.example.com/docs/pan.pdf?t=")
}

func TestService_NotificationFeed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)
	prefs := mocks.NewMockPrefs(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	ctx, user := adminCtx()

	now := time.Now()
	fresh := entity.Client{
		ID:           uuid.Must(uuid.NewV4()),
		BusinessName: "Sharma Traders",
		CreatedAt:    now.Add(-time.Minute),
		UpdatedAt:    now.Add(-time.Minute),
	}
	stale := entity.Client{
		ID:           uuid.Must(uuid.NewV4()),
		BusinessName: "Patel Textiles",
		CreatedAt:    now.Add(-48 * time.Hour),
		UpdatedAt:    now.Add(-48 * time.Hour),
	}

	clients.EXPECT().ListClients(ctx).Return([]entity.Client{fresh, stale}, nil)
	prefs.EXPECT().GetPref(ctx, notification.LastVisitKey(user.Role, user.ID)).
		Return(now.Add(-time.Hour), true, nil)
	prefs.EXPECT().GetPref(ctx, notification.ClearKey(user.Role, user.ID)).
		Return(time.Time{}, false, nil)
	prefs.EXPECT().GetPref(ctx, notification.HiddenKey(entity.NotificationNewClient, fresh.ID, user.Role, user.ID)).
		Return(time.Time{}, false, nil)
	repo.EXPECT().NotificationsForUser(ctx, user.ID).Return(nil, nil)

	s := service.New(clients, nil, nil, nil, prefs, notification.NewStores(repo), nil, nil, notificationsCfg)

	feed, snap, err := s.NotificationFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed.New, 1)
	require.Equal(t, fresh.ID, feed.New[0].ClientID)
	require.Empty(t, feed.Updated)
	require.Zero(t, snap.Unread)
}

func TestService_PanelOpened_AdvancesWatermark(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	prefs := mocks.NewMockPrefs(ctrl)
	repo := mocks.NewMockRepository(ctrl)

	ctx, user := adminCtx()

	repo.EXPECT().NotificationsForUser(ctx, user.ID).Return(nil, nil)
	repo.EXPECT().MarkAllNotificationsRead(ctx, user.ID).Return(nil)
	prefs.EXPECT().SetPref(ctx, notification.LastVisitKey(user.Role, user.ID), gomock.Any()).Return(nil)
	prefs.EXPECT().SetPref(ctx, notification.ClearKey(user.Role, user.ID), gomock.Any()).Return(nil)

	s := service.New(nil, nil, nil, nil, prefs, notification.NewStores(repo), nil, nil, notificationsCfg)

	require.NoError(t, s.PanelOpened(ctx))
}

func TestService_HideClientNotification(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	prefs := mocks.NewMockPrefs(ctrl)

	ctx, user := adminCtx()
	clientID := uuid.Must(uuid.NewV4())

	prefs.EXPECT().SetPref(ctx, notification.HiddenKey(entity.NotificationUpdatedClient, clientID, user.Role, user.ID), gomock.Any()).
		Return(nil)

	s := service.New(nil, nil, nil, nil, prefs, nil, nil, nil, notificationsCfg)

	require.NoError(t, s.HideClientNotification(ctx, entity.NotificationUpdatedClient, clientID))
	require.ErrorIs(t, s.HideClientNotification(ctx, "bogus", clientID), entity.ErrInvalidInput)
}

func TestService_DeleteClient_RequiresAdmin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleEmployee}
	ctx := entity.SetUserToContext(context.Background(), user)

	s := service.New(clients, nil, nil, nil, nil, nil, nil, nil, notificationsCfg)

	err := s.DeleteClient(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_ApproveUser_SendsMail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	clients := mocks.NewMockClients(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	ctx, _ := adminCtx()
	id := uuid.Must(uuid.NewV4())

	clients.EXPECT().ApproveUser(ctx, id).Return(nil)
	mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), []string{"owner@example.com"}, "text/plain").
		Return(nil)

	s := service.New(clients, nil, nil, nil, nil, nil, nil, mailer, notificationsCfg)

	outcome, err := s.ApproveUser(ctx, id, "owner@example.com")
	require.NoError(t, err)
	require.Equal(t, entity.DeliveryEmailSent, outcome)
}
