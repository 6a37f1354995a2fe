package impl

import (
	"context"
	"fmt"
	"testing"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"
	mockRepo "lifeline/internal/mocks/repository"
	mockSvc "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryFixture struct {
	service         usecase.AlertDeliveryUsecase
	profileRepo     *mockRepo.MockProfileRepository
	alertRepo       *mockRepo.MockAlertRepository
	notificationSvc *mockSvc.MockNotificationService
}

func newTestDeliveryService(t *testing.T) *deliveryFixture {
	fx := &deliveryFixture{
		profileRepo:     mockRepo.NewMockProfileRepository(t),
		alertRepo:       mockRepo.NewMockAlertRepository(t),
		notificationSvc: mockSvc.NewMockNotificationService(t),
	}
	fx.service = NewDeliveryService(DeliveryServiceParams{
		ProfileRepo:     fx.profileRepo,
		AlertRepo:       fx.alertRepo,
		NotificationSvc: fx.notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return fx
}

func sosEvent(recipients ...string) *service.SosEvent {
	return &service.SosEvent{
		AlertID:       "alert_me_1",
		RequesterID:   "me",
		RequesterName: "Dana",
		Latitude:      37.7749,
		Longitude:     -122.4194,
		Message:       "Chest pain",
		EmergencyType: "medical",
		RecipientIDs:  recipients,
	}
}

func TestDeliveryService_Deliver_SendsAndCleansUp(t *testing.T) {
	fx := newTestDeliveryService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindFCMTokens(ctx, []string{"U1", "U2", "U3"}).
		Return([]entity.DeviceToken{
			{UserID: "U1", Token: "tok-1"},
			{UserID: "U2", Token: "tok-2"},
			{UserID: "U3", Token: "tok-1"},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatch(ctx, []string{"tok-1", "tok-2"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Data["alert_id"] == "alert_me_1" &&
				msg.Data["type"] == "sos_alert" &&
				msg.Body == "Dana needs help: Chest pain"
		})).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-2"}}, nil)

	fx.profileRepo.EXPECT().ClearFCMToken(ctx, "U2").Return(nil)
	fx.alertRepo.EXPECT().UpdateDeliveryStats(ctx, "alert_me_1", 1, 1).Return(nil)

	report, err := fx.service.Deliver(ctx, sosEvent("U1", "U2", "U3"))
	require.NoError(t, err)
	assert.Equal(t, &usecase.DeliveryReport{Recipients: 3, Tokens: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, report)
}

func TestDeliveryService_Deliver_SplitsIntoBatches(t *testing.T) {
	fx := newTestDeliveryService(t)
	ctx := context.Background()

	recipients := make([]string, 0, 501)
	tokens := make([]entity.DeviceToken, 0, 501)
	for i := range 501 {
		uid := fmt.Sprintf("U%d", i)
		recipients = append(recipients, uid)
		tokens = append(tokens, entity.DeviceToken{UserID: uid, Token: "tok-" + uid})
	}

	fx.profileRepo.EXPECT().FindFCMTokens(ctx, recipients).Return(tokens, nil)
	fx.notificationSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(batch []string) bool { return len(batch) == 500 }), mock.Anything).
		Return(&service.BatchResult{SuccessCount: 500}, nil).Once()
	fx.notificationSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(batch []string) bool { return len(batch) == 1 }), mock.Anything).
		Return(nil, errors.New("quota exceeded")).Once()
	fx.alertRepo.EXPECT().UpdateDeliveryStats(ctx, "alert_me_1", 500, 1).Return(nil)

	report, err := fx.service.Deliver(ctx, sosEvent(recipients...))
	require.NoError(t, err)
	assert.Equal(t, 500, report.Sent)
	assert.Equal(t, 1, report.Failed)
}

func TestDeliveryService_Deliver_TokenLookupIsRetryable(t *testing.T) {
	fx := newTestDeliveryService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindFCMTokens(ctx, []string{"U1"}).Return(nil, errors.New("unavailable"))

	_, err := fx.service.Deliver(ctx, sosEvent("U1"))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryableError(err))
}

func TestDeliveryService_Deliver_NoDevices(t *testing.T) {
	fx := newTestDeliveryService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindFCMTokens(ctx, []string{"U1"}).Return(nil, nil)

	report, err := fx.service.Deliver(ctx, sosEvent("U1"))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Tokens)
}

func TestDeliveryService_Deliver_InvalidEvent(t *testing.T) {
	fx := newTestDeliveryService(t)

	_, err := fx.service.Deliver(context.Background(), &service.SosEvent{})
	require.Error(t, err)
	assert.False(t, usecase.IsRetryableError(err))
}
