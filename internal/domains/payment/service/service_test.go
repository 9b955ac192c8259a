package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	kafkaMocks "hostal/infras/kafka/mocks"
	"hostal/infras/otel/mocks"
	"hostal/infras/webpay"
	webpayMocks "hostal/infras/webpay/mocks"
	paymentMocks "hostal/internal/domains/payment/mocks"
	"hostal/internal/domains/payment/model"
	"hostal/internal/domains/payment/model/dto"
	"hostal/internal/domains/payment/service"
	subscriptionDto "hostal/internal/domains/subscription/model/dto"
	subscriptionMocks "hostal/internal/domains/subscription/service/mocks"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
)

type paymentFixture struct {
	svc              service.Payment
	mockRepo         *paymentMocks.MockPayment
	mockSubscription *subscriptionMocks.MockSubscription
	mockGateway      *webpayMocks.MockGateway
	mockPublisher    *kafkaMocks.MockPublisher
}

func newPaymentFixture(t *testing.T) paymentFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := paymentFixture{
		mockRepo:         paymentMocks.NewMockPayment(ctrl),
		mockSubscription: subscriptionMocks.NewMockSubscription(ctrl),
		mockGateway:      webpayMocks.NewMockGateway(ctrl),
		mockPublisher:    kafkaMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.External.Webpay.ReturnURL = "https://app.example.com/payments/return"

	f.svc = service.New(f.mockRepo, f.mockSubscription, f.mockGateway, f.mockPublisher, cfg, mocks.NewOtel())

	return f
}

func paymentCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func initiatedTransaction() model.Transaction {
	token := "gateway-token-123"

	return model.Transaction{
		ID:             "transaction-id-123",
		SubscriptionID: "subscription-id-123",
		BuyOrder:       "sub-1700000000-abcd1234",
		SessionID:      "session-id-123",
		Amount:         19990,
		Token:          &token,
		Status:         model.StatusInitiated,
	}
}

func TestPaymentService_Init(t *testing.T) {
	req := dto.InitPaymentRequest{
		SubscriptionID: "subscription-id-123",
		Amount:         19990,
	}

	t.Run("success stores the gateway token", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockSubscription.EXPECT().Get(gomock.Any(), "subscription-id-123").Return(subscriptionDto.SubscriptionResponse{ID: "subscription-id-123"}, nil)
		f.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, transaction model.Transaction) error {
				assert.Equal(t, model.StatusInitiated, transaction.Status)
				assert.NotEmpty(t, transaction.BuyOrder)

				return nil
			})
		f.mockGateway.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req webpay.CreateRequest) (*webpay.CreateResponse, error) {
				assert.Equal(t, "https://app.example.com/payments/return", req.ReturnURL)
				assert.Equal(t, float64(19990), req.Amount)

				return &webpay.CreateResponse{Token: "gateway-token-123", URL: "https://webpay.example.com/init"}, nil
			})
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "gateway-token-123", fields[model.FieldToken])

				return nil
			})

		res, err := f.svc.Init(paymentCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, "gateway-token-123", res.Token)
		assert.Equal(t, "https://webpay.example.com/init", res.RedirectURL)
		assert.Equal(t, float64(19990), res.Amount)
	})

	t.Run("unknown subscription", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockSubscription.EXPECT().Get(gomock.Any(), "subscription-id-123").Return(subscriptionDto.SubscriptionResponse{}, errors.New("subscription not found"))

		_, err := f.svc.Init(paymentCtx(), req)

		assert.Error(t, err)
	})

	t.Run("gateway error", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockSubscription.EXPECT().Get(gomock.Any(), "subscription-id-123").Return(subscriptionDto.SubscriptionResponse{ID: "subscription-id-123"}, nil)
		f.mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.mockGateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway unavailable"))

		_, err := f.svc.Init(paymentCtx(), req)

		assert.Error(t, err)
	})
}

func TestPaymentService_Commit(t *testing.T) {
	req := dto.CommitPaymentRequest{Token: "gateway-token-123"}

	t.Run("approved payment activates the subscription", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockRepo.EXPECT().GetByToken(gomock.Any(), "gateway-token-123").Return(initiatedTransaction(), nil)
		f.mockGateway.EXPECT().
			Commit(gomock.Any(), "gateway-token-123").
			Return(&webpay.CommitResponse{
				ResponseCode:      webpay.ResponseCodeApproved,
				AuthorizationCode: "auth-456",
			}, nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusAuthorized, fields[model.FieldStatus])
				assert.Equal(t, "auth-456", fields[model.FieldAuthorizationCode])

				return nil
			})
		f.mockSubscription.EXPECT().Activate(gomock.Any(), "subscription-id-123").Return(nil)
		f.mockPublisher.EXPECT().
			Publish(gomock.Any(), constant.KafkaTopicPayment, gomock.Any()).
			Return(nil)

		res, err := f.svc.Commit(paymentCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusAuthorized, res.Status)
		assert.Equal(t, "auth-456", res.AuthorizationCode)
	})

	t.Run("rejected payment stays failed without activation", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockRepo.EXPECT().GetByToken(gomock.Any(), "gateway-token-123").Return(initiatedTransaction(), nil)
		f.mockGateway.EXPECT().
			Commit(gomock.Any(), "gateway-token-123").
			Return(&webpay.CommitResponse{ResponseCode: -1}, nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusFailed, fields[model.FieldStatus])

				return nil
			})

		res, err := f.svc.Commit(paymentCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusFailed, res.Status)
	})

	t.Run("already authorized token returns the stored result", func(t *testing.T) {
		f := newPaymentFixture(t)

		authorized := initiatedTransaction()
		authorized.Status = model.StatusAuthorized
		f.mockRepo.EXPECT().GetByToken(gomock.Any(), "gateway-token-123").Return(authorized, nil)

		res, err := f.svc.Commit(paymentCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusAuthorized, res.Status)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockRepo.EXPECT().GetByToken(gomock.Any(), "gateway-token-123").Return(model.Transaction{}, nil)

		_, err := f.svc.Commit(paymentCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "payment transaction not found")
	})

	t.Run("failed transaction is not retried", func(t *testing.T) {
		f := newPaymentFixture(t)

		failed := initiatedTransaction()
		failed.Status = model.StatusFailed
		f.mockRepo.EXPECT().GetByToken(gomock.Any(), "gateway-token-123").Return(failed, nil)

		_, err := f.svc.Commit(paymentCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "payment transaction is not awaiting confirmation")
	})
}

func TestPaymentService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(initiatedTransaction(), nil)

		res, err := f.svc.Get(paymentCtx(), "transaction-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "transaction-id-123", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Transaction{}, nil)

		_, err := f.svc.Get(paymentCtx(), "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "payment transaction not found")
	})
}
