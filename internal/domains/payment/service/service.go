package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/kafka"
	"hostal/infras/otel"
	"hostal/infras/webpay"
	"hostal/internal/domains/payment/model"
	"hostal/internal/domains/payment/model/dto"
	"hostal/internal/domains/payment/repository"
	subscriptionService "hostal/internal/domains/subscription/service"
	"hostal/shared"
	"hostal/shared/constant"
	"hostal/shared/failure"
)

type Payment interface {
	Init(ctx context.Context, req dto.InitPaymentRequest) (dto.InitPaymentResponse, error)
	Commit(ctx context.Context, req dto.CommitPaymentRequest) (dto.TransactionResponse, error)
	Get(ctx context.Context, id string) (dto.TransactionResponse, error)
}

type serviceImpl struct {
	repo         repository.Payment
	subscription subscriptionService.Subscription
	gateway      webpay.Gateway
	publisher    kafka.Publisher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Payment,
	subscription subscriptionService.Subscription,
	gateway webpay.Gateway,
	publisher kafka.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:         repo,
		subscription: subscription,
		gateway:      gateway,
		publisher:    publisher,
		cfg:          cfg,
		otel:         otel,
	}
}

// Init opens a hosted-payment transaction for a subscription charge and stores the
// gateway token so the callback can be correlated later.
func (s *serviceImpl) Init(ctx context.Context, req dto.InitPaymentRequest) (res dto.InitPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Init")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.subscription.Get(ctx, req.SubscriptionID); err != nil {
		return res, err
	}

	transaction := req.ToModel(user)

	if err = s.repo.Insert(ctx, transaction); err != nil {
		log.Error().Err(err).Msg("failed to create payment transaction")

		return res, fmt.Errorf("failed to create payment transaction: %w", err)
	}

	gatewayRes, err := s.gateway.Create(ctx, webpay.CreateRequest{
		BuyOrder:  transaction.BuyOrder,
		SessionID: transaction.SessionID,
		Amount:    transaction.Amount,
		ReturnURL: s.cfg.External.Webpay.ReturnURL,
	})
	if err != nil {
		log.Error().Err(err).Str("buyOrder", transaction.BuyOrder).Msg("failed to create gateway transaction")

		return res, fmt.Errorf("failed to create gateway transaction: %w", err)
	}

	fields := map[string]any{
		model.FieldToken:         gatewayRes.Token,
		constant.FieldModifiedBy: user,
	}

	filter := shared.FilterByID(transaction.ID, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to store gateway token")

		return res, fmt.Errorf("failed to store gateway token: %w", err)
	}

	res = dto.InitPaymentResponse{
		TransactionID: transaction.ID,
		BuyOrder:      transaction.BuyOrder,
		Token:         gatewayRes.Token,
		RedirectURL:   gatewayRes.URL,
		Amount:        transaction.Amount,
	}

	return res, nil
}

// Commit confirms a transaction when the gateway posts the token back. An already
// authorized token returns the stored result, so gateway retries are harmless.
func (s *serviceImpl) Commit(ctx context.Context, req dto.CommitPaymentRequest) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Commit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transaction, err := s.repo.GetByToken(ctx, req.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment transaction")

		return res, fmt.Errorf("failed to get payment transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("payment transaction not found") // nolint:wrapcheck
	}

	if transaction.Status == model.StatusAuthorized {
		log.Info().Str("buyOrder", transaction.BuyOrder).Msg("transaction already authorized, returning stored result")

		res.FromModel(transaction)

		return res, nil
	}

	if transaction.Status != model.StatusInitiated {
		return res, failure.Conflict("payment transaction is not awaiting confirmation") // nolint:wrapcheck
	}

	gatewayRes, err := s.gateway.Commit(ctx, req.Token)
	if err != nil {
		log.Error().Err(err).Str("buyOrder", transaction.BuyOrder).Msg("failed to commit gateway transaction")

		return res, fmt.Errorf("failed to commit gateway transaction: %w", err)
	}

	status := model.StatusFailed
	if gatewayRes.ResponseCode == webpay.ResponseCodeApproved {
		status = model.StatusAuthorized
	}

	fields := map[string]any{
		model.FieldStatus:            status,
		model.FieldResponseCode:      gatewayRes.ResponseCode,
		model.FieldAuthorizationCode: gatewayRes.AuthorizationCode,
		constant.FieldModifiedBy:     user,
	}

	filter := shared.FilterByID(transaction.ID, model.FieldID, model.TableName)
	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment transaction")

		return res, fmt.Errorf("failed to update payment transaction: %w", err)
	}

	transaction.Status = status
	transaction.ResponseCode = &gatewayRes.ResponseCode
	transaction.AuthorizationCode = &gatewayRes.AuthorizationCode

	if status == model.StatusAuthorized {
		if err = s.subscription.Activate(ctx, transaction.SubscriptionID); err != nil {
			log.Error().Err(err).Str("subscriptionID", transaction.SubscriptionID).Msg("failed to activate subscription after payment")

			return res, err
		}

		s.publishPaymentConfirmed(ctx, transaction)
	}

	res.FromModel(transaction)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	transaction, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment transaction")

		return res, fmt.Errorf("failed to get payment transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("payment transaction not found") // nolint:wrapcheck
	}

	res.FromModel(transaction)

	return res, nil
}

func (s *serviceImpl) publishPaymentConfirmed(ctx context.Context, transaction model.Transaction) {
	message := kafka.Message{
		Key: transaction.ID,
		Value: map[string]any{
			"transaction_id":  transaction.ID,
			"subscription_id": transaction.SubscriptionID,
			"buy_order":       transaction.BuyOrder,
			"amount":          transaction.Amount,
		},
	}

	if err := s.publisher.Publish(ctx, constant.KafkaTopicPayment, message); err != nil {
		log.Error().Err(err).Str("transactionID", transaction.ID).Msg("failed to publish payment confirmed event")
	}
}
