package dto

import (
	"fmt"

	"github.com/google/uuid"

	"hostal/internal/domains/payment/model"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type InitPaymentRequest struct {
	SubscriptionID string  `json:"subscription_id" validate:"required,uuid"`
	Amount         float64 `json:"amount"          validate:"required,min=1"`
}

func (c *InitPaymentRequest) ToModel(user string) model.Transaction {
	id := uuid.NewString()
	now := timezone.Now()

	return model.Transaction{
		ID:             id,
		SubscriptionID: c.SubscriptionID,
		BuyOrder:       fmt.Sprintf("sub-%d-%s", now.Unix(), id[:8]),
		SessionID:      uuid.NewString(),
		Amount:         c.Amount,
		Status:         model.StatusInitiated,
		Metadata:       gModel.NewMetadata(now, user),
	}
}

type InitPaymentResponse struct {
	TransactionID string  `json:"transaction_id"`
	BuyOrder      string  `json:"buy_order"`
	Token         string  `json:"token"`
	RedirectURL   string  `json:"redirect_url"`
	Amount        float64 `json:"amount"`
}

type CommitPaymentRequest struct {
	Token string `json:"token" validate:"required,max=100"`
}

type TransactionResponse struct {
	ID                string  `json:"id"`
	SubscriptionID    string  `json:"subscription_id"`
	BuyOrder          string  `json:"buy_order"`
	SessionID         string  `json:"session_id"`
	Amount            float64 `json:"amount"`
	Token             string  `json:"token,omitempty"`
	Status            string  `json:"status"`
	AuthorizationCode string  `json:"authorization_code,omitempty"`
	ResponseCode      *int    `json:"response_code,omitempty"`
	gDto.Metadata
}

func (r *TransactionResponse) FromModel(mod model.Transaction) {
	r.ID = mod.ID
	r.SubscriptionID = mod.SubscriptionID
	r.BuyOrder = mod.BuyOrder
	r.SessionID = mod.SessionID
	r.Amount = mod.Amount

	if mod.Token != nil {
		r.Token = *mod.Token
	}

	r.Status = mod.Status

	if mod.AuthorizationCode != nil {
		r.AuthorizationCode = *mod.AuthorizationCode
	}

	r.ResponseCode = mod.ResponseCode
	r.Metadata.FromModel(mod.Metadata)
}
