package model

import (
	"hostal/shared/model"
)

const (
	TableName  = "payment_transactions"
	EntityName = "payment_transaction"

	FieldID                = "id"
	FieldSubscriptionID    = "subscription_id"
	FieldBuyOrder          = "buy_order"
	FieldSessionID         = "session_id"
	FieldAmount            = "amount"
	FieldToken             = "token"
	FieldStatus            = "status"
	FieldAuthorizationCode = "authorization_code"
	FieldResponseCode      = "response_code"
)

const (
	StatusInitiated  = "initiated"
	StatusAuthorized = "authorized"
	StatusFailed     = "failed"
	StatusReversed   = "reversed"
)

type Transaction struct {
	ID                string  `db:"id"`
	SubscriptionID    string  `db:"subscription_id"`
	BuyOrder          string  `db:"buy_order"`
	SessionID         string  `db:"session_id"`
	Amount            float64 `db:"amount"`
	Token             *string `db:"token"`
	Status            string  `db:"status"`
	AuthorizationCode *string `db:"authorization_code"`
	ResponseCode      *int    `db:"response_code"`
	model.Metadata
}
