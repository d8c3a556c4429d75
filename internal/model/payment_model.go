package model

import "time"

const (
	TopUpPending = "Pending"
	TopUpPaid    = "Paid"
	TopUpFailed  = "Failed"
)

// WalletTopUp tracks one Midtrans Snap transaction that credits a wallet.
type WalletTopUp struct {
	ID              string     `json:"topupId"`
	UserID          string     `json:"-"`
	Amount          int64      `json:"amount"`
	Status          string     `json:"status"`
	Provider        string     `json:"provider"`
	ProviderRef     string     `json:"provider_ref"`
	ProviderPayload []byte     `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

// TopUpResponse is returned by POST /wallet/topup.
type TopUpResponse struct {
	TopUpID     string `json:"topupId"`
	RedirectURL string `json:"redirect_url"`
}
