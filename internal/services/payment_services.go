package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	mt "github.com/manohar12-max/Qkart-Ecommerce-Application/external/midtrans"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// SnapClient is the subset of *snap.Client used to open a payment page.
type SnapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type PaymentService struct {
	TopUps    TopUpRepo
	Users     UserRepo
	Snap      SnapClient
	ServerKey string
	Logger    *slog.Logger
}

func NewPaymentService(tr TopUpRepo, ur UserRepo, snapClient SnapClient, serverKey string, logger *slog.Logger) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{
		TopUps:    tr,
		Users:     ur,
		Snap:      snapClient,
		ServerKey: serverKey,
		Logger:    logger,
	}
}

// CreateTopUp opens a Snap transaction for amount and records it as
// pending. The wallet is credited when Midtrans notifies settlement.
func (s *PaymentService) CreateTopUp(ctx context.Context, userID string, amount int64) (*model.TopUpResponse, error) {
	if s.Snap == nil {
		return nil, ErrPaymentsDisabled
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	topUpID := "TOPUP-" + uuid.NewString()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  topUpID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: u.Username,
		},
	}

	resp, snapErr := s.Snap.CreateTransaction(req)
	if snapErr != nil {
		return nil, fmt.Errorf("create snap transaction: %w", snapErr)
	}

	payload, _ := json.Marshal(resp)
	err = s.TopUps.CreatePending(ctx, &model.WalletTopUp{
		ID:              topUpID,
		UserID:          userID,
		Amount:          amount,
		Provider:        "midtrans",
		ProviderRef:     resp.Token,
		ProviderPayload: payload,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return &model.TopUpResponse{TopUpID: topUpID, RedirectURL: resp.RedirectURL}, nil
}

// HandleNotification applies a Midtrans HTTP notification. Settlement (or
// an accepted capture) credits the wallet once; expire, cancel and deny
// fail the top-up. Other statuses are ignored.
func (s *PaymentService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	topUpID, _ := payload["order_id"].(string)
	if topUpID == "" {
		return ErrMissingTopUpRef
	}

	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signature, _ := payload["signature_key"].(string)
	if !mt.VerifySignature(topUpID, statusCode, grossAmount, signature, s.ServerKey) {
		return ErrInvalidSignature
	}

	topUp, err := s.TopUps.GetByID(ctx, topUpID)
	if errors.Is(err, repository.ErrTopUpNotFound) {
		return ErrTopUpNotFound
	}
	if err != nil {
		return err
	}
	if topUp.Status != model.TopUpPending {
		// already processed
		return nil
	}

	gross, err := strconv.ParseFloat(grossAmount, 64)
	if err != nil || int64(gross) != topUp.Amount {
		return ErrAmountMismatch
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	transactionStatus, _ := payload["transaction_status"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)

	switch transactionStatus {
	case "settlement":
		return s.credit(ctx, topUp, payload, raw)
	case "capture":
		if fraudStatus == "accept" {
			return s.credit(ctx, topUp, payload, raw)
		}
	case "expire", "cancel", "deny":
		return s.TopUps.MarkFailed(ctx, topUp.ID, raw)
	}
	return nil
}

func (s *PaymentService) credit(ctx context.Context, topUp *model.WalletTopUp, payload map[string]interface{}, raw []byte) error {
	providerRef, _ := payload["transaction_id"].(string)
	credited, balance, err := s.TopUps.MarkPaid(ctx, topUp.ID, providerRef, raw)
	if err != nil {
		return fmt.Errorf("mark top-up paid: %w", err)
	}
	if credited {
		s.Logger.InfoContext(ctx, "wallet credited",
			"topup_id", topUp.ID,
			"amount", topUp.Amount,
			"balance", balance,
		)
	}
	return nil
}
