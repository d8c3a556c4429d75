package services

import (
	"context"
	"testing"

	mt "github.com/manohar12-max/Qkart-Ecommerce-Application/external/midtrans"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testServerKey = "SB-Mid-server-test"

type mockSnap struct {
	mock.Mock
}

func (m *mockSnap) CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*snap.Response)
	snapErr, _ := args.Get(1).(*midtrans.Error)
	return resp, snapErr
}

func notification(topUpID, status, gross string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           topUpID,
		"status_code":        "200",
		"gross_amount":       gross,
		"transaction_status": status,
		"transaction_id":     "trx-1",
		"signature_key":      mt.Signature(topUpID, "200", gross, testServerKey),
	}
}

func TestPaymentService_TopUpFlow(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	u, err := NewAuthService(store.Users(), 100).Register(ctx, "crio.do", "learnbydoing")
	require.NoError(t, err)

	snapClient := new(mockSnap)
	snapClient.On("CreateTransaction", mock.MatchedBy(func(r *snap.Request) bool {
		return r.TransactionDetails.GrossAmt == 250 && r.CustomerDetail.FName == "crio.do"
	})).Return(&snap.Response{Token: "tok", RedirectURL: "https://pay.example/tok"}, nil)

	svc := NewPaymentService(store.Payments(), store.Users(), snapClient, testServerKey, nil)

	resp, err := svc.CreateTopUp(ctx, u.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/tok", resp.RedirectURL)
	snapClient.AssertExpectations(t)

	bad := notification(resp.TopUpID, "settlement", "250.00")
	bad["signature_key"] = "forged"
	assert.ErrorIs(t, svc.HandleNotification(ctx, bad), ErrInvalidSignature)

	assert.ErrorIs(t, svc.HandleNotification(ctx, notification(resp.TopUpID, "settlement", "999.00")), ErrAmountMismatch)

	require.NoError(t, svc.HandleNotification(ctx, notification(resp.TopUpID, "pending", "250.00")))
	require.NoError(t, svc.HandleNotification(ctx, notification(resp.TopUpID, "settlement", "250.00")))
	require.NoError(t, svc.HandleNotification(ctx, notification(resp.TopUpID, "settlement", "250.00")))

	me, err := NewUserService(store.Users()).Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(350), me.Balance, "settlement credits exactly once")

	topUp, err := store.Payments().GetByID(ctx, resp.TopUpID)
	require.NoError(t, err)
	assert.Equal(t, model.TopUpPaid, topUp.Status)
	assert.Equal(t, "trx-1", topUp.ProviderRef)
}

func TestPaymentService_ExpireFailsTopUp(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	u, err := NewAuthService(store.Users(), 0).Register(ctx, "crio.do", "learnbydoing")
	require.NoError(t, err)

	snapClient := new(mockSnap)
	snapClient.On("CreateTransaction", mock.Anything).Return(&snap.Response{Token: "tok"}, nil)
	svc := NewPaymentService(store.Payments(), store.Users(), snapClient, testServerKey, nil)

	resp, err := svc.CreateTopUp(ctx, u.ID, 40)
	require.NoError(t, err)
	require.NoError(t, svc.HandleNotification(ctx, notification(resp.TopUpID, "expire", "40.00")))

	topUp, err := store.Payments().GetByID(ctx, resp.TopUpID)
	require.NoError(t, err)
	assert.Equal(t, model.TopUpFailed, topUp.Status)
}

func TestPaymentService_Rejections(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	disabled := NewPaymentService(store.Payments(), store.Users(), nil, "", nil)
	_, err := disabled.CreateTopUp(ctx, "u", 10)
	assert.ErrorIs(t, err, ErrPaymentsDisabled)

	svc := NewPaymentService(store.Payments(), store.Users(), new(mockSnap), testServerKey, nil)
	_, err = svc.CreateTopUp(ctx, "u", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreateTopUp(ctx, "missing-user", 10)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.HandleNotification(ctx, map[string]interface{}{}), ErrMissingTopUpRef)
	assert.ErrorIs(t, svc.HandleNotification(ctx, notification("TOPUP-unknown", "settlement", "1.00")), ErrTopUpNotFound)
}

func TestPaymentService_SnapError(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	u, err := NewAuthService(store.Users(), 0).Register(ctx, "crio.do", "learnbydoing")
	require.NoError(t, err)

	snapClient := new(mockSnap)
	snapClient.On("CreateTransaction", mock.Anything).Return(nil, &midtrans.Error{Message: "unauthorized", StatusCode: 401})
	svc := NewPaymentService(store.Payments(), store.Users(), snapClient, testServerKey, nil)

	_, err = svc.CreateTopUp(ctx, u.ID, 10)
	assert.Error(t, err)
}
