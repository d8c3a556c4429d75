package midtrans

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// NewSnapClient returns a Snap client for env ("sandbox" or "production").
func NewSnapClient(serverKey, env string) (*snap.Client, error) {
	var environment midtrans.EnvironmentType
	switch env {
	case "", "sandbox":
		environment = midtrans.Sandbox
	case "production":
		environment = midtrans.Production
	default:
		return nil, fmt.Errorf("unknown midtrans environment %q", env)
	}

	var client snap.Client
	client.New(serverKey, environment)
	return &client, nil
}

// Signature computes the notification signature_key Midtrans sends:
// SHA512(order_id + status_code + gross_amount + server_key).
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	hash := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(hash[:])
}

func VerifySignature(
	orderID string,
	statusCode string,
	grossAmount string,
	signature string,
	serverKey string,
) bool {
	expected := Signature(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
