package model

import "time"

type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never JSON-encode
	WalletMoney  int64     `json:"walletMoney"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginResponse is the body of a successful POST /auth/login.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// Profile is the body of GET /user/me.
type Profile struct {
	Username string `json:"username"`
	Balance  int64  `json:"balance"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
