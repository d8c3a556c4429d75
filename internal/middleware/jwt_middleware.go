package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const claimsKey = "auth_claims"

// Claims defines JWT payload structure
type Claims struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Revocations reports and records logged-out token ids.
type Revocations interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Auth issues and validates bearer tokens.
type Auth struct {
	secret      []byte
	ttl         time.Duration
	revocations Revocations
	now         func() time.Time
}

func NewAuth(secret string, ttl time.Duration, revocations Revocations) *Auth {
	return &Auth{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
		now:         time.Now,
	}
}

// GenerateToken creates a signed token for the given user
func (a *Auth) GenerateToken(userID, username string) (string, error) {
	now := a.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "qkart-api",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}

func (a *Auth) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": msg})
}

// JWTMiddleware returns an Echo middleware that validates the bearer token,
// rejects revoked tokens and sets the claims on the context.
func (a *Auth) JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return unauthorized(c, "Protected route, Oauth2 Bearer token not found")
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return unauthorized(c, "invalid authorization header")
			}
			claims, err := a.parse(parts[1])
			if err != nil {
				return unauthorized(c, err.Error())
			}
			if a.revocations != nil {
				revoked, err := a.revocations.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					slog.ErrorContext(c.Request().Context(), "revocation lookup failed", "error", err)
					return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Internal Server Error"})
				}
				if revoked {
					return unauthorized(c, "token has been revoked")
				}
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// Revoke denies claims' token until it would have expired.
func (a *Auth) Revoke(ctx context.Context, claims *Claims) error {
	if a.revocations == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	return a.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Sub(a.now()))
}

// Helper to extract claims
func GetClaims(c echo.Context) *Claims {
	v := c.Get(claimsKey)
	if v == nil {
		return nil
	}
	if cl, ok := v.(*Claims); ok {
		return cl
	}
	return nil
}
