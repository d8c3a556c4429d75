package main

import (
	"log/slog"
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

type topUpRequest struct {
	Amount int64 `json:"amount"`
}

func registerWalletRoutes(g *echo.Group, ps *services.PaymentService, auth *middleware.Auth) {
	w := g.Group("/wallet")

	// Midtrans notification. Public, and always 200: Midtrans retries
	// anything else.
	w.POST("/notification", func(c echo.Context) error {
		var payload map[string]interface{}
		if err := c.Bind(&payload); err != nil {
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": "invalid payload",
			})
		}

		if err := ps.HandleNotification(c.Request().Context(), payload); err != nil {
			slog.WarnContext(c.Request().Context(), "midtrans notification ignored",
				"order_id", payload["order_id"],
				"error", err,
			)
			return c.JSON(http.StatusOK, echo.Map{
				"status": "ignored",
				"reason": err.Error(),
			})
		}

		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	w.POST("/topup", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(topUpRequest)
		if err := c.Bind(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}
		resp, err := ps.CreateTopUp(c.Request().Context(), claims.UserID, req.Amount)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}, auth.JWTMiddleware())
}
