package main

import (
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

type upsertCartRequest struct {
	ProductID string `json:"productId"`
	Qty       *int   `json:"qty"`
}

type checkoutRequest struct {
	AddressID string `json:"addressId"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService, auth *middleware.Auth) {
	p := g.Group("/cart")
	p.Use(auth.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		lines, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, lines)
	})

	// POST /cart sets the quantity of one product; qty 0 removes it.
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(upsertCartRequest)
		if err := c.Bind(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}
		if req.Qty == nil {
			return errorJSON(c, http.StatusBadRequest, "qty is required")
		}
		lines, err := cs.Upsert(c.Request().Context(), claims.UserID, req.ProductID, *req.Qty)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, lines)
	})

	p.POST("/checkout", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}
		order, balance, err := cs.Checkout(c.Request().Context(), claims.UserID, req.AddressID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, model.CheckoutResponse{
			Success: true,
			OrderID: order.ID,
			Balance: &balance,
		})
	})
}
