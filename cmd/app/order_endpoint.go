package main

import (
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService, auth *middleware.Auth) {
	p := g.Group("/orders")
	p.Use(auth.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orders, err := os.History(c.Request().Context(), claims.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, orders)
	})
}
