package main

import (
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

type addAddressRequest struct {
	Address string `json:"address"`
}

// registerUserRoutes mounts the caller's profile and address book.
// Address mutations answer with the full updated list.
func registerUserRoutes(g *echo.Group, us *services.UserService, as *services.AddressService, auth *middleware.Auth) {
	u := g.Group("/user")
	u.Use(auth.JWTMiddleware())

	u.GET("/me", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		profile, err := us.Me(c.Request().Context(), claims.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, profile)
	})

	u.GET("/addresses", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		list, err := as.List(c.Request().Context(), claims.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	u.POST("/addresses", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addAddressRequest)
		if err := c.Bind(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}
		list, err := as.Add(c.Request().Context(), claims.UserID, req.Address)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	u.DELETE("/addresses/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		list, err := as.Delete(c.Request().Context(), claims.UserID, c.Param("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})
}
