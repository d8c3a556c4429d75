package main

import (
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(credentialsRequest)
		if err := c.Bind(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}
		if _, err := authSvc.Register(c.Request().Context(), req.Username, req.Password); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true})
	}
}

func loginHandler(authSvc *services.AuthService, auth *middleware.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(credentialsRequest)
		if err := c.Bind(req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}

		user, err := authSvc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return serviceError(c, err)
		}

		token, err := auth.GenerateToken(user.ID, user.Username)
		if err != nil {
			return serviceError(c, err)
		}

		return c.JSON(http.StatusOK, model.LoginResponse{
			Success:  true,
			Token:    token,
			Username: user.Username,
			Balance:  user.WalletMoney,
		})
	}
}

// logoutHandler revokes the presented token for the rest of its lifetime.
func logoutHandler(auth *middleware.Auth) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := auth.Revoke(c.Request().Context(), middleware.GetClaims(c)); err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, auth *middleware.Auth) {
	a := g.Group("/auth")

	a.POST("/register", registerHandler(authSvc))
	a.POST("/login", loginHandler(authSvc, auth))
	a.POST("/logout", logoutHandler(auth), auth.JWTMiddleware())
}
