package main

import (
	"net/http"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"

	"github.com/labstack/echo/v4"
)

// registerProductRoutes mounts the public catalog endpoints:
//
//	GET /products               -> list
//	GET /products/search?value= -> name/category search, 404 when nothing matches
//	GET /products/categories    -> distinct categories
//	GET /products/:id           -> get
func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	p := g.Group("/products")

	p.GET("", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/search", func(c echo.Context) error {
		list, err := ps.Search(c.Request().Context(), c.QueryParam("value"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/categories", func(c echo.Context) error {
		cats, err := ps.Categories(c.Request().Context())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, cats)
	})

	p.GET("/:id", func(c echo.Context) error {
		prod, err := ps.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, prod)
	})
}
