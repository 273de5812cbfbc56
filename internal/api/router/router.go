package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/mystay/email-service/internal/api/handlers/mail"
	"github.com/mystay/email-service/internal/middlewares"
)

func New(handler *mail.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/mail")
	{
		api.POST("/transaction", handler.SendTransaction)
		api.POST("/host", handler.SendHost)
	}

	e.GET("/api/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
