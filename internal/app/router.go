package app

import (
	"net/http"

	"pos/internal/handler"
	"pos/internal/middleware"
	"pos/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// Router builds the HTTP surface. Every request that touches the stores is
// serialized; the websocket upgrade returns immediately so it holds the lock only briefly.
func (a *App) Router() *gin.Engine {
	if a.Config.GinMode != "" {
		gin.SetMode(a.Config.GinMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(a.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = a.Config.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := router.Group("")
	api.Use(middleware.Serialize())

	api.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(a.Hub, c, func(token string) (string, error) {
			u, err := a.Auth.Verify(token)
			if err != nil {
				return "", err
			}
			return u.SessionID.String(), nil
		})
	})

	for _, h := range []routeRegistrar{
		handler.NewAuthHandler(a.Session, a.Auth),
		handler.NewRoleHandler(a.Roles, a.Auth),
		handler.NewInventoryHandler(a.Catalog, a.Auth),
		handler.NewCartHandler(a.Cart, a.Catalog, a.Checkout, a.Auth),
		handler.NewTransactionHandler(a.Checkout, a.Ledger, a.Receipts, a.Auth),
		handler.NewStatisticsHandler(a.Reports, a.Export, a.Auth),
		handler.NewSettingsHandler(a.Settings, a.Backup, a.Checkout.TaxRate(), a.Auth),
		handler.NewAuditHandler(a.Audit, a.Auth),
	} {
		h.RegisterRoutes(api)
	}
	return router
}
