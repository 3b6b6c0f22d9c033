package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"snaplink-be/internal/controllers"
	"snaplink-be/internal/middleware"
	"snaplink-be/internal/models"
	"snaplink-be/internal/service"
)

// Dependencies are the services the HTTP layer is built from.
type Dependencies struct {
	AuthService service.AuthService
	URLService  service.URLService
	BaseURL     string
	Logger      *slog.Logger
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	controllers.UseWireFieldNames()

	shortenerController := controllers.NewShortenerController(deps.URLService, deps.Logger)
	authController := controllers.NewAuthController(deps.AuthService, deps.Logger)
	qrcodeController := controllers.NewQRCodeController(deps.URLService, deps.BaseURL, deps.Logger)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
	})

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.Health)

	router.POST("/register", authController.Register)
	router.POST("/token", authController.Login)

	// Protected routes - require a bearer token
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthService, deps.Logger))
	{
		protected.POST("/shorten", shortenerController.CreateShortURL)
		protected.GET("/urls", shortenerController.GetUserURLs)
		protected.GET("/urls/:shortKey", shortenerController.GetURLStats)
	}

	router.GET("/qrcode/:shortKey", qrcodeController.GenerateQRCode)

	// Redirect endpoint, registered last so named routes take precedence
	router.GET("/:shortKey", shortenerController.RedirectToURL)

	return router
}
