package router

import (
	"log/slog"
	"path/filepath"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bandstand/bandstand/internal/config"
	"github.com/bandstand/bandstand/internal/server/http/handlers"
	"github.com/bandstand/bandstand/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SiteFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	showHandler := handlers.NewShowHandler(facade)
	mediaHandler := handlers.NewMediaHandler(facade)
	messageHandler := handlers.NewMessageHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, facade)
	imageHandler := handlers.NewImageHandler(facade)

	engine.Static("/uploads", cfg.UploadDir)
	engine.Static("/static", cfg.StaticDir)

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/products", productHandler.List)
	api.GET("/shows", showHandler.List)
	api.GET("/media", mediaHandler.List)
	api.POST("/contact", messageHandler.Submit)

	api.GET("/cart", cartHandler.Get)
	api.DELETE("/cart", cartHandler.Clear)
	api.POST("/cart/items", cartHandler.Add)
	api.PUT("/cart/items", cartHandler.Update)
	api.DELETE("/cart/items", cartHandler.Remove)

	api.POST("/orders", orderHandler.Checkout)
	api.GET("/orders", orderHandler.Lookup)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/products", productHandler.AdminList)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products", productHandler.Update)
	admin.DELETE("/products", productHandler.Delete)

	admin.GET("/shows", showHandler.List)
	admin.POST("/shows", showHandler.Create)
	admin.PUT("/shows", showHandler.Update)
	admin.DELETE("/shows", showHandler.Delete)

	admin.GET("/media", mediaHandler.List)
	admin.POST("/media", mediaHandler.Create)
	admin.PUT("/media", mediaHandler.Update)
	admin.DELETE("/media", mediaHandler.Delete)

	admin.GET("/contact", messageHandler.List)
	admin.PUT("/contact", messageHandler.UpdateStatus)
	admin.DELETE("/contact", messageHandler.Delete)

	admin.GET("/orders", orderHandler.AdminList)
	admin.PUT("/orders", orderHandler.UpdateStatus)

	admin.GET("/images/list", imageHandler.List)
	admin.POST("/images/upload", imageHandler.Upload)
	admin.PUT("/images/rename", imageHandler.Rename)
	admin.DELETE("/images/delete", imageHandler.Delete)

	loginPage := filepath.Join(cfg.StaticDir, "admin", "login.html")
	dashboardPage := filepath.Join(cfg.StaticDir, "admin", "dashboard.html")
	engine.GET("/admin/login", func(c *gin.Context) {
		c.File(loginPage)
	})
	dashboard := engine.Group("/admin/dashboard")
	dashboard.Use(middleware.DashboardGuard(facade))
	dashboard.GET("", func(c *gin.Context) {
		c.File(dashboardPage)
	})

	return engine
}
