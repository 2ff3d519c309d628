package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"bluetech-store/config"
	"bluetech-store/constants"
	"bluetech-store/controllers"
	"bluetech-store/infra"
	"bluetech-store/middlewares"
	"bluetech-store/repositories"
	"bluetech-store/services"
)

func setupRouter(db *mongo.Database, cfg *config.Config) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	productRepository := repositories.NewProductRepository(db)

	authService := services.NewAuthService(userRepository, cfg.SecretKey)
	userService := services.NewUserService(userRepository)
	productService := services.NewProductService(productRepository)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController()
	metaController := controllers.NewMetaController(func() bool { return infra.PingDB(db) })

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(infra.Logger))
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/", metaController.Index)
	r.GET("/health", metaController.Health)

	api := r.Group("/api")
	api.GET("/health", metaController.APIHealth)

	authRouter := api.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)

	productRouter := api.Group("/products")
	productRouter.GET("", productController.FindAll)
	productRouter.GET("/:id", productController.FindById)
	productRouter.POST("", middlewares.HandleProductData(cfg.UploadDir), productController.Create)
	productRouter.PUT("/:id", middlewares.HandleProductData(cfg.UploadDir), productController.Update)
	productRouter.DELETE("/:id", productController.Delete)

	userRouter := api.Group("/users")
	userRouter.GET("", userController.FindAll)
	userRouter.GET("/role/user", userController.FindWithUserRole)
	userRouter.POST("", userController.Create)
	userRouter.PUT("/:id", userController.Update)
	userRouter.DELETE("/:id", userController.Delete)

	api.POST("/orders", orderController.Create)

	registerStatic(r, cfg)

	return r
}

// registerStatic はアップロード画像とフロントエンドのバンドルを配信する
// 未マッチのGETはSPAのindex.htmlにフォールバックする
func registerStatic(r *gin.Engine, cfg *config.Config) {
	// アップロード画像は9日間キャッシュ、ETagなし
	uploads := r.Group(constants.UploadURLPrefix, func(ctx *gin.Context) {
		ctx.Header("Cache-Control", "public, max-age=777600")
	})
	uploads.Static("/", cfg.UploadDir)

	r.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet {
			requested := filepath.Join(cfg.FrontendDir, filepath.Clean("/"+ctx.Request.URL.Path))
			if info, err := os.Stat(requested); err == nil && !info.IsDir() {
				ctx.File(requested)
				return
			}

			index := filepath.Join(cfg.FrontendDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				ctx.File(index)
				return
			}
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": constants.MsgNotFound})
	})
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}

	if cfg.FrontendURL != "" {
		corsCfg.AllowOrigins = []string{
			cfg.FrontendURL,
			"http://localhost:3000",
			"http://localhost:5000",
		}
		corsCfg.AllowCredentials = true
	} else {
		// オリジン未設定時はワイルドカード（credentialsとは併用できない）
		corsCfg.AllowAllOrigins = true
	}
	return corsCfg
}

func main() {
	infra.Initialize()
	cfg := config.Load()
	db := infra.SetupDB(cfg)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		infra.Logger.Fatalf("Failed to create upload directory: %v", err)
	}

	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		infra.Logger.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			infra.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		infra.Logger.Fatalf("Server forced to shutdown: %v", err)
	}
	infra.Logger.Info("Server exited")
}
