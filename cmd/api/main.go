package main

import (
    "flag"
    "os"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "fairgrid/internal/dashboard"
    "fairgrid/pkg/utils"
)

func main() {
    bundlePath := flag.String("bundle", "", "Dashboard bundle written by the trainer")
    flag.Parse()

    logger := utils.MustLogger(os.Getenv("LOG_FILE"), os.Getenv("LOG_LEVEL"))
    defer logger.Sync()

    path := *bundlePath
    if path == "" { path = os.Getenv("BUNDLE_PATH") }
    if path == "" { path = "data/dashboard.json" }
    bundle, err := dashboard.ReadFile(path)
    if err != nil { logger.Fatal("Failed to load dashboard bundle", zap.String("path", path), zap.Error(err)) }
    logger.Info("Dashboard bundle loaded",
        zap.String("id", bundle.ID),
        zap.String("sensitive_feature", bundle.SensitiveFeature),
        zap.Int("models", len(bundle.Models)),
    )

    if os.Getenv("GIN_MODE") == "" { gin.SetMode(gin.ReleaseMode) }
    r := dashboard.NewRouter(bundle, dashboard.ServerOptions{
        APIKey: os.Getenv("API_KEY"),
        Logger: logger.Named("http"),
    })

    port := os.Getenv("PORT")
    if port == "" { port = "8080" }
    if err := r.Run(":" + port); err != nil { logger.Fatal("Server stopped", zap.Error(err)) }
}
