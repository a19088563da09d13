package dashboard

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"
)

type ServerOptions struct {
    // APIKey, when set, is required in the X-API-Key header.
    APIKey string
    Logger *zap.Logger
}

type modelSummary struct {
    ID                          string            `json:"id"`
    Accuracy                    float64           `json:"accuracy"`
    EqualizedOddsDifference     float64           `json:"equalized_odds_difference"`
    DemographicParityDifference float64           `json:"demographic_parity_difference"`
    Meta                        map[string]string `json:"meta,omitempty"`
}

// NewRouter serves a read-only view of b.
func NewRouter(b *Bundle, opts ServerOptions) *gin.Engine {
    logger := opts.Logger
    if logger == nil { logger = zap.NewNop() }

    r := gin.New()
    r.Use(gin.Recovery(), requestLogger(logger))

    api := r.Group("/dashboard")
    api.Use(apiKeyMiddleware(opts.APIKey))
    api.GET("/bundle", func(c *gin.Context) { c.JSON(http.StatusOK, b) })
    api.GET("/models", func(c *gin.Context) {
        out := make([]modelSummary, len(b.Models))
        for i, m := range b.Models {
            out[i] = modelSummary{ID: m.ID, Accuracy: m.Accuracy, EqualizedOddsDifference: m.EqualizedOddsDifference,
                DemographicParityDifference: m.DemographicParityDifference, Meta: m.Meta}
        }
        c.JSON(http.StatusOK, gin.H{"sensitive_feature": b.SensitiveFeature, "groups": b.Groups, "models": out})
    })
    api.GET("/models/:id/metrics", func(c *gin.Context) {
        m, ok := b.Model(c.Param("id"))
        if !ok { c.JSON(http.StatusNotFound, gin.H{"error": "unknown model"}); return }
        c.JSON(http.StatusOK, m.Metrics)
    })
    api.GET("/frontier", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"frontier": Frontier(b.Points())})
    })
    return r
}

func apiKeyMiddleware(key string) gin.HandlerFunc {
    return func(c *gin.Context) {
        if key == "" { c.Next(); return }
        if c.GetHeader("X-API-Key") != key {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
            return
        }
        c.Next()
    }
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Next()
        logger.Info("Request",
            zap.String("method", c.Request.Method),
            zap.String("path", c.FullPath()),
            zap.Int("status", c.Writer.Status()),
        )
    }
}
