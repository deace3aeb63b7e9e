package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ByeoliKim/star-shop/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *StoreHandler, authMiddleware gin.HandlerFunc, storeMetrics *metrics.StoreMetrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestMetrics(storeMetrics))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(storeMetrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/products", handler.ListProducts)

		authenticated := api.Group("/", authMiddleware)
		{
			authenticated.POST("/checkout", handler.Checkout)
			authenticated.GET("/me/state", handler.GetUserState)
		}
	}

	return router
}

func requestMetrics(storeMetrics *metrics.StoreMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handlerName := c.FullPath()
		if handlerName == "" {
			handlerName = "unmatched"
		}

		storeMetrics.Requests.WithLabelValues(handlerName, strconv.Itoa(c.Writer.Status())).Inc()
		storeMetrics.LatencyMS.WithLabelValues(handlerName).Observe(float64(time.Since(start).Milliseconds()))
	}
}
