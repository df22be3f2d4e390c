package api

import (
	"course_suggestions_system/configs"
	"course_suggestions_system/internal/services"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(service services.SuggestionService, config configs.HTTP, logger *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(config.CORSAllowedOrigins)))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive")
	})

	h := newSuggestionHandler(service, logger)

	suggestions := r.Group("/courses_suggestions")
	suggestions.GET("", h.List)
	suggestions.POST("", h.Propose)
	suggestions.POST("/:id/approve", h.Approve)
	suggestions.POST("/:id/reject", h.Reject)
	suggestions.POST("/:id/vote", h.Vote)

	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
	}

	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	config.AllowOrigins = origins

	return config
}
