package api

import (
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter builds the gin engine serving /v1/strength. The returned func releases the
// resources held by the handlers.
func NewRouter(cfg Config) (*gin.Engine, func(), error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return zerolog.New(gin.DefaultWriter).With().Timestamp().Logger()
	})))

	v1 := router.Group("/v1")

	closer, err := RegisterStrengthApi(v1.Group("/strength"), cfg.CacheSize)
	if err != nil {
		return nil, nil, err
	}

	return router, closer, nil
}
