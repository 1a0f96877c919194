package app

import (
	"net/http"
	"time"

	"example/cosmic-api/app/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the shared HTTP router for both local and Lambda execution.
func NewRouter(s *Server) *gin.Engine {
	router := gin.New()
	router.Use(
		logging.RequestID(),
		logging.Middleware(s.logger),
		logging.Recovery(s.logger),
	)
	router.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.Server.Origins(),
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", logging.RequestIDHeader},
		ExposeHeaders: []string{logging.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Cosmic Lottery API is running")
	})
	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	api.POST("/report/generate", s.GenerateReport)
	api.GET("/reports/my-reports/:userId", s.MyReports)
	api.GET("/reports/:reportId", s.GetReport)
	api.POST("/reports/:reportId/share", s.ShareReport)
	api.POST("/reports/:reportId/stop-sharing", s.StopSharing)
	api.POST("/reports/:reportId/email", s.EmailReport)
	api.GET("/public/reports/shared/:share_token", s.SharedReport)

	api.GET("/user/credits/:userId", s.UserCredits)
	api.GET("/zodiac", ZodiacSigns)

	api.POST("/stripe/create-checkout-session", s.CreateCheckoutSession)
	api.POST("/stripe/webhook", s.StripeWebhook)

	return router
}
