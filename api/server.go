package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/neighborly/neighborly-api/background"
	"github.com/neighborly/neighborly-api/community"
	"github.com/neighborly/neighborly-api/external/geoinfo"
	"github.com/neighborly/neighborly-api/external/identity"
	"github.com/neighborly/neighborly-api/help"
	"github.com/neighborly/neighborly-api/logmodule"
	"github.com/neighborly/neighborly-api/moderation"
	"github.com/neighborly/neighborly-api/notification"
	"github.com/neighborly/neighborly-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore      store.MongoStore
	moderationStore store.ModerationCore

	// ID token verification
	verifier identity.Verifier

	// Domain services
	lifecycle  *help.Lifecycle
	gate       *community.Gate
	scorer     *moderation.Scorer
	dispatcher *notification.Dispatcher

	// sweeps behind the secret routes
	sweeper    background.Background
	background taskEnqueuer
}

// NewServer new instance of server. geo may be nil to store requests without a locality.
func NewServer(
	mongoStore store.MongoStore,
	moderationStore store.ModerationCore,
	verifier identity.Verifier,
	geo geoinfo.GeoInfo,
	limiter notification.Limiter,
	pusher notification.Pusher) *Server {
	dispatcher := notification.NewDispatcher(mongoStore, limiter, pusher, viper.GetDuration("notification.retention"))
	gate := community.New(mongoStore, dispatcher)

	return &Server{
		mongoStore:      mongoStore,
		moderationStore: moderationStore,
		verifier:        verifier,
		lifecycle:       help.New(mongoStore, dispatcher, geo),
		gate:            gate,
		scorer:          moderation.New(moderationStore),
		dispatcher:      dispatcher,
		sweeper: background.Background{
			Gate:       gate,
			Dispatcher: dispatcher,
		},
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	apiRoute.POST("/accounts", s.accountRegister)

	// api route other than `/accounts` will apply the following middleware
	apiRoute.Use(s.recognizeProfileMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.POST("/me/fcm-tokens", s.addFCMToken)
		accountRoute.DELETE("/me/fcm-tokens", s.removeFCMToken)
	}

	helpRoute := apiRoute.Group("/helps")
	helpRoute.Use(s.moderationGuard())
	{
		helpRoute.POST("", s.askForHelp)
		helpRoute.GET("", s.listHelps)
		helpRoute.GET("/:helpID", s.getHelp)
		helpRoute.PATCH("/:helpID", s.updateHelpStatus)
		helpRoute.DELETE("/:helpID", s.deleteHelp)
		helpRoute.POST("/:helpID/responses", s.respondHelp)
		helpRoute.POST("/:helpID/responses/:responseID/accept", s.acceptResponder)
	}

	nearbyRoute := apiRoute.Group("/nearby")
	{
		nearbyRoute.GET("/helps", s.nearbyHelps)
	}

	gamificationRoute := apiRoute.Group("/gamification")
	{
		gamificationRoute.GET("/xp", s.getXP)
		gamificationRoute.GET("/history", s.getHelpHistory)
		gamificationRoute.GET("/badges", s.getBadges)
	}

	communityRoute := apiRoute.Group("/communities/:communityID")
	communityRoute.Use(s.moderationGuard())
	{
		communityRoute.POST("/join", s.requestJoin)
		communityRoute.POST("/leave", s.leaveCommunity)
		communityRoute.POST("/requests/:email/approve", s.approveJoin)
		communityRoute.POST("/requests/:email/reject", s.rejectJoin)
		communityRoute.GET("/blocks", s.listBlocks)
		communityRoute.GET("/members/:email/block", s.memberBlockStatus)
		communityRoute.POST("/members/:email/block", s.blockMember)
		communityRoute.DELETE("/members/:email/block", s.unblockMember)
		communityRoute.DELETE("/members/:email", s.removeMember)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.POST("/read-all", s.readAllNotifications)
		notificationRoute.PATCH("/:notificationID", s.readNotification)
	}

	apiRoute.POST("/reports", s.reportUser)
	apiRoute.POST("/feedbacks", s.giveFeedback)
	apiRoute.GET("/ratings/:email", s.getRating)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey")))
	{
		secretRoute.GET("/reports", s.adminListReports)
		secretRoute.PATCH("/reports/:reportID", s.adminUpdateReport)
		secretRoute.GET("/moderation/stats", s.adminModerationStats)
		secretRoute.POST("/blocks/expire", s.adminExpireBlocks)
		secretRoute.POST("/notifications/cleanup", s.adminCleanupNotifications)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.moderationStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Neighborly 1.0",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, gin.H{"error": obj})
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
