package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/config"
	"github.com/mcpitc/mcpitc-backend/internal/handlers"
	"github.com/mcpitc/mcpitc-backend/internal/metrics"
	"github.com/mcpitc/mcpitc-backend/internal/middleware"
	"github.com/sirupsen/logrus"
)

// HandlerDependencies holds everything the route table wires together
type HandlerDependencies struct {
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	EventHandler       *handlers.EventHandler
	SegmentHandler     *handlers.SegmentHandler
	BlogHandler        *handlers.BlogHandler
	ApplicationHandler *handlers.ApplicationHandler
	RecruitmentHandler *handlers.RecruitmentHandler
	StatsHandler       *handlers.StatsHandler

	Tokens middleware.TokenVerifier
	Admins middleware.AdminChecker
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(metrics.Middleware())

	auth := middleware.RequireAuthenticated(deps.Tokens, logger)
	admin := middleware.RequireAdmin(deps.Admins, logger)

	router.GET("/", deps.StatsHandler.Welcome)
	router.GET("/healthz", deps.StatsHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Session routes
	router.POST("/jwt", deps.AuthHandler.IssueToken)
	router.POST("/logout", deps.AuthHandler.Logout)

	// User routes
	users := deps.UserHandler
	router.GET("/users", auth, admin, users.GetAllUsers)
	router.GET("/user/:email", users.GetUserByEmail)
	router.PUT("/user", users.SaveUser)
	router.PATCH("/user/:id", auth, admin, users.UpdateUser)
	router.PATCH("/user/designation/:email", auth, admin, users.UpdateDesignation)

	// Event routes
	events := deps.EventHandler
	router.GET("/events", events.ListEvents)
	router.GET("/event/:id", events.GetEvent)
	router.GET("/eventName/:name", events.GetEventByName)
	router.POST("/events", auth, admin, events.CreateEvent)
	router.DELETE("/event/:id", auth, admin, events.DeleteEvent)

	// Segment routes
	segments := deps.SegmentHandler
	router.POST("/event-segment", auth, admin, segments.CreateSegment)
	router.GET("/segments", segments.ListSegments)
	router.GET("/segment-details/:id", segments.GetSegment)
	router.PUT("/segment-details/:id", auth, admin, segments.UpdateSegment)
	router.GET("/segment/:event", segments.ListSegmentsByEvent)
	router.DELETE("/segment/:id", auth, admin, segments.DeleteSegment)

	// Blog routes
	blogs := deps.BlogHandler
	router.GET("/blogs", blogs.ListBlogs)
	router.GET("/blog/:id", blogs.GetBlog)
	router.POST("/blogs", auth, admin, blogs.CreateBlog)
	router.PUT("/blog/:id", auth, admin, blogs.UpdateBlog)
	router.DELETE("/blog/:id", auth, admin, blogs.DeleteBlog)

	// Executive application routes
	applications := router.Group("/executiveFormCollection")
	{
		h := deps.ApplicationHandler
		applications.GET("", h.ListApplications)
		applications.GET("/myForms/:email", auth, h.ListMyApplications)
		applications.GET("/:id", h.GetApplication)
		applications.POST("", h.SubmitApplication)
		applications.PUT("/:id", h.UpdateApplication)
		applications.DELETE("/:email", auth, admin, h.DeleteApplication)
	}

	// Dashboard
	router.GET("/admin-stats", deps.StatsHandler.GetAdminStats)
	router.GET("/recruitment-onOff", auth, admin, deps.RecruitmentHandler.GetStatus)
	router.PUT("/recruitment-onOff", auth, admin, deps.RecruitmentHandler.SetStatus)

	return router
}
