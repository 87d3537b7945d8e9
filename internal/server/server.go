package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"savora.app/api/internal/config"
	"savora.app/api/internal/handler"
	"savora.app/api/internal/middleware"
	"savora.app/api/internal/model"
	"savora.app/api/internal/repository"
	"savora.app/api/internal/service"
	"savora.app/api/pkg/storage"
	"savora.app/api/pkg/token"
)

type Server struct {
	engine *gin.Engine
	audit  service.AuditLogger
}

func NewServer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, imageStorage storage.ImageStorage) *Server {
	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	logRepo := repository.NewLogRepository(db)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	audit := service.NewAuditLogger(logRepo)

	authService := service.NewAuthService(userRepo, codec, rdb)
	authHandler := handler.NewAuthHandler(authService)

	restaurantService := service.NewRestaurantService(restaurantRepo)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)

	postService := service.NewPostService(postRepo, commentRepo, userRepo, imageStorage, cfg.PublicBaseURL)
	postHandler := handler.NewPostHandler(postService)

	statService := service.NewStatService(userRepo, restaurantRepo, postRepo, logRepo)
	dashboardHandler := handler.NewDashboardHandler(statService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	// Locally stored uploads (post images, default profile picture).
	router.Static("/uploads", cfg.UploadDir)

	authMiddleware := middleware.NewAuthMiddleware(codec, rdb)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/auth/change-password", authHandler.ChangePassword)
		protected.GET("/auth/get-user-id", authHandler.GetUserID)
		protected.GET("/auth/account-info", authHandler.AccountInfo)
		protected.PUT("/auth/update-info", authHandler.UpdateAccountInfo)

		// Restaurant moderation: every request through this group is
		// audited, listings are open to any authenticated role, the
		// transitions are admin-only.
		restaurants := protected.Group("/restaurants")
		restaurants.Use(middleware.AuditRequests(audit))
		{
			restaurants.POST("/add",
				authMiddleware.RequireRoles(model.RoleUser, model.RoleOwner, model.RoleAdmin),
				restaurantHandler.Add)
			restaurants.GET("/get-all", restaurantHandler.GetAll)
			restaurants.GET("/get-approved", restaurantHandler.GetApproved)
			restaurants.GET("/get-denied", restaurantHandler.GetDenied)
			restaurants.GET("/get-pending", restaurantHandler.GetPending)
			restaurants.PUT("/:restaurantId/approve",
				authMiddleware.RequireRoles(model.RoleAdmin), restaurantHandler.Approve)
			restaurants.PUT("/:restaurantId/deny",
				authMiddleware.RequireRoles(model.RoleAdmin), restaurantHandler.Deny)
			restaurants.DELETE("/:restaurantId/delete",
				authMiddleware.RequireRoles(model.RoleAdmin), restaurantHandler.Delete)
		}

		// Social feed: posts, comments, likes.
		social := protected.Group("")
		social.Use(authMiddleware.RequireRoles(model.RoleUser, model.RoleAdmin))
		social.Use(middleware.AuditRequests(audit))
		{
			social.POST("/posts", postHandler.CreatePost)
			social.GET("/posts", postHandler.GetAllPosts)
			social.DELETE("/posts/:postId", postHandler.DeletePost)

			social.POST("/posts/:postId/comments", postHandler.AddComment)
			social.DELETE("/posts/:postId/comments/:commentId", postHandler.DeleteComment)

			social.POST("/posts/:postId/like", postHandler.LikePost)
			social.POST("/posts/:postId/unlike", postHandler.UnlikePost)
			social.GET("/posts/:postId/liked", postHandler.CheckPostLiked)

			social.POST("/comments/:commentId/like", postHandler.LikeComment)
			social.POST("/comments/:commentId/unlike", postHandler.UnlikeComment)
			social.GET("/comments/:commentId/liked", postHandler.CheckCommentLiked)

			social.GET("/profile-picture/:userId", postHandler.GetProfilePicture)
		}

		// Admin dashboard
		dashboard := protected.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireRoles(model.RoleAdmin))
		{
			dashboard.GET("", dashboardHandler.GetDashboardData)
			dashboard.GET("/logs", dashboardHandler.GetAllLogs)
		}
	}

	return &Server{
		engine: router,
		audit:  audit,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Close drains the audit queue.
func (s *Server) Close() {
	s.audit.Close()
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := strings.Split(allowedOrigins, ",")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
