package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/cldxciv/ascendcare/internal/auth"
	"github.com/cldxciv/ascendcare/internal/blog"
	"github.com/cldxciv/ascendcare/internal/booking"
	"github.com/cldxciv/ascendcare/internal/catalog"
	"github.com/cldxciv/ascendcare/internal/config"
	"github.com/cldxciv/ascendcare/internal/email"
	"github.com/cldxciv/ascendcare/internal/pages"
	"github.com/cldxciv/ascendcare/internal/slot"
	"github.com/cldxciv/ascendcare/internal/upload"
	"github.com/cldxciv/ascendcare/internal/user"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	srv    *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	catalogService := catalog.NewCatalog(catalog.NewRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(booking.NewRepository(db), catalogService, emailService)
	bookingHandler := booking.NewHandler(bookingService)

	slotHandler := slot.NewHandler(slot.NewService(slot.NewRepository(db)))
	blogHandler := blog.NewHandler(blog.NewService(blog.NewRepository(db)))
	pagesHandler := pages.NewHandler(pages.NewService(pages.NewRepository(db)))
	uploadHandler := upload.NewHandler(cfg.UploadDir)

	userService := user.NewService(user.NewRepository(db), cfg.JWTSecret)
	userHandler := user.NewHandler(userService)

	// Public site API, rate limited per client IP.
	public := router.Group("/api")
	public.Use(RateLimitMiddleware(10, 20))
	{
		public.POST("/bookings", bookingHandler.Create)
		public.GET("/slots/available", slotHandler.ListAvailable)
		public.GET("/services", catalogHandler.ListPublic)
		public.GET("/services/:slug", catalogHandler.GetBySlug)
		public.GET("/blog", blogHandler.ListPublic)
		public.GET("/blog/:slug", blogHandler.GetBySlug)
		public.GET("/pages/:page", pagesHandler.Get)
	}

	authGroup := router.Group("/api/auth")
	authGroup.Use(RateLimitMiddleware(5, 10))
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	router.GET("/api/me", authMiddleware, userHandler.GetMe)

	admin := router.Group("/api/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.GET("/services", catalogHandler.ListAdmin)
		admin.POST("/services", catalogHandler.Create)
		admin.PUT("/services/:id", catalogHandler.Update)
		admin.DELETE("/services/:id", catalogHandler.Delete)

		admin.GET("/blog", blogHandler.ListAdmin)
		admin.POST("/blog", blogHandler.Create)
		admin.PUT("/blog/:id", blogHandler.Update)
		admin.PATCH("/blog/:id", blogHandler.SetPublished)
		admin.DELETE("/blog/:id", blogHandler.Delete)

		admin.GET("/bookings", bookingHandler.List)
		admin.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
		admin.DELETE("/bookings/:id", bookingHandler.Delete)

		admin.GET("/slots", slotHandler.List)
		admin.POST("/slots", slotHandler.Create)
		admin.PATCH("/slots/:id", slotHandler.SetAvailability)
		admin.DELETE("/slots/:id", slotHandler.Delete)
		admin.POST("/slots/bulk", slotHandler.GenerateWeek)

		admin.GET("/pages/:page", pagesHandler.Get)
		admin.POST("/pages/:page", pagesHandler.Save)

		admin.POST("/upload", uploadHandler.Save)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// Router exposes the gin engine, used by handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
