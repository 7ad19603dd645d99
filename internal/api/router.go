package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpost/blog-platform/internal/api/handler"
	"github.com/inkpost/blog-platform/internal/api/middleware"
	"github.com/inkpost/blog-platform/internal/core/domain"
	"github.com/inkpost/blog-platform/internal/core/ports"
	"github.com/inkpost/blog-platform/internal/core/service"
	mongodb "github.com/inkpost/blog-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/inkpost/blog-platform/internal/infrastructure/db/redis"
	httphandlers "github.com/inkpost/blog-platform/internal/infrastructure/http/handlers"
)

// Fixed-window budget for the credential endpoints.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, media ports.MediaStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit("10M"))
	e.Use(echoprometheus.NewMiddleware("blog_platform"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)

	tokenService := service.NewTokenService(userRepo, jwtSecret, 0)
	userService := service.NewUserService(userRepo, media, tokenService, log)
	blogService := service.NewBlogService(blogRepo, media, log)

	accountHandler := handler.NewAccountHandler(userService)
	blogHandler := handler.NewBlogHandler(blogService)

	auth := middleware.Auth(tokenService, userRepo)
	admin := middleware.RBAC(domain.RoleAdmin)
	credentialLimit := middleware.RateLimit(
		redisdb.NewFixedWindowLimiter(rdb, "credentials", loginRateLimit, loginRateWindow),
	)

	// --- Account routes ---
	accounts := e.Group("/api/accounts")
	accounts.POST("/register", accountHandler.Register, credentialLimit)
	accounts.POST("/login", accountHandler.Login, credentialLimit)
	accounts.GET("/logout", accountHandler.Logout, auth)
	accounts.GET("/my-profile", accountHandler.MyProfile, auth)
	accounts.GET("/admins", accountHandler.GetAdmins)

	// --- Blog routes ---
	blogs := e.Group("/api/blogs")
	blogs.POST("/create", blogHandler.Create, auth, admin)
	blogs.DELETE("/remove/:id", blogHandler.Delete, auth, admin)
	blogs.GET("/all-blogs", blogHandler.GetAll)
	blogs.GET("/single-blog/:id", blogHandler.GetSingle, auth)
	blogs.GET("/my-blog", blogHandler.GetMine, auth, admin)
	blogs.PUT("/update/:id", blogHandler.Update, auth, admin)
	blogs.GET("/all-users", accountHandler.GetAllUsers, auth, admin)
	blogs.DELETE("/user/delete/:id", accountHandler.DeleteUser, auth, admin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
