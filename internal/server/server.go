package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"greenkitchen/internal/config"
	"greenkitchen/internal/http-api/handler"
	"greenkitchen/internal/http-api/middleware"
	"greenkitchen/internal/http-api/repository"
	"greenkitchen/internal/http-api/service"
)

type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *gin.Engine
}

// New wires repositories, services and handlers over db and builds the router.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	owners := service.Ownership{Enforce: cfg.EnforceOwnership}

	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tagRepo := repository.NewTagRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
		cors.New(corsConfig(cfg)),
	)

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		engine.Use(middleware.NewMetrics(reg).Middleware())
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// Mutations need a token only when ownership is enforced.
	guard := middleware.OptionalAuth(authSvc)
	if cfg.EnforceOwnership {
		guard = middleware.AuthMiddleware(authSvc)
	}

	api := engine.Group("/api", middleware.Timeout(cfg.RequestTimeout))
	api.GET("/health", handler.Health)

	handler.NewAuthHandler(authSvc, log).RegisterRoutes(api.Group("/auth"))
	handler.NewRecipeHandler(service.NewRecipeService(recipeRepo, userRepo, owners), log).
		RegisterRoutes(api.Group("/recipes"), guard)
	handler.NewReviewHandler(service.NewReviewService(reviewRepo, recipeRepo, userRepo, owners), log).
		RegisterRoutes(api.Group("/reviews"), guard)
	handler.NewUserHandler(service.NewUserService(userRepo, owners), log).
		RegisterRoutes(api.Group("/users"), guard)

	handler.NewCategoryHandler(service.NewCategoryService(repository.NewCategoryRepository(db)), log).
		RegisterRoutes(api.Group("/categories"))
	handler.NewCuisineHandler(service.NewCuisineService(repository.NewCuisineRepository(db)), log).
		RegisterRoutes(api.Group("/cuisines"))
	handler.NewIngredientHandler(service.NewIngredientService(repository.NewIngredientRepository(db)), log).
		RegisterRoutes(api.Group("/ingredients"))
	handler.NewTagHandler(service.NewTagService(tagRepo), log).
		RegisterRoutes(api.Group("/tags"))

	overview := handler.NewOverviewHandler(service.NewOverviewService(repository.NewOverviewRepository(db), reviewRepo), log)
	api.GET("/overview", overview.Get)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return &Server{cfg: cfg, log: log, engine: engine}
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	cc.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.CORSOrigins
	}
	return cc
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
