package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/schoolsports/config"
	"github.com/DhavalSuthar-24/schoolsports/internal/achievement"
	"github.com/DhavalSuthar-24/schoolsports/internal/audit"
	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/metrics"
	"github.com/DhavalSuthar-24/schoolsports/internal/middleware"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/stats"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
	"github.com/DhavalSuthar-24/schoolsports/pkg/rmiddleware"
)

// SetupRoutes wires the repositories and services on db and mounts every API route under /api.
func SetupRoutes(cfg *config.Config, db *gorm.DB, log *zap.Logger, recorder audit.Recorder) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestContext(), middleware.RequestLogger(log), metrics.GinMiddleware())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "schoolsports", "docs": "/swagger/index.html"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret)}
	staff := append(authenticated[:len(authenticated):len(authenticated)], rmiddleware.StaffMiddleware())

	sports := sport.NewSportRepository(db)
	teams := team.NewTeamRepository(db)
	enrollments := enrollment.NewEnrollmentRepository(db)
	manager := enrollment.NewManager(db, sports, teams,
		enrollment.WithRecorder(recorder),
		enrollment.WithLogger(log.Named("enrollment")),
	)
	scheduler := tournament.NewScheduler(db, sports, teams, tournament.WithLogger(log.Named("tournament")))
	achievements := achievement.NewAchievementRepository(db)
	achievementService := achievement.NewService(achievements, enrollments, sports, tournament.NewTournamentRepository(db))
	aggregator := stats.NewAggregator(enrollments, achievements, scheduler)

	api := r.Group("/api")
	sport.RegisterSportRoutes(api, sport.NewSportController(sports), staff...)
	team.RegisterTeamRoutes(api, team.NewTeamController(teams, sports, manager.Roster(), manager.Transactor()), staff...)
	enrollment.RegisterEnrollmentRoutes(api, enrollment.NewEnrollmentController(manager), authenticated, staff)
	tournament.RegisterTournamentRoutes(api, tournament.NewTournamentController(scheduler), staff...)
	achievement.RegisterAchievementRoutes(api, achievement.NewAchievementController(achievementService), authenticated, staff)
	stats.RegisterStatsRoutes(api, stats.NewStatsController(aggregator), authenticated...)

	return r
}
