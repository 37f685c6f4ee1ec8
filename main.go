package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/schoolsports/config"
	_ "github.com/DhavalSuthar-24/schoolsports/docs"
	"github.com/DhavalSuthar-24/schoolsports/internal/achievement"
	"github.com/DhavalSuthar-24/schoolsports/internal/audit"
	"github.com/DhavalSuthar-24/schoolsports/internal/enrollment"
	"github.com/DhavalSuthar-24/schoolsports/internal/sport"
	"github.com/DhavalSuthar-24/schoolsports/internal/team"
	"github.com/DhavalSuthar-24/schoolsports/internal/tournament"
	"github.com/DhavalSuthar-24/schoolsports/pkg/token"
	"github.com/DhavalSuthar-24/schoolsports/routes"
)

// @title School Sports API
// @version 1.0
// @description Enrollments, teams, tournaments, results and certificates of a school sports program.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "schoolsports",
		Short:         "School sports program service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), migrateCmd(), tokenCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := migrate(db); err != nil {
				return err
			}
			log.Info("AutoMigrate successful")

			recorder, closeRecorder, err := newRecorder(cfg, db, log)
			if err != nil {
				return err
			}
			defer closeRecorder()

			if cfg.App.Env != "development" {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := &http.Server{
				Addr:              ":" + cfg.App.Port,
				Handler:           routes.SetupRoutes(cfg, db, log, recorder),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("failed to run server: %w", err)
			case <-ctx.Done():
			}
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if err := migrate(db); err != nil {
				return err
			}
			log.Info("AutoMigrate successful")
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		userID uint
		role   string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user id and role",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			signed, err := token.GenerateJWT(userID, role, cfg.JWT.AccessTokenSecret, cfg.JWT.AccessTokenExpiryMinutes)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	cmd.Flags().UintVar(&userID, "user", 0, "User id carried by the token")
	cmd.Flags().StringVar(&role, "role", "admin", "Role claim (admin, coach, sports_teacher, student)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func bootstrap() (*config.Config, *gorm.DB, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	log, err := config.NewLogger(*cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}
	db, err := config.ConnectDB(*cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("connected to database", zap.String("driver", cfg.DB.Driver))
	return cfg, db, log, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&sport.Sport{},
		&team.Team{},
		&enrollment.SportsEnrollment{},
		&tournament.Tournament{},
		&achievement.SportsAchievement{},
		&audit.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}

// newRecorder publishes audit events to NATS when NATS_URL is set and writes them
// to the audit_logs table otherwise.
func newRecorder(cfg *config.Config, db *gorm.DB, log *zap.Logger) (audit.Recorder, func(), error) {
	if cfg.NATS.URL == "" {
		return audit.NewGormRecorder(db), func() {}, nil
	}
	recorder, nc, err := audit.ConnectNATS(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
	if err != nil {
		return nil, nil, err
	}
	log.Info("publishing audit events to NATS", zap.String("url", cfg.NATS.URL))
	return recorder, func() { _ = nc.Drain() }, nil
}
