package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yeremiapane/kostify/config"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/router"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

func main() {
	utils.InitLogger()

	if err := rootCmd().Execute(); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "kostify",
		Short:         "Boarding-house management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Migrate the store and run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(envFile)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the store tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := open(envFile)
			if err != nil {
				return err
			}
			return autoMigrate(db)
		},
	})
	return root
}

func open(envFile string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	utils.InfoLogger.Printf("Connected to %s store %s", cfg.DBDriver, cfg.DBName)
	return cfg, db, nil
}

func serve(envFile string) error {
	cfg, db, err := open(envFile)
	if err != nil {
		return err
	}
	if err := autoMigrate(db); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(db, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
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

	utils.InfoLogger.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
