package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gtohub/admin-portal/internal/api"
	"github.com/gtohub/admin-portal/internal/backend"
	"github.com/gtohub/admin-portal/internal/config"
	"github.com/gtohub/admin-portal/internal/devauth"
	"github.com/gtohub/admin-portal/internal/session"
	"github.com/gtohub/admin-portal/internal/template"
)

const version = "1.0.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "admin-portal",
	Short: "Admin dashboard portal",
	Long:  "admin-portal serves the administrative dashboard and proxies management operations to the configured backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portal server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("admin-portal v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mirror, err := session.NewMirror(cfg.Session.Mirror)
	if err != nil {
		return fmt.Errorf("session mirror: %w", err)
	}
	defer mirror.Close()

	client := backend.New(cfg.Backend)

	var verifier session.Verifier = client
	if cfg.Auth.DevMode && !client.Enabled() {
		log.Printf("no backend configured, using development authenticator for %s", cfg.Auth.DevEmail)
		verifier = devauth.New(cfg.Auth)
	}

	store := session.NewStore(cfg.Session, mirror)
	guard := session.NewGuard(store, verifier)

	renderer, err := template.NewRenderer(cfg.Templates)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	defer renderer.Close()

	handlers := api.NewHandlers(cfg, client, guard, verifier, renderer)

	router := gin.Default()
	router.Static("/static", "./static")
	api.RegisterRoutes(router, handlers)

	if err := handlers.StartPollers(); err != nil {
		return fmt.Errorf("pollers: %w", err)
	}
	defer handlers.StopPollers()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("admin-portal listening on %s (backend: %v)", cfg.Server.Addr, client.Enabled())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("admin-portal stopped")
	return nil
}
