package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpapi "curtisos.com/curtisos/internal/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task HTTP API (due-soon query, bulk updates and task CRUD)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(a.taskService), a.cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", a.cfg.AppURL)
			if err := e.Start(a.cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
