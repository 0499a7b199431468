package cmd

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	config "curtisos.com/curtisos/internal/configs"
	"curtisos.com/curtisos/internal/notify"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log task update events published on Redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.RedisAddr == "" {
			return errors.New("REDIS_HOST is not set")
		}

		client := config.NewRedisClient(cfg.RedisAddr)
		defer client.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Printf("watching %s", cfg.RedisChannel)
		err := notify.NewRedisNotifier(client, cfg.RedisChannel).Subscribe(ctx, func(e notify.Event) {
			log.Printf("task %d updated: status=%s priority=%s", e.TaskID, e.Status, e.Priority)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
