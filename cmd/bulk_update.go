package cmd

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"curtisos.com/curtisos/internal/constants"
	"curtisos.com/curtisos/internal/services"
)

var bulkFlags struct {
	ids         []uint
	status      string
	priority    string
	context     string
	completedAt string
}

var bulkUpdateCmd = &cobra.Command{
	Use:   "bulk-update",
	Short: "Apply one partial update to many tasks",
	Example: `  curtisos bulk-update --ids 1,2,3 --status completed --completed-at now
  curtisos bulk-update --ids 4,5 --status todo --completed-at none`,
	RunE: func(cmd *cobra.Command, args []string) error {
		update, err := bulkUpdateFromFlags()
		if err != nil {
			return err
		}

		a := newApp()
		defer a.close()

		result, err := a.taskService.BulkUpdate(cmd.Context(), bulkFlags.ids, update)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "updated: %v\n", result.Updated)
		for _, id := range result.Failed {
			fmt.Fprintf(out, "failed:  %d (%s)\n", id, result.Errors[id])
		}
		return nil
	},
}

func bulkUpdateFromFlags() (services.TaskUpdate, error) {
	var u services.TaskUpdate
	if bulkFlags.status != "" {
		s := constants.TaskStatus(bulkFlags.status)
		u.Status = &s
	}
	if bulkFlags.priority != "" {
		p := constants.TaskPriority(bulkFlags.priority)
		u.Priority = &p
	}
	if bulkFlags.context != "" {
		c := constants.TaskContext(bulkFlags.context)
		u.Context = &c
	}

	switch v := strings.TrimSpace(bulkFlags.completedAt); v {
	case "":
	case "none":
		u.CompletedAt = &sql.NullTime{}
	case "now":
		u.CompletedAt = &sql.NullTime{Time: time.Now(), Valid: true}
	default:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return u, fmt.Errorf("--completed-at: %w", err)
		}
		u.CompletedAt = &sql.NullTime{Time: t, Valid: true}
	}

	return u, nil
}

func init() {
	f := bulkUpdateCmd.Flags()
	f.UintSliceVar(&bulkFlags.ids, "ids", nil, "comma separated task ids")
	f.StringVar(&bulkFlags.status, "status", "", "new status")
	f.StringVar(&bulkFlags.priority, "priority", "", "new priority")
	f.StringVar(&bulkFlags.context, "context", "", "new context (business or personal)")
	f.StringVar(&bulkFlags.completedAt, "completed-at", "", "RFC3339 time, \"now\" or \"none\" to clear")
	_ = bulkUpdateCmd.MarkFlagRequired("ids")

	rootCmd.AddCommand(bulkUpdateCmd)
}
