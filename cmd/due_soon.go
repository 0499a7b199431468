package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var dueSoonCmd = &cobra.Command{
	Use:   "due-soon",
	Short: "List todo tasks coming due",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		tasks, err := a.taskService.DueSoon(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDUE\tPRIORITY\tTITLE")
		for _, t := range tasks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.DueDate.Local().Format(time.DateTime), t.Priority, t.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dueSoonCmd)
}
