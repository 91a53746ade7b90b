package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"glomnidesigns.GO/core/logging"
	"glomnidesigns.GO/cron"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(c *cobra.Command, args []string) error {
		log := logging.L()
		if jobName != "" {
			j, ok := cron.Lookup(jobName)
			if !ok {
				return fmt.Errorf("unknown job: %s (have %s)", jobName, strings.Join(cron.Names(), ", "))
			}
			fmt.Fprintf(c.OutOrStdout(), "Running cron job: %s\n", j.Name)
			return cron.RunJob(c.Context(), log, j)
		}
		fmt.Fprintln(c.OutOrStdout(), "Starting cron scheduler...")
		s, err := cron.StartCron(log)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), "Cron scheduler started. Press Ctrl+C to exit.")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		<-s.Stop().Done()
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
