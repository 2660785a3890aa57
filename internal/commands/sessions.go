package commands

import (
	"github.com/dogaculudag/repro-dashboard-sub001/internal/export"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Arbeitssitzungen",
}

var sessionsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Alle aktiven Sitzungen mit laufender Zeit",
	Args:  cobra.NoArgs,
	RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *runtime) error {
		items, err := rt.sessions.GetAllActiveSessions(cmd.Context(), operator)
		if err != nil {
			return rt.appError(err)
		}
		return export.Write(rt.out, format, export.SessionSheet(items, rt.cfg.Location()))
	}),
}

func init() {
	sessionsCmd.AddCommand(sessionsActiveCmd)
}
