package commands

import (
	report_dto "github.com/dogaculudag/repro-dashboard-sub001/internal/dtos/report-dto"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/export"
	"github.com/spf13/cobra"
)

var window report_dto.WindowQuery

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Zeitberichte für Mitarbeiter, Abteilungen und Mappen",
	Long: `Zeitfenster entweder per --period (today, yesterday, week, last_week, month, last_month, year)
oder per --from/--to im RFC3339-Format.

Beispiele:
  reproctl report worker 0196b0c4-... --period week
  reproctl report department 0196b0c4-... --from 2026-03-01T00:00:00+03:00 --to 2026-04-01T00:00:00+03:00 --format csv
  reproctl report file 0196b0c4-...`,
}

var reportWorkerCmd = &cobra.Command{
	Use:   "worker <user_id>",
	Short: "Gesamtzeit eines Mitarbeiters nach Mappe und Tag",
	Args:  cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *runtime) error {
		resp, err := rt.reports.GetWorkerTimeSummary(cmd.Context(), operator, args[0], window)
		if err != nil {
			return rt.appError(err)
		}
		return export.Write(rt.out, format, export.WorkerSheets(resp, rt.cfg.Location())...)
	}),
}

var reportDepartmentCmd = &cobra.Command{
	Use:   "department <department_id>",
	Short: "Gesamtzeit einer Abteilung mit Aufschlüsselung pro Mitarbeiter",
	Args:  cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *runtime) error {
		resp, err := rt.reports.GetDepartmentTotalTime(cmd.Context(), operator, args[0], window)
		if err != nil {
			return rt.appError(err)
		}
		return export.Write(rt.out, format, export.DepartmentSheets(resp, rt.cfg.Location())...)
	}),
}

var reportFileCmd = &cobra.Command{
	Use:   "file <file_id>",
	Short: "Zeit pro Mitarbeiter auf einer Mappe (ohne Fenster: gesamte Historie)",
	Args:  cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *runtime) error {
		q := report_dto.FileBreakdownQuery{
			Period:      window.Period,
			From:        window.From,
			To:          window.To,
			IncludeOpen: window.IncludeOpen,
		}
		resp, err := rt.reports.GetFileWorkerBreakdown(cmd.Context(), operator, args[0], q)
		if err != nil {
			return rt.appError(err)
		}
		return export.Write(rt.out, format, export.FileSheets(resp, rt.cfg.Location())...)
	}),
}

func init() {
	flags := reportCmd.PersistentFlags()
	flags.StringVar(&window.Period, "period", "", "benannter Zeitraum")
	flags.StringVar(&window.From, "from", "", "Beginn (RFC3339)")
	flags.StringVar(&window.To, "to", "", "Ende, exklusiv (RFC3339)")
	flags.BoolVar(&window.IncludeOpen, "include-open", false, "laufende Einträge bis jetzt mitzählen")

	reportCmd.AddCommand(reportWorkerCmd)
	reportCmd.AddCommand(reportDepartmentCmd)
	reportCmd.AddCommand(reportFileCmd)
}
