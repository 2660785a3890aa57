package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/abstraction/cache"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/config"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/db"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
	app_errors "github.com/dogaculudag/repro-dashboard-sub001/internal/errors"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/export"
	"github.com/dogaculudag/repro-dashboard-sub001/internal/i18n"
	file_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/file-case"
	report_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/report-case"
	work_session_case "github.com/dogaculudag/repro-dashboard-sub001/internal/use-cases/work-session-case"
	"github.com/spf13/cobra"
)

// operator ist der Actor der CLI. Wer Zugriff auf DSN und Schlüssel hat, sieht alles.
var operator = entity.Actor{UserID: "reproctl", Role: entity.ADMIN}

// runtime hält die Abhängigkeiten, die erst beim Ausführen eines Befehls aufgebaut werden.
type runtime struct {
	cfg      *config.AppConfig
	reports  report_case.ReportServiceContract
	sessions work_session_case.WorkSessionServiceContract
	i18n     i18n.Service
	out      io.Writer
}

var (
	format string
	lang   string
)

var rootCmd = &cobra.Command{
	Use:   "reproctl",
	Short: "Betriebswerkzeug für Repro Dosya Takip",
	Long: `reproctl liest Zeitberichte und aktive Sitzungen direkt aus der Datenbank.
Konfiguration wie beim Server: application.yaml im Arbeitsverzeichnis oder RDT_* Umgebungsvariablen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// withRuntime baut Konfiguration, Datenbank und Services vor dem eigentlichen Befehl auf.
func withRuntime(fn func(cmd *cobra.Command, args []string, rt *runtime) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if format != export.FormatTable && format != export.FormatCSV {
			return fmt.Errorf("unbekanntes Format %q (table|csv)", format)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		pool, err := db.ConnectPool(cmd.Context(), cfg.DATABASE.Postgres.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()

		rdb, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
		if err != nil {
			return err
		}
		defer rdb.Close()

		files := file_case.NewFileService(pool, rdb)
		r := &runtime{
			cfg:      cfg,
			reports:  report_case.NewReportService(pool, cfg),
			sessions: work_session_case.NewWorkSessionService(pool, cache.NewRedisCache(rdb), files, cfg),
			i18n:     i18n.NewInitI18nService(),
			out:      cmd.OutOrStdout(),
		}
		return fn(cmd, args, r)
	}
}

// appError übersetzt Anwendungsfehler für die Konsole.
func (r *runtime) appError(err *app_errors.AppError) error {
	msg := r.i18n.T(lang, err.MessageKey, nil)
	for _, d := range err.Details {
		msg += fmt.Sprintf("\n  %s: %s", d.Field, r.i18n.T(lang, d.MessageKey, d.Params))
	}
	return fmt.Errorf("%s (%s)", msg, err.Type)
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&format, "format", export.FormatTable, "Ausgabeformat: table oder csv")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "Sprache der Fehlermeldungen (en, tr)")
	rootCmd.SetErr(os.Stderr)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sessionsCmd)
}
