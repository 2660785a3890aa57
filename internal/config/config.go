package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Zeitzonen auch in schlanken Container-Images

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name     string `mapstructure:"NAME"`
		Port     string `mapstructure:"PORT"`
		State    string `mapstructure:"STATE"`
		LogLevel string `mapstructure:"LOG_LEVEL"`
		Timezone string `mapstructure:"TIMEZONE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	// IDENTITY beschreibt den externen Identity-Provider, der die PASETO-Tokens ausstellt.
	IDENTITY struct {
		Paseto struct {
			HexKey   string `mapstructure:"HEX_KEY"`
			Audience string `mapstructure:"AUDIENCE"`
		}
	}

	TRACKING struct {
		LongRunningHours       int `mapstructure:"LONG_RUNNING_HOURS"`
		MaxReportDays          int `mapstructure:"MAX_REPORT_DAYS"`
		SessionCacheTTLSeconds int `mapstructure:"SESSION_CACHE_TTL_SECONDS"`
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}
}

// defaults registriert jeden Schlüssel bei viper, damit AutomaticEnv auch
// beim Unmarshal greift.
var defaults = map[string]any{
	"APP.NAME":                           "repro-dosya-takip",
	"APP.PORT":                           "8080",
	"APP.STATE":                          "dev",
	"APP.LOG_LEVEL":                      "debug",
	"APP.TIMEZONE":                       "Europe/Istanbul",
	"DATABASE.POSTGRES.DSN":              "",
	"DATABASE.REDIS.ADDR":                "localhost:6379",
	"DATABASE.REDIS.PASSWORD":            "",
	"IDENTITY.PASETO.HEX_KEY":            "",
	"IDENTITY.PASETO.AUDIENCE":           "repro-dosya-takip",
	"TRACKING.LONG_RUNNING_HOURS":        10,
	"TRACKING.MAX_REPORT_DAYS":           366,
	"TRACKING.SESSION_CACHE_TTL_SECONDS": 30,
	"MAILTRAP.SANDBOX.SANDBOX_URL":       "",
	"MAILTRAP.SANDBOX.SANDBOX_API":       "",
	"MAILTRAP.SANDBOX.SANDBOX_DOMAIN":    "",
	"MAILTRAP.API.MAILTRAP_TOKEN_API":    "",
	"MAILTRAP.API.MAILTRAP_URL":          "",
	"MAILTRAP.API.MAILTRAP_DOMAIN":       "",
}

// LoadConfig liest application.yaml aus dem Arbeitsverzeichnis. Umgebungsvariablen
// mit dem Präfix RDT_ überschreiben Werte, z. B. RDT_DATABASE_POSTGRES_DSN.
func LoadConfig() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("application")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("RDT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("Fehler beim Lesen der Konfigurationsdatei: %w", err)
		}
		log.Warn().Msg("application.yaml nicht gefunden, nur Umgebungsvariablen werden verwendet")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("Fehler beim Entpacken der Konfiguration: %w", err)
	}

	if config.DATABASE.Postgres.DSN == "" {
		return nil, fmt.Errorf("Datenbank-DSN ist nicht konfiguriert")
	}
	if config.IDENTITY.Paseto.HexKey == "" {
		return nil, fmt.Errorf("IDENTITY.PASETO.HEX_KEY ist nicht konfiguriert")
	}
	if _, err := time.LoadLocation(config.APP.Timezone); err != nil {
		return nil, fmt.Errorf("ungültige Zeitzone %q: %w", config.APP.Timezone, err)
	}
	if config.TRACKING.LongRunningHours <= 0 || config.TRACKING.MaxReportDays <= 0 || config.TRACKING.SessionCacheTTLSeconds <= 0 {
		return nil, fmt.Errorf("TRACKING-Werte müssen positiv sein")
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config, nil
}

// Location liefert die konfigurierte Zeitzone für Tagesgrenzen und Zeiträume.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.APP.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *AppConfig) SessionCacheTTL() time.Duration {
	return time.Duration(c.TRACKING.SessionCacheTTLSeconds) * time.Second
}

func (c *AppConfig) LongRunningThreshold() time.Duration {
	return time.Duration(c.TRACKING.LongRunningHours) * time.Hour
}
