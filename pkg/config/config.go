package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Stock  StockConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// StockConfig parámetros del libro de existencias.
type StockConfig struct {
	Name           string // nombre del distribuidor; vacío usa el nombre por defecto del dominio
	HoldingPeriods int    // periodos por año del costo de mantenimiento (12 = costo mensual)
}

// ReportConfig presentación de reportes.
type ReportConfig struct {
	Locale string // etiqueta BCP 47 para formatear números (ej. pt-BR, es-CO, en)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, STOCK_NAME, REPORT_LOCALE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "beverage-stock"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "warn"),
		},
		Stock: StockConfig{
			Name:           getString(v, "STOCK_NAME", ""),
			HoldingPeriods: getInt(v, "STOCK_HOLDING_PERIODS", 12),
		},
		Report: ReportConfig{
			Locale: getString(v, "REPORT_LOCALE", "pt-BR"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
