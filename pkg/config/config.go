package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	WIMS    WIMSConfig
	HTTP    HTTPConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// WIMSConfig ubicación de la pasarela WIMS remota. El backend publica el
// módulo de inventario y el de usuarios bajo prefijos distintos, de ahí las
// dos URLs base.
type WIMSConfig struct {
	APIBaseURL  string // módulo de inventario (/Warehouse/...)
	AuthBaseURL string // módulo de usuarios (/User/login)
}

// HTTPConfig dirección de la pasarela HTTP local para el colaborador de UI.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig ubicación del almacén de sesión durable.
type SessionConfig struct {
	DBPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, WIMS_API_BASE_URL, SESSION_DB_PATH, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "wims-scanner"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		WIMS: WIMSConfig{
			APIBaseURL:  getString(v, "WIMS_API_BASE_URL", "http://wims-gateway.azure-api.net/im"),
			AuthBaseURL: getString(v, "WIMS_AUTH_BASE_URL", "http://wims-gateway.azure-api.net/um"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		Session: SessionConfig{
			DBPath: getString(v, "SESSION_DB_PATH", "session.db"),
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
