package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/jhoicas/invoice-generator/pkg/money"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Invoice InvoiceConfig
	Draft   DraftConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string // trace, debug, info, warn, error
	SwaggerFile string // ruta al swagger.json servido en /docs (vacío = deshabilitado)
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InvoiceConfig valores por defecto del formulario y del documento exportado.
type InvoiceConfig struct {
	DefaultCurrency string  // código ISO (USD, EUR, GBP...)
	DefaultTaxRate  float64 // porcentaje
	PDFEngine       string  // "maroto" (grilla) o "fpdf" (coordenadas fijas)
	Footer          string  // leyenda al pie del documento
}

// DraftConfig configuración del almacén en memoria de borradores.
type DraftConfig struct {
	TTLMinutes int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, INVOICE_DEFAULT_CURRENCY, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "invoice-generator"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Invoice: InvoiceConfig{
			DefaultCurrency: strings.ToUpper(getString(v, "INVOICE_DEFAULT_CURRENCY", "USD")),
			DefaultTaxRate:  getFloat(v, "INVOICE_DEFAULT_TAX_RATE", 0),
			PDFEngine:       strings.ToLower(getString(v, "INVOICE_PDF_ENGINE", "maroto")),
			Footer:          getString(v, "INVOICE_FOOTER", "Thank you for your business!"),
		},
		Draft: DraftConfig{
			TTLMinutes: getInt(v, "DRAFT_TTL_MINUTES", 120),
		},
	}

	switch cfg.Invoice.PDFEngine {
	case "maroto", "fpdf":
	default:
		return nil, fmt.Errorf("INVOICE_PDF_ENGINE inválido: %q (maroto|fpdf)", cfg.Invoice.PDFEngine)
	}
	if rate := cfg.Invoice.DefaultTaxRate; math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return nil, fmt.Errorf("INVOICE_DEFAULT_TAX_RATE inválido: %v (debe ser >= 0)", rate)
	}
	if !money.IsSupported(cfg.Invoice.DefaultCurrency) {
		return nil, fmt.Errorf("INVOICE_DEFAULT_CURRENCY no soportada: %q", cfg.Invoice.DefaultCurrency)
	}
	if cfg.HTTP.Port <= 0 {
		return nil, fmt.Errorf("HTTP_PORT inválido: %d", cfg.HTTP.Port)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case float64:
			return v.GetFloat64(key)
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
