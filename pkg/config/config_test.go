package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "invoice-generator", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "USD", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, 0.0, cfg.Invoice.DefaultTaxRate)
	assert.Equal(t, "maroto", cfg.Invoice.PDFEngine)
	assert.Equal(t, "Thank you for your business!", cfg.Invoice.Footer)
	assert.Equal(t, 120, cfg.Draft.TTLMinutes)
}

func TestFromViper_ValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("INVOICE_DEFAULT_TAX_RATE", "7.5")
	v.Set("INVOICE_DEFAULT_CURRENCY", "eur")
	v.Set("INVOICE_PDF_ENGINE", "FPDF")
	v.Set("DRAFT_TTL_MINUTES", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 7.5, cfg.Invoice.DefaultTaxRate)
	assert.Equal(t, "EUR", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, "fpdf", cfg.Invoice.PDFEngine)
	assert.Equal(t, 120, cfg.Draft.TTLMinutes, "un valor no numérico conserva el default")
}

func TestFromViper_MotorPDFInvalido(t *testing.T) {
	v := viper.New()
	v.Set("INVOICE_PDF_ENGINE", "latex")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ImpuestoPorDefectoNegativo(t *testing.T) {
	for _, raw := range []any{"-5", -0.5, "NaN"} {
		v := viper.New()
		v.Set("INVOICE_DEFAULT_TAX_RATE", raw)

		_, err := fromViper(v)
		assert.ErrorContains(t, err, "INVOICE_DEFAULT_TAX_RATE", "valor %v", raw)
	}
}

func TestFromViper_MonedaNoSoportada(t *testing.T) {
	v := viper.New()
	v.Set("INVOICE_DEFAULT_CURRENCY", "btc")

	_, err := fromViper(v)
	assert.ErrorContains(t, err, "INVOICE_DEFAULT_CURRENCY")
}
