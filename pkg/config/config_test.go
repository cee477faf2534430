package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/shopbot/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "shopbot", cfg.App.Name)
	assert.Equal(t, "0.16", cfg.Shop.TaxRate.String())
	assert.Equal(t, 3, cfg.Shop.Suggestions)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Hour, cfg.Redis.TTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SHOP_TAX_RATE", "0.08")
	t.Setenv("SHOP_SUGGESTIONS", "5")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "0.08", cfg.Shop.TaxRate.String())
	assert.Equal(t, 5, cfg.Shop.Suggestions)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_Invalidos(t *testing.T) {
	t.Run("sin secreto", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.Load()
		assert.Error(t, err)
	})
	t.Run("driver desconocido", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secreto")
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := config.Load()
		assert.Error(t, err)
	})
	t.Run("iva no numérico", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secreto")
		t.Setenv("SHOP_TAX_RATE", "dieciseis")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "shopbot", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/shopbot?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
