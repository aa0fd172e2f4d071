package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"LUXEGEM_APP_NAME":                os.Getenv("LUXEGEM_APP_NAME"),
		"LUXEGEM_APP_ENV":                 os.Getenv("LUXEGEM_APP_ENV"),
		"LUXEGEM_APP_PORT":                os.Getenv("LUXEGEM_APP_PORT"),
		"LUXEGEM_DATABASE_HOST":           os.Getenv("LUXEGEM_DATABASE_HOST"),
		"LUXEGEM_DATABASE_PORT":           os.Getenv("LUXEGEM_DATABASE_PORT"),
		"LUXEGEM_DATABASE_USER":           os.Getenv("LUXEGEM_DATABASE_USER"),
		"LUXEGEM_DATABASE_PASSWORD":       os.Getenv("LUXEGEM_DATABASE_PASSWORD"),
		"LUXEGEM_DATABASE_DBNAME":         os.Getenv("LUXEGEM_DATABASE_DBNAME"),
		"LUXEGEM_DATABASE_SSLMODE":        os.Getenv("LUXEGEM_DATABASE_SSLMODE"),
		"LUXEGEM_DATABASE_MAX_OPEN_CONNS": os.Getenv("LUXEGEM_DATABASE_MAX_OPEN_CONNS"),
		"LUXEGEM_DATABASE_MAX_IDLE_CONNS": os.Getenv("LUXEGEM_DATABASE_MAX_IDLE_CONNS"),
		"LUXEGEM_JWT_SECRET":              os.Getenv("LUXEGEM_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "luxegem-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "luxegem", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	})

	t.Run("loads values from environment variables with LUXEGEM prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXEGEM_APP_NAME", "test-app")
		os.Setenv("LUXEGEM_APP_PORT", "9000")
		os.Setenv("LUXEGEM_DATABASE_HOST", "testdb.local")
		os.Setenv("LUXEGEM_DATABASE_PORT", "5433")
		os.Setenv("LUXEGEM_DATABASE_USER", "testuser")
		os.Setenv("LUXEGEM_DATABASE_PASSWORD", "testpass")
		os.Setenv("LUXEGEM_DATABASE_DBNAME", "testdb")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXEGEM_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("LUXEGEM_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("LUXEGEM_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "luxegem",
		Password: "p@ss/word",
		DBName:   "invoices",
		SSLMode:  "require",
	}

	dsn := d.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in credentials must survive URL escaping.
	assert.Contains(t, dsn, "p%40ss%2Fword")
}
