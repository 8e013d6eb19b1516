package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `default_connection: primary
connections:
  primary:
    driver: pgx
    url: postgres://localhost/blog
  replica:
    driver: pgx
    url: postgres://replica.internal/blog
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recordlens.yml"), []byte(content), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd) //nolint:errcheck

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.DefaultConnection)

	conn, err := cfg.Resolve("replica")
	require.NoError(t, err)
	assert.Equal(t, "pgx", conn.Driver)
	assert.Equal(t, "postgres://replica.internal/blog", conn.URL)
}

func TestLoadFromEnvironment(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd) //nolint:errcheck

	t.Setenv("DATABASE_URL", "postgres://localhost/app")

	cfg, err := Load()
	require.NoError(t, err)

	conn, err := cfg.Resolve("default")
	require.NoError(t, err)
	assert.Equal(t, "pgx", conn.Driver)
	assert.Equal(t, "postgres://localhost/app", conn.URL)
}

func TestResolveUnknownConnection(t *testing.T) {
	cfg := &Config{Connections: map[string]Connection{
		"primary": {Driver: "pgx", URL: "postgres://localhost/blog"},
	}}

	_, err := cfg.Resolve("replica")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary")

	empty := &Config{Connections: map[string]Connection{}}
	_, err = empty.Resolve("default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestDriverForURL(t *testing.T) {
	assert.Equal(t, "pgx", driverForURL("postgres://localhost/app"))
	assert.Equal(t, "pgx", driverForURL("postgresql://localhost/app"))
	assert.Equal(t, "sqlite3", driverForURL("blog.db"))
	assert.Equal(t, "sqlite3", driverForURL(":memory:"))
	assert.Equal(t, "pgx", driverForURL("host=localhost dbname=app"))
}
