package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
file = ""
level = "info"

[metrics]
enabled = false
path = "/metrics"
service_name = "booking-engine"

[storage]
driver = "local"
path = "data/reservations.db"

[geocoder]
base_url = "https://nominatim.openstreetmap.org"
timeout = 10
limit = 1
country_codes = "fr"
language = "fr"
user_agent = "booking-engine/test"

[sweep]
interval_seconds = 60

[auth]
admin_token = "secret"

[business]
open = "09:00"
close = "19:00"
break_start = "12:00"
break_end = "13:00"

[business.base]
lat = 50.7859
lng = 2.6743

[business.zone]
lat = 50.7897
lng = 2.5947
radius_km = 20.0

[[business.services]]
id = "soin-visage"
name = "Soin du visage"
category = "face"
duration_minutes = 120
price = 45.0

[[business.services]]
id = "manucure"
name = "Manucure"
category = "nails"
duration_minutes = 90
price = 35.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "secret", cfg.Auth.AdminToken)
	assert.Equal(t, 60, cfg.Sweep.IntervalSeconds)

	hours, err := cfg.Business.Hours()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), hours.Open)
	assert.Equal(t, types.TimeString("13:00"), hours.BreakEnd)

	catalog, err := cfg.Business.Catalog()
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	service, ok := catalog.ByID("soin-visage")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryFace, service.Category)
	assert.Equal(t, 120, service.DurationMinutes)

	assert.Equal(t, 50.7897, cfg.Business.ZoneCenter().Lat)
	assert.Equal(t, 2.6743, cfg.Business.BaseLocation().Lng)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_UnknownStorageDriver(t *testing.T) {
	content := validConfig
	cfg := writeConfig(t, replaceOnce(t, content, `driver = "local"`, `driver = "redis"`))
	_, err := Load(cfg)
	assert.ErrorContains(t, err, "storage.driver")
}

func TestLoad_DuplicateServiceID(t *testing.T) {
	cfg := writeConfig(t, replaceOnce(t, validConfig, `id = "manucure"`, `id = "soin-visage"`))
	_, err := Load(cfg)
	assert.ErrorContains(t, err, "duplicate id")
}

func TestLoad_UnknownCategory(t *testing.T) {
	cfg := writeConfig(t, replaceOnce(t, validConfig, `category = "nails"`, `category = "massage"`))
	_, err := Load(cfg)
	assert.Error(t, err)
}

func TestLoad_BadBusinessHours(t *testing.T) {
	// Перерыв за пределами рабочего дня
	cfg := writeConfig(t, replaceOnce(t, validConfig, `break_start = "12:00"`, `break_start = "20:00"`))
	_, err := Load(cfg)
	assert.Error(t, err)
}

func TestLoad_PostgresDriverRequiresDatabase(t *testing.T) {
	cfg := writeConfig(t, replaceOnce(t, validConfig, `driver = "local"`, `driver = "postgres"`))
	_, err := Load(cfg)
	assert.ErrorContains(t, err, "database.host")
}

func TestLoad_NonPositiveSweepInterval(t *testing.T) {
	cfg := writeConfig(t, replaceOnce(t, validConfig, `interval_seconds = 60`, `interval_seconds = 0`))
	_, err := Load(cfg)
	assert.ErrorContains(t, err, "sweep.interval_seconds")
}

func replaceOnce(t *testing.T, content, old, new string) string {
	t.Helper()
	require.Contains(t, content, old)
	return strings.Replace(content, old, new, 1)
}
