package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/salonmobile/booking-engine/internal/domain"
	"github.com/salonmobile/booking-engine/pkg/types"
)

// Config is the full service configuration, loaded once at startup
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Geocoder GeocoderConfig `toml:"geocoder"`
	Sweep    SweepConfig    `toml:"sweep"`
	Auth     AuthConfig     `toml:"auth"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig logger settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig selects the reservation store backend
type StorageConfig struct {
	// Driver is "postgres" or "local"
	Driver string `toml:"driver"`
	// Path of the local store file, used when Driver is "local"
	Path string `toml:"path"`
}

// DatabaseConfig Postgres connection settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the Postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GeocoderConfig settings of the outbound address lookup
type GeocoderConfig struct {
	BaseURL      string `toml:"base_url"`
	Timeout      int    `toml:"timeout"`
	Limit        int    `toml:"limit"`
	CountryCodes string `toml:"country_codes"`
	Language     string `toml:"language"`
	UserAgent    string `toml:"user_agent"`
}

// SweepConfig periodic purge settings
type SweepConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
}

// AuthConfig admin surface settings
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// BusinessConfig business hours, geography and the service catalog
type BusinessConfig struct {
	Open       string `toml:"open"`
	Close      string `toml:"close"`
	BreakStart string `toml:"break_start"`
	BreakEnd   string `toml:"break_end"`

	Base     CoordinateConfig `toml:"base"`
	Zone     ZoneConfig       `toml:"zone"`
	Services []ServiceConfig  `toml:"services"`
}

// CoordinateConfig a latitude/longitude pair
type CoordinateConfig struct {
	Lat float64 `toml:"lat"`
	Lng float64 `toml:"lng"`
}

// ZoneConfig the serviceable disc: center plus radius
type ZoneConfig struct {
	Lat      float64 `toml:"lat"`
	Lng      float64 `toml:"lng"`
	RadiusKm float64 `toml:"radius_km"`
}

// ServiceConfig one catalog entry
type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	Category        string  `toml:"category"`
	DurationMinutes int     `toml:"duration_minutes"`
	Price           float64 `toml:"price"`
}

// Load reads and validates the configuration file. Malformed configuration
// is rejected here rather than deep inside scheduling logic.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration eagerly at load time
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535]")
	}

	switch c.Storage.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("database.host and database.dbname are required for the postgres driver")
		}
	case "local":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the local driver")
		}
	default:
		return fmt.Errorf("storage.driver must be \"postgres\" or \"local\", got %q", c.Storage.Driver)
	}

	if c.Geocoder.BaseURL == "" {
		return fmt.Errorf("geocoder.base_url is required")
	}
	if c.Geocoder.Limit <= 0 {
		return fmt.Errorf("geocoder.limit must be positive")
	}

	if c.Sweep.IntervalSeconds <= 0 {
		return fmt.Errorf("sweep.interval_seconds must be positive")
	}

	if _, err := c.Business.Hours(); err != nil {
		return err
	}
	if _, err := c.Business.Catalog(); err != nil {
		return err
	}

	if c.Business.Zone.RadiusKm <= 0 {
		return fmt.Errorf("business.zone.radius_km must be positive")
	}

	return nil
}

// Hours converts the configured schedule into the domain type
func (b BusinessConfig) Hours() (domain.BusinessHours, error) {
	hours := domain.BusinessHours{
		Open:       types.TimeString(b.Open),
		Close:      types.TimeString(b.Close),
		BreakStart: types.TimeString(b.BreakStart),
		BreakEnd:   types.TimeString(b.BreakEnd),
	}
	if err := hours.Validate(); err != nil {
		return domain.BusinessHours{}, err
	}
	return hours, nil
}

// Catalog converts the configured services into the domain catalog,
// rejecting duplicate ids and unknown categories
func (b BusinessConfig) Catalog() (domain.ServiceCatalog, error) {
	if len(b.Services) == 0 {
		return nil, fmt.Errorf("business.services must not be empty")
	}

	seen := make(map[string]struct{}, len(b.Services))
	catalog := make(domain.ServiceCatalog, 0, len(b.Services))

	for _, s := range b.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("business.services: id is required")
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("business.services: duplicate id %q", s.ID)
		}
		seen[s.ID] = struct{}{}

		category, err := domain.ParseServiceCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("business.services[%s]: %w", s.ID, err)
		}

		if s.DurationMinutes < domain.MinServiceDurationMinutes ||
			s.DurationMinutes > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("business.services[%s]: duration_minutes %d out of range [%d, %d]",
				s.ID, s.DurationMinutes, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}

		catalog = append(catalog, domain.ServiceDefinition{
			ID:              s.ID,
			Name:            s.Name,
			Category:        category,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}

	return catalog, nil
}

// BaseLocation returns the provider's home base as a domain point
func (b BusinessConfig) BaseLocation() domain.GeoPoint {
	return domain.GeoPoint{Lat: b.Base.Lat, Lng: b.Base.Lng}
}

// ZoneCenter returns the service-area center as a domain point
func (b BusinessConfig) ZoneCenter() domain.GeoPoint {
	return domain.GeoPoint{Lat: b.Zone.Lat, Lng: b.Zone.Lng}
}
