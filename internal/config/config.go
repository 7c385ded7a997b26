package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Store    StoreConfig    `mapstructure:"store"    validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// StoreConfig selects the persistence backend for countries and persons.
type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory postgres"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL is only consulted by the postgres driver.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"                 validate:"omitempty,url"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"      validate:"gte=1"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"      validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_m" validate:"gte=1"`
}

// SeedConfig controls loading of the bundled countries and persons on startup.
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
