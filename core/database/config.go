package database

// Config holds connection pool settings applied to every connection string
// opened through the settings store.
type Config struct {
	// TimeoutSeconds bounds the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// MaxIdleConns is the idle pool size.
	MaxIdleConns int `mapstructure:"max_idle_conns" default:"2"`
	// MaxOpenConns caps open connections.
	MaxOpenConns int `mapstructure:"max_open_conns" default:"10"`
}
