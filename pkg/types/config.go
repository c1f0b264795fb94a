package types

import "errors"

// Config holds the parameters needed to open the record store and reach the
// remote backup document store.
type Config struct {
	// DataDir is the directory holding the SQLite database file.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// RedisAddr is the host:port of the remote document store used for
	// cloud backup. Empty disables the remote gateway.
	RedisAddr string `json:"redis_addr" yaml:"redis_addr"`

	// RedisPassword authenticates against the document store, if set.
	RedisPassword string `json:"redis_password" yaml:"redis_password"`

	// RedisDB selects the logical database on the document store.
	RedisDB int `json:"redis_db" yaml:"redis_db"`

	// Debug switches logging to development output at debug level.
	Debug bool `json:"debug" yaml:"debug"`
}

// Config validation errors.
var ErrDataDirEmpty = errors.New("data_dir must not be empty")

// Validate checks that the Config is well-formed, returning a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
