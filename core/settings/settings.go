package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables read by the store.
const EnvPrefix = "TOOLKIT"

const (
	fileName         = "settings"
	connectionPrefix = "connection_strings."
)

// Getter reads named settings.
type Getter interface {
	// Get returns the value of key and whether it is set.
	Get(key string) (string, bool)
}

// Setter writes named settings.
type Setter interface {
	// Set stores value under key for the lifetime of the store.
	Set(key, value string)
}

// ConnectionStrings resolves connection strings by name.
type ConnectionStrings interface {
	// ConnectionString returns the connection string registered as name.
	ConnectionString(name string) (string, bool)
}

// Store is a viper-backed settings store.
type Store struct {
	v   *viper.Viper
	dir string
}

// New returns an empty store that only reads the environment.
func New() *Store {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Store{v: v, dir: "."}
}

// Load builds a store from dir: settings.yaml if present, then .env, then
// the environment. A .env entry TOOLKIT_API_KEY answers both api.key and
// api_key, matching how the live environment resolves the same variable.
func Load(dir string) (*Store, error) {
	env, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	s := New()
	s.dir = dir
	s.v.SetConfigName(fileName)
	s.v.SetConfigType("yaml")
	s.v.AddConfigPath(dir)
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	// .env entries override settings.yaml but not the live environment.
	overlay := map[string]any{}
	for k, val := range env {
		key, ok := strings.CutPrefix(k, EnvPrefix+"_")
		if !ok {
			continue
		}
		nest(overlay, strings.Split(envToKey(key), "."), val)
		if flat := strings.ToLower(key); strings.Contains(flat, "_") {
			if _, taken := overlay[flat]; !taken {
				overlay[flat] = val
			}
		}
	}
	if err := s.v.MergeConfigMap(overlay); err != nil {
		return nil, fmt.Errorf("failed to merge .env: %w", err)
	}
	return s, nil
}

// Get returns the value of key and whether it is set.
func (s *Store) Get(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set stores value under key, overriding every other source.
func (s *Store) Set(key, value string) {
	s.v.Set(key, value)
}

// ConnectionString returns the connection string registered as name.
func (s *Store) ConnectionString(name string) (string, bool) {
	return s.Get(connectionPrefix + name)
}

// Save writes every key known to the store, .env values included, to
// settings.yaml in the store directory.
func (s *Store) Save() error {
	if err := s.v.WriteConfigAs(filepath.Join(s.dir, fileName+".yaml")); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Keys lists every key known to the store from files and Set calls.
func (s *Store) Keys() []string {
	return s.v.AllKeys()
}

// envToKey maps CONNECTION_STRINGS_MAIN to connection_strings.main.
func envToKey(k string) string {
	k = strings.ToLower(k)
	if rest, ok := strings.CutPrefix(k, "connection_strings_"); ok {
		return connectionPrefix + rest
	}
	return strings.ReplaceAll(k, "_", ".")
}

func nest(m map[string]any, path []string, val string) {
	for _, p := range path[:len(path)-1] {
		child, ok := m[p].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[p] = child
		}
		m = child
	}
	m[path[len(path)-1]] = val
}
