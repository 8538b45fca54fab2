package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultEnvFile            = ".env"
	defaultMaxRequestBodySize = "100KB"
	defaultAPIKeyHeader       = "X-API-Key"
	defaultQueryTimeout       = 5 * time.Second
	defaultPageLimit          = 50
	defaultMaxPageLimit       = 500
	defaultRefreshInterval    = time.Minute
	defaultCacheTTL           = 30 * time.Second
	defaultMetricsPath        = "/metrics"

	// StorageDriverPostgres reads from PostgreSQL.
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory serves a YAML fixture from memory.
	StorageDriverMemory = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the repository implementation
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Database holds a DSN; when set it takes precedence over the Postgres block
	Database struct {
		URL string `json:"url" yaml:"url"`
	} `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// API holds the static key protecting search endpoints
	API APIConfig `json:"api" yaml:"api"`

	Query QueryConfig `json:"query" yaml:"query"`

	Hierarchy HierarchyConfig `json:"hierarchy" yaml:"hierarchy"`

	// Cache configuration for search result caching in Redis
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines where organizations are read from
type StorageConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// FixturePath is the YAML fixture served by the memory driver
	FixturePath string `json:"fixturePath" yaml:"fixturePath"`
}

// APIConfig defines the static API key check
type APIConfig struct {
	// Key is the plain shared secret
	Key string `json:"key" yaml:"key"`

	// KeyHash is a bcrypt hash of the secret; preferred over Key when set
	KeyHash string `json:"keyHash" yaml:"keyHash"`

	// Header carrying the caller key
	Header string `json:"header" yaml:"header"`
}

// QueryConfig bounds search execution
type QueryConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	DefaultLimit int           `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int           `json:"maxLimit" yaml:"maxLimit"`
}

// HierarchyConfig controls the activity closure snapshot
type HierarchyConfig struct {
	// RefreshInterval is the maximum age of the closure snapshot
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// CacheConfig defines the Redis search cache
type CacheConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Export .env entries (if any) before reading the environment
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: DATABASE_URL -> database.url, API_KEYHASH -> api.keyHash
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads and validates the service configuration.
func New() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the configuration and applies defaults without validating it.
// Tools that never serve requests, such as the seeder, use it directly.
func Load() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if strings.TrimSpace(cfg.API.Header) == "" {
		cfg.API.Header = defaultAPIKeyHeader
	}
	if cfg.Query.Timeout <= 0 {
		cfg.Query.Timeout = defaultQueryTimeout
	}
	if cfg.Query.DefaultLimit <= 0 {
		cfg.Query.DefaultLimit = defaultPageLimit
	}
	if cfg.Query.MaxLimit <= 0 {
		cfg.Query.MaxLimit = defaultMaxPageLimit
	}
	if cfg.Query.DefaultLimit > cfg.Query.MaxLimit {
		cfg.Query.DefaultLimit = cfg.Query.MaxLimit
	}
	if cfg.Hierarchy.RefreshInterval <= 0 {
		cfg.Hierarchy.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Cache != nil && cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// Validate rejects configurations the service cannot start with.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.API.Key) == "" && strings.TrimSpace(cfg.API.KeyHash) == "" {
		return errors.New("api.key or api.keyHash must be configured")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Database.URL == "" && cfg.Postgres == nil {
			return errors.New("postgres storage requires database.url or a postgres block")
		}
	case StorageDriverMemory:
		if cfg.Storage.FixturePath == "" {
			return errors.New("memory storage requires storage.fixturePath")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	if cfg.Cache != nil && cfg.Cache.Enabled && cfg.Cache.Addr == "" {
		return errors.New("cache.addr is required when the cache is enabled")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
