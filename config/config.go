package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/nadoran78/mytable/internal/domain/constants"

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
	defaultMaxRequestBodySize = "100KB"
	defaultTokenTTL           = 24 * time.Hour
	defaultBcryptCost         = 10
	defaultArrivalWindow      = 10 * time.Minute
	defaultSweepSchedule      = "0 5 0 * * *"
	defaultSweepLockTTL       = 10 * time.Minute
	defaultQRCodeSize         = 256
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

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Reservation holds the lifecycle rules (windows, transition policy, business timezone)
	Reservation *ReservationConfig `json:"reservation" yaml:"reservation"`

	// Sweep configures the nightly no-show job
	Sweep *SweepConfig `json:"sweep" yaml:"sweep"`

	// Redis backs the rate limiter and the sweep lock; both are skipped when nil
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Notification selects the event transport between the API and the worker
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// SMS gateway credentials, used by the worker only
	SMS *SMSConfig `json:"sms" yaml:"sms"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for check-in codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines identity token and credential settings
type AuthConfig struct {
	TokenSecret string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL    time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	HeaderName  string        `json:"headerName" yaml:"headerName"`
	BcryptCost  int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// ReservationConfig defines the reservation lifecycle rules
type ReservationConfig struct {
	// Reservations must be dated strictly before today + BookingWindowMonths
	BookingWindowMonths int `json:"bookingWindowMonths" yaml:"bookingWindowMonths"`

	// Arrival check is accepted within dateTime +/- ArrivalWindow (inclusive)
	ArrivalWindow time.Duration `json:"arrivalWindow" yaml:"arrivalWindow"`

	// StrictTransitions restricts confirm/reject to WAITING and forbids leaving terminal states
	StrictTransitions bool `json:"strictTransitions" yaml:"strictTransitions"`

	// Timezone of the restaurants, e.g. "Asia/Seoul"; empty means the process local zone
	Timezone string `json:"timezone" yaml:"timezone"`

	location *time.Location
}

// Location returns the resolved business timezone.
func (r *ReservationConfig) Location() *time.Location {
	if r == nil || r.location == nil {
		return time.Local
	}

	return r.location
}

// SweepConfig defines the no-show sweep schedule
type SweepConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Schedule is a six-field cron expression (with seconds) evaluated in the reservation timezone
	Schedule string `json:"schedule" yaml:"schedule"`

	// LockTTL bounds how long a crashed instance can hold the sweep lock
	LockTTL time.Duration `json:"lockTTL" yaml:"lockTTL"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	TLS      bool   `json:"tls" yaml:"tls"`
}

// RateLimitConfig defines the token bucket applied to public and kiosk endpoints
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
}

// NotificationConfig defines how reservation messages travel to the worker
type NotificationConfig struct {
	// Provider type: "none", "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQPURL and Queue are used by the rabbitmq provider and the worker consumer
	AMQPURL string `json:"amqpUrl" yaml:"amqpUrl"`
	Queue   string `json:"queue" yaml:"queue"`

	// BaseURL prefixes the detail links embedded in message texts
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// SMSConfig defines the SMS gateway account
type SMSConfig struct {
	Endpoint     string        `json:"endpoint" yaml:"endpoint"`
	APIKey       string        `json:"apiKey" yaml:"apiKey"`
	APISecret    string        `json:"apiSecret" yaml:"apiSecret"`
	CallerNumber string        `json:"callerNumber" yaml:"callerNumber"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// WorkerConfig defines the notification worker HTTP endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
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

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never nil-check them.
func applyDefaults(cfg *Config) error {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.HeaderName == "" {
		cfg.Auth.HeaderName = constants.DefaultAuthHeader
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	if cfg.Reservation == nil {
		cfg.Reservation = &ReservationConfig{}
	}
	if cfg.Reservation.BookingWindowMonths <= 0 {
		cfg.Reservation.BookingWindowMonths = 1
	}
	if cfg.Reservation.ArrivalWindow <= 0 {
		cfg.Reservation.ArrivalWindow = defaultArrivalWindow
	}
	if cfg.Reservation.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Reservation.Timezone)
		if err != nil {
			return errors.Wrapf(err, "invalid reservation timezone %q", cfg.Reservation.Timezone)
		}
		cfg.Reservation.location = loc
	}

	if cfg.Sweep == nil {
		cfg.Sweep = &SweepConfig{Enabled: true}
	}
	if cfg.Sweep.Schedule == "" {
		cfg.Sweep.Schedule = defaultSweepSchedule
	}
	if cfg.Sweep.LockTTL <= 0 {
		cfg.Sweep.LockTTL = defaultSweepLockTTL
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{Provider: constants.PubSubProviderNone}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
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
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
