package config

import (
	"os"
	"path/filepath"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultWorkerPort         = 8081
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
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	// Worker configuration for the alert delivery worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Firebase project settings shared by auth, RTDB, Firestore and messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	LocationStore *LocationStoreConfig `json:"locationStore" yaml:"locationStore"`

	AlertStore *AlertStoreConfig `json:"alertStore" yaml:"alertStore"`

	// Assistant configuration for the generative-AI relay
	Assistant *AssistantConfig `json:"assistant" yaml:"assistant"`

	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// PubSub configuration for SOS event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the alert worker HTTP settings
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// FirebaseConfig defines Firebase project configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// DatabaseURL is the Realtime Database URL, e.g. https://<project>.firebaseio.com
	DatabaseURL string `json:"databaseUrl" yaml:"databaseUrl"`
}

// IdentityConfig selects how bearer tokens are verified.
type IdentityConfig struct {
	// Provider: "firebase", "jwt" (local HS256 tokens) or "mock"
	Provider   string `json:"provider" yaml:"provider"`
	JWTSecret  string `json:"jwtSecret" yaml:"jwtSecret"`
	MockUserID string `json:"mockUserId" yaml:"mockUserId"`
}

// LocationStoreConfig selects the backend holding last-known user locations.
type LocationStoreConfig struct {
	// Provider: "firebase", "redis" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// Path is the RTDB node holding locations keyed by user id
	Path string `json:"path" yaml:"path"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// ReadTimeout bounds a single snapshot read
	ReadTimeout time.Duration `json:"readTimeout" yaml:"readTimeout"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Key      string `json:"key" yaml:"key"`
}

// AlertStoreConfig selects the backend holding SOS alerts and profiles.
type AlertStoreConfig struct {
	// Provider: "firestore" or "memory"
	Provider         string `json:"provider" yaml:"provider"`
	AlertsCollection string `json:"alertsCollection" yaml:"alertsCollection"`
	UsersCollection  string `json:"usersCollection" yaml:"usersCollection"`

	// ActiveWindow is how long an alert stays visible in the nearby feed
	ActiveWindow time.Duration `json:"activeWindow" yaml:"activeWindow"`
}

// AssistantConfig defines the generative-AI provider settings
type AssistantConfig struct {
	// Provider: "gemini" or "fallback"
	Provider        string        `json:"provider" yaml:"provider"`
	APIKey          string        `json:"apiKey" yaml:"apiKey"`
	Model           string        `json:"model" yaml:"model"`
	// Sampling settings; nil keeps the default, so an explicit 0 is honoured
	Temperature     *float32      `json:"temperature" yaml:"temperature"`
	TopP            *float32      `json:"topP" yaml:"topP"`
	TopK            *float32      `json:"topK" yaml:"topK"`
	MaxOutputTokens *int32        `json:"maxOutputTokens" yaml:"maxOutputTokens"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
	Breaker         BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig configures the circuit breaker around the provider
type BreakerConfig struct {
	MaxRequests      uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval         time.Duration `json:"interval" yaml:"interval"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	FailureThreshold uint32        `json:"failureThreshold" yaml:"failureThreshold"`
}

// ProximityConfig defines the nearest-user ranking constants
type ProximityConfig struct {
	Limit         int     `json:"limit" yaml:"limit"`
	EarthRadiusKm float64 `json:"earthRadiusKm" yaml:"earthRadiusKm"`
}

// NotificationConfig selects how the alert worker delivers push notifications.
type NotificationConfig struct {
	// Provider: "firebase" for FCM or "log" to only log deliveries
	Provider string `json:"provider" yaml:"provider"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PublishTimeout bounds a single publish, including the server ack
	PublishTimeout time.Duration `json:"publishTimeout" yaml:"publishTimeout"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// ASSISTANT_APIKEY -> assistant.apiKey
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
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
