package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

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

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for the Firestore record store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Calendar configuration for the door trigger channel
	Calendar *CalendarConfig `json:"calendar" yaml:"calendar"`

	// Access configuration for record collections and local time handling
	Access *AccessConfig `json:"access" yaml:"access"`

	// QRCode configuration for pass rendering
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// RateLimit configuration for the public verify endpoint
	RateLimit *RateLimitConfig `json:"ratelimit" yaml:"ratelimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project backing the record store.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// CalendarConfig defines the door-control calendar channel that downstream
// automation watches for unlock events.
type CalendarConfig struct {
	// CalendarID identifies the physical door-control channel, not any
	// reservation's own room.
	CalendarID      string        `json:"calendarId" yaml:"calendarId"`
	CredentialsPath string        `json:"credentialsPath" yaml:"credentialsPath"`
	EventSpan       time.Duration `json:"eventSpan" yaml:"eventSpan"`
	EmitTimeout     time.Duration `json:"emitTimeout" yaml:"emitTimeout"`
}

// AccessConfig defines access-record collection names and the location used
// to interpret reservation wall-clock times.
type AccessConfig struct {
	Timezone              string `json:"timezone" yaml:"timezone"`
	ReservationCollection string `json:"reservationCollection" yaml:"reservationCollection"`
	TemporaryCollection   string `json:"temporaryCollection" yaml:"temporaryCollection"`
}

// QRCodeConfig defines QR pass rendering parameters.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// RateLimitConfig throttles the unauthenticated verify endpoint.
type RateLimitConfig struct {
	Rate  float64 `json:"rate" yaml:"rate"`
	Burst int     `json:"burst" yaml:"burst"`
}

// LoadWithEnv loads .yaml files through koanf, with environment variables
// taking precedence over file values.
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Environment variables map onto config paths by lowercasing and
	// splitting on underscores. Example: CALENDAR_EVENTSPAN -> calendar.eventspan
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Access == nil {
		cfg.Access = &AccessConfig{}
	}
	if cfg.Access.ReservationCollection == "" {
		cfg.Access.ReservationCollection = "reservations"
	}
	if cfg.Access.TemporaryCollection == "" {
		cfg.Access.TemporaryCollection = "temporaryAccess"
	}

	if cfg.Calendar != nil {
		if cfg.Calendar.EventSpan <= 0 {
			cfg.Calendar.EventSpan = 5 * time.Minute
		}
		if cfg.Calendar.EmitTimeout <= 0 {
			cfg.Calendar.EmitTimeout = 10 * time.Second
		}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{Rate: 10, Burst: 20}
	}
}

// Location resolves the configured reservation timezone, defaulting to the
// process-local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Access == nil || strings.TrimSpace(c.Access.Timezone) == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Access.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %s failed", c.Access.Timezone)
	}

	return loc, nil
}
