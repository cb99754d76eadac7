package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Sibghat34/shippo-api/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		App     App     `yaml:"app"     env-prefix:"APP_"`
		Logger  Logger  `yaml:"logger"  env-prefix:"LOGGER_"`
		HTTP    HTTP    `yaml:"http"    env-prefix:"HTTP_"`
		Shippo  Shippo  `yaml:"shippo"  env-prefix:"SHIPPO_"`
		Label   Label   `yaml:"label"   env-prefix:"LABEL_"`
		Metrics Metrics `yaml:"metrics" env-prefix:"METRICS_"`
		Env     string  `yaml:"env"                          env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `yaml:"name"    env:"NAME"    validate:"required" env-default:"shipping-label-service"`
		Version string `yaml:"version" env:"VERSION" validate:"required" env-default:"1.0.0"`
	}

	HTTP struct {
		Host              string        `yaml:"host"                env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `yaml:"port"                env:"PORT"                validate:"required,numeric"         env-default:"8000"`
		AllowedOrigin     string        `yaml:"allowed_origin"      env:"ALLOWED_ORIGIN"      validate:"required,url"             env-default:"http://localhost:5173"`
		ReadTimeout       time.Duration `yaml:"read_timeout"        env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `yaml:"write_timeout"       env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=2m"          env-default:"60s"`
		IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=5m"          env-default:"60s"`
		ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s"         env-default:"10s"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
		RequestTimeout    time.Duration `yaml:"request_timeout"     env:"REQUEST_TIMEOUT"     validate:"gte=100ms,lte=2m"         env-default:"30s"`
	}

	Shippo struct {
		APIKey     string        `yaml:"api_key"     env:"API"         validate:"required"`
		BaseURL    string        `yaml:"base_url"    env:"BASE_URL"    validate:"required,url"     env-default:"https://api.goshippo.com"`
		APIVersion string        `yaml:"api_version" env:"API_VERSION" validate:"required"         env-default:"2018-02-08"`
		Timeout    time.Duration `yaml:"timeout"     env:"TIMEOUT"     validate:"gte=100ms,lte=2m" env-default:"25s"`
	}

	Label struct {
		FileType    string                 `yaml:"file_type" env:"FILE_TYPE" validate:"oneof=PNG PNG_2.3x7.5 PDF PDF_2.3x7.5 PDF_4x6 PDF_4x8 PDF_A4 PDF_A5 PDF_A6 ZPLII" env-default:"PDF"`
		Origin      entity.AddressTemplate `yaml:"origin"`
		Destination entity.AddressTemplate `yaml:"destination"`
		Parcel      entity.ParcelTemplate  `yaml:"parcel"`
	}

	Metrics struct {
		Host              string        `yaml:"host"                env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `yaml:"port"                env:"PORT"                validate:"required,numeric"         env-default:"9090"`
		ReadTimeout       time.Duration `yaml:"read_timeout"        env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `yaml:"write_timeout"       env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Logger struct {
		Level      string `yaml:"level"       env:"LEVEL"       env-default:"info"                     validate:"oneof=debug info warn error"`
		Filename   string `yaml:"filename"    env:"FILENAME"    env-default:"./logs/label-service.log"`
		MaxSize    int    `yaml:"max_size"    env:"MAX_SIZE"    env-default:"100"                      validate:"min=1,max=1000"`
		MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS" env-default:"3"                        validate:"min=0,max=20"`
		MaxAge     int    `yaml:"max_age"     env:"MAX_AGE"     env-default:"28"                       validate:"min=1,max=365"`
	}
)

// Default returns a configuration with the label templates prefilled. Values
// read from the config file and environment are layered on top of it.
func Default() Config {
	return Config{
		Label: Label{
			Origin:      entity.DefaultOriginTemplate(),
			Destination: entity.DefaultDestinationTemplate(),
			Parcel:      entity.DefaultParcelTemplate(),
		},
	}
}

func Load() (*Config, error) {
	// .env is optional; it usually only carries SHIPPO_API.
	_ = godotenv.Load()

	path := fetchConfigPath()
	if path == "" {
		return nil, entity.ErrConfigPathNotSet
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	cfg := Default()
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			validationErrors := make([]string, 0, len(validationErrs))
			for _, ve := range validationErrs {
				validationErrors = append(validationErrors,
					fmt.Sprintf("%s=%v must satisfy '%s'", ve.Namespace(), ve.Value(), ve.Tag()))
			}
			return fmt.Errorf("config validation: %v", strings.Join(validationErrors, "; "))
		}
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

func fetchConfigPath() string {
	var path string
	if f := flag.Lookup("config"); f != nil {
		path = f.Value.String()
	} else {
		flag.StringVar(&path, "config", "", "Path to config file")
		flag.Parse()
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
