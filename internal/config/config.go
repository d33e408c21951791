package config

import (
	stderrors "errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/controls/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "controls.yaml"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultWSPath is the default path of the live event channel.
	DefaultWSPath = "/live"

	// DefaultMetricsPath is the default Prometheus scrape path.
	DefaultMetricsPath = "/metrics"

	// DefaultTitle is the default gallery page title.
	DefaultTitle = "vango controls"

	// DefaultPublishDir is the default output directory of publish.
	DefaultPublishDir = "dist"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = stderrors.New("invalid configuration")

// Config represents the complete controls.yaml configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Gallery GalleryConfig `yaml:"gallery"`
	Publish PublishConfig `yaml:"publish"`
	Log     LogConfig     `yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the live gallery server.
type ServerConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"min=1,max=65535"`

	// MetricsPath is where Prometheus metrics are served.
	MetricsPath string `yaml:"metrics_path" validate:"required,startswith=/"`

	// WSPath is the websocket endpoint of live sessions.
	WSPath string `yaml:"ws_path" validate:"required,startswith=/"`

	// ReadBuffer and WriteBuffer size the websocket buffers in bytes.
	ReadBuffer  int `yaml:"read_buffer" validate:"min=0"`
	WriteBuffer int `yaml:"write_buffer" validate:"min=0"`
}

// GalleryConfig configures the gallery page.
type GalleryConfig struct {
	Title string `yaml:"title"`
}

// PublishConfig selects where publish writes the rendered gallery.
// S3 wins over Dir when a bucket is set.
type PublishConfig struct {
	Dir string   `yaml:"dir"`
	S3  S3Config `yaml:"s3"`
}

// S3Config configures the S3 publish target.
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region" validate:"required_with=Bucket"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			MetricsPath: DefaultMetricsPath,
			WSPath:      DefaultWSPath,
			ReadBuffer:  1024,
			WriteBuffer: 4096,
		},
		Gallery: GalleryConfig{Title: DefaultTitle},
		Publish: PublishConfig{Dir: DefaultPublishDir},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads controls.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	var ce *errors.Error
	if errors.As(err, &ce) && ce.Code == "C101" {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path. Fields absent
// from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C101").
				WithDetail("No " + ConfigFileName + " found at " + path).
				Wrap(err)
		}
		return nil, errors.New("C102").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C102").
			WithLocationFromYAML(path, err).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.FromError(err, "C103").WithLocation(path, 0)
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("C104").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("C104").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields set to their zero value
// in the file.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = DefaultMetricsPath
	}
	if c.Server.WSPath == "" {
		c.Server.WSPath = DefaultWSPath
	}
	if c.Gallery.Title == "" {
		c.Gallery.Title = DefaultTitle
	}
	if c.Publish.Dir == "" {
		c.Publish.Dir = DefaultPublishDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks the configuration. The returned error wraps
// ErrInvalidConfig and names every offending field.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, describe(fe))
	}
	sort.Strings(fields)
	return errors.New("C103").
		WithDetail(strings.Join(fields, "; ")).
		Wrap(fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, "; ")))
}

// describe renders a field error as "server.port: must be at most 65535".
func describe(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}

	var msg string
	switch fe.Tag() {
	case "required", "required_with":
		msg = "is required"
	case "min":
		msg = "must be at least " + fe.Param()
	case "max":
		msg = "must be at most " + fe.Param()
	case "oneof":
		msg = "must be one of " + fe.Param()
	case "startswith":
		msg = "must start with " + strconv.Quote(fe.Param())
	case "url":
		msg = "must be a URL"
	default:
		msg = "failed " + fe.Tag()
	}
	return ns + ": " + msg
}

// Address returns the listen address of the server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Exists reports whether dir contains a controls.yaml.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory holding a
// controls.yaml.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("C101").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the configuration of the project containing the
// working directory, or the defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}
