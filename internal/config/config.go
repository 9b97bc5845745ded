// Configuration is loaded from a yaml file placed on the server. Unknown keys are
// rejected so that typos are noticed at startup, and Validate checks the values
// against the rules of this service.

package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eurofurence/reg-ukrpay-service/internal/common"
)

type DatabaseType string

const (
	Inmemory DatabaseType = "inmemory"
	Mysql    DatabaseType = "mysql"
	Bolt     DatabaseType = "bolt"
)

type (
	Application struct {
		Service  ServiceConfig  `yaml:"service"`
		Server   ServerConfig   `yaml:"server"`
		Database DatabaseConfig `yaml:"database"`
		Security SecurityConfig `yaml:"security"`
		Logging  LoggingConfig  `yaml:"logging"`
	}

	ServiceConfig struct {
		Name            string `yaml:"name"`
		DefaultVersion  string `yaml:"default_version"`
		DefaultCurrency string `yaml:"default_currency"`
		FormKey         string `yaml:"form_key"`
		ImageSize       int    `yaml:"image_size"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	DatabaseConfig struct {
		Use        DatabaseType `yaml:"use"`
		Username   string       `yaml:"username"`
		Password   string       `yaml:"password"`
		Database   string       `yaml:"database"`
		Parameters []string     `yaml:"parameters"`
		BoltFile   string       `yaml:"bolt_file"`
	}

	SecurityConfig struct {
		Fixed FixedTokenConfig `yaml:"fixed_token"`
		Cors  CorsConfig       `yaml:"cors"`
	}

	FixedTokenConfig struct {
		Api string `yaml:"api"`
	}

	CorsConfig struct {
		DisableCors bool   `yaml:"disable"`
		AllowOrigin string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
	}
)

func UnmarshalFromYamlConfiguration(r io.Reader) (*Application, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	applyDefaults(conf)

	return conf, nil
}

func LoadConfiguration(path string) (*Application, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return UnmarshalFromYamlConfiguration(f)
}

func applyDefaults(conf *Application) {
	if conf.Service.Name == "" {
		conf.Service.Name = common.ApplicationName
	}
	if conf.Service.DefaultVersion == "" {
		conf.Service.DefaultVersion = "002"
	}
	if conf.Service.DefaultCurrency == "" {
		conf.Service.DefaultCurrency = "UAH"
	}
	if conf.Service.FormKey == "" {
		conf.Service.FormKey = "nbu_qr_generator_data"
	}
	if conf.Service.ImageSize == 0 {
		conf.Service.ImageSize = 1000
	}
	if conf.Database.Use == "" {
		conf.Database.Use = Inmemory
	}
	if conf.Logging.Severity == "" {
		conf.Logging.Severity = "INFO"
	}
}
