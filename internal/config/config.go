package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Export       ExportConfig       `mapstructure:"export"`
	Server       ServerConfig       `mapstructure:"server"`
}

// DictionariesConfig selects where the manifest and word lists are read from.
// BaseURL takes precedence over Directory, and the embedded lists are used when
// neither is set.
type DictionariesConfig struct {
	Directory      string `mapstructure:"directory" validate:"omitempty,dir"`
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	CacheDirectory string `mapstructure:"cache_directory"`
}

type ExportConfig struct {
	Locale          string `mapstructure:"locale" validate:"required,locale"`
	OutputDirectory string `mapstructure:"output_directory" validate:"required"`
}

// LocaleTag returns the parsed locale. Load has already validated it.
func (c ExportConfig) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Japanese
	}
	return tag
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dictionary-vcf")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Word lists are embedded in the binary unless a directory or URL is given
	v.SetDefault("dictionaries.directory", "")
	v.SetDefault("dictionaries.base_url", "")
	v.SetDefault("dictionaries.cache_directory", "")
	v.SetDefault("export.locale", "ja")
	v.SetDefault("export.output_directory", ".")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:5173"})

	if err := v.BindEnv("dictionaries.base_url", "DICTIONARY_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTIONARY_BASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
