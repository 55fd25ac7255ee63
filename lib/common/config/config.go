package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Lexicon           *string `yaml:"lexicon"`
	LexiconFormat     *string `yaml:"lexiconFormat" validate:"required"`
	Output            *string `yaml:"output"`
	PogrebStemMapper  *string `yaml:"pogrebStemMapper" validate:"required"`
	PogrebClassMapper *string `yaml:"pogrebClassMapper" validate:"required"`
	PogrebInMemory    *bool   `yaml:"pogrebInMemory"`
	BaselineLanguage  *string `yaml:"baselineLanguage" validate:"required"`
	Grass             *Grass  `yaml:"grass" validate:"required"`
}

type Grass struct {
	PrefixLength       *int     `yaml:"prefixLength"`
	Alpha              *int     `yaml:"alpha" validate:"required"`
	Delta              *float64 `yaml:"delta" validate:"required"`
	Strict             *bool    `yaml:"strict" validate:"required"`
	Workers            *int     `yaml:"workers" validate:"required"`
	EmitRepresentative *bool    `yaml:"emitRepresentative" validate:"required"`
}

func Init() *Config {
	// * parse arguments
	path := os.Getenv("GRASS_CONFIG_PATH")
	if path == "" {
		path = "config.yml"
	}

	config, err := Load(path)
	if err != nil {
		gut.Fatal("Unable to load configuration", err)
	}

	return config
}

func Load(path string) (*Config, error) {
	// * read config
	yml, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}

	return Parse(yml)
}

func Parse(yml []byte) (*Config, error) {
	// * declare struct
	config := new(Config)

	// * parse config
	if err := yaml.Unmarshal(yml, config); err != nil {
		return nil, fmt.Errorf("parse configuration file: %w", err)
	}

	// * fill defaults
	config.applyDefaults()

	// * validate config
	if err := gut.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (r *Config) applyDefaults() {
	if r.LexiconFormat == nil {
		r.LexiconFormat = ptr("txt")
	}
	if r.PogrebInMemory == nil {
		r.PogrebInMemory = ptr(false)
	}
	if r.BaselineLanguage == nil {
		r.BaselineLanguage = ptr("english")
	}
	if r.Grass == nil {
		r.Grass = new(Grass)
	}
	if r.Grass.Delta == nil {
		r.Grass.Delta = ptr(0.8)
	}
	if r.Grass.Strict == nil {
		r.Grass.Strict = ptr(true)
	}
	if r.Grass.Workers == nil {
		r.Grass.Workers = ptr(runtime.NumCPU())
	}
	if r.Grass.EmitRepresentative == nil {
		r.Grass.EmitRepresentative = ptr(false)
	}
}

func ptr[T any](value T) *T {
	return &value
}
