package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"csdoc/internal/markup"

	"github.com/joho/godotenv"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is written into the project root unless configured.
const DefaultOutputFile = "documentation.html"

type Config struct {
	Project struct {
		Root   string   `yaml:"root"`
		Name   string   `yaml:"name"`   // display name; defaults to the root folder name
		Ignore []string `yaml:"ignore"` // extra directory names to skip
	} `yaml:"project"`
	Output struct {
		File  string `yaml:"file"`
		Mode  string `yaml:"mode"`  // standalone or fragment
		Route string `yaml:"route"` // SPA route used by fragment TOC links
	} `yaml:"output"`
	Catalog struct {
		Path string `yaml:"path"` // optional SQLite snapshot of the items
	} `yaml:"catalog"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Project.Root == "" {
		c.Project.Root = "."
	}
	if c.Output.File == "" {
		c.Output.File = DefaultOutputFile
	}
	if c.Output.Mode == "" {
		c.Output.Mode = markup.ModeStandalone.String()
	}
}

// RenderMode parses Output.Mode.
func (c *Config) RenderMode() (markup.Mode, error) {
	return markup.ParseMode(c.Output.Mode)
}

// LoadConfig reads path, validates it and applies environment overrides.
// A missing file is not an error: defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	var cfg Config
	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := validate(file); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("CSDOC_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if mode := os.Getenv("CSDOC_OUTPUT_MODE"); mode != "" {
		cfg.Output.Mode = mode
	}
	if file := os.Getenv("CSDOC_OUTPUT_FILE"); file != "" {
		cfg.Output.File = file
	}
	if catalog := os.Getenv("CSDOC_CATALOG"); catalog != "" {
		cfg.Catalog.Path = catalog
	}

	cfg.applyDefaults()
	if _, err := cfg.RenderMode(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

const schemaURL = "config.schema.json"

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "project": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "root": {"type": "string"},
        "name": {"type": "string"},
        "ignore": {"type": "array", "items": {"type": "string", "minLength": 1}}
      }
    },
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "file": {"type": "string", "minLength": 1},
        "mode": {"enum": ["standalone", "fragment"]},
        "route": {"type": "string"}
      }
    },
    "catalog": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "path": {"type": "string"}
      }
    }
  }
}`

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(configSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// validate checks the raw YAML against configSchema. The document is
// round-tripped through JSON so the validator sees plain JSON values.
func validate(raw []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	js, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var value interface{}
	if err := json.Unmarshal(js, &value); err != nil {
		return err
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
