package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultAddr = ":8000"

type Config struct {
	Addr     string         `yaml:"addr"`
	Dir      string         `yaml:"dir"`
	Classify ClassifyConfig `yaml:"classify"`
}

// Flags are command line overrides, empty values are ignored
type Flags struct {
	Addr string
	Dir  string
}

func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "Cannot read config %q", path)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "Failed to unmarshal config")
	}
	if err := cfg.Classify.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadClassify reads a standalone classification file, in the same keys
// as the classify section of the main config
func LoadClassify(path string) (ClassifyConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return ClassifyConfig{}, errors.Wrapf(err, "Cannot read classify config %q", path)
	}
	var cc ClassifyConfig
	if err := yaml.Unmarshal(data, &cc); err != nil {
		return ClassifyConfig{}, errors.Wrapf(err, "Failed to unmarshal classify config")
	}
	return cc, cc.Validate()
}

func (c *Config) Resolve(flags Flags) {
	if flags.Addr != "" {
		c.Addr = flags.Addr
	}
	if flags.Dir != "" {
		c.Dir = flags.Dir
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
}
