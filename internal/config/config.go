package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server Server `yaml:"server"`
	Mongo  Mongo  `yaml:"mongo"`
	API    API    `yaml:"api"`
	Log    Log    `yaml:"log"`
}

type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Mongo struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"dbname"`
}

type API struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("can't unmarshal config file")
	}
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.API.DefaultLimit == 0 {
		c.API.DefaultLimit = 20
	}
	if c.API.MaxLimit == 0 {
		c.API.MaxLimit = 100
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
