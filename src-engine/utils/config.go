package utils

import (
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Env vars win over it.
type fileConfig struct {
	Port                     string `yaml:"port"`
	Timezone                 string `yaml:"timezone"`
	CommandPrefix            string `yaml:"command_prefix"`
	MetricCollectionInterval string `yaml:"metric_collection_interval"`
}

type Config struct {
	port string

	location      *time.Location
	commandPrefix string

	discordAppToken string

	metricCollectionInterval time.Duration
}

func NewConfig() *Config {
	fileCfg := func() fileConfig {
		path := os.Getenv("CONFIG_FILE")
		if path == "" {
			path = "calcmd.yaml"
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fileConfig{}
		}
		var cfg fileConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			slog.Error("can't parse config file", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Debug("config file loaded", "path", path)
		return cfg
	}()

	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = fileCfg.Port
			}
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			if timezoneStr == "" {
				timezoneStr = fileCfg.Timezone
			}
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),
		commandPrefix: func() string {
			prefix := os.Getenv("COMMAND_PREFIX")
			if prefix == "" {
				prefix = fileCfg.CommandPrefix
			}
			if prefix == "" {
				prefix = "!cal"
			}
			slog.Debug("env", "COMMAND_PREFIX", prefix)
			return prefix
		}(),

		discordAppToken: func() string {
			// optional; only the Discord front end needs it
			return os.Getenv("DISCORD_APP_TOKEN")
		}(),

		metricCollectionInterval: func() time.Duration {
			intervalStr := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if intervalStr == "" {
				intervalStr = fileCfg.MetricCollectionInterval
			}
			if intervalStr == "" {
				intervalStr = "30s"
			}
			duration, err := time.ParseDuration(intervalStr)
			if err != nil {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", duration)
			return duration
		}(),
	}
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get TIMEZONE env, default to the local timezone
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get COMMAND_PREFIX env, default to "!cal"
func (c *Config) GetCommandPrefix() string {
	return c.commandPrefix
}

// Get DISCORD_APP_TOKEN env, blank when unset
func (c *Config) GetDiscordAppToken() string {
	return c.discordAppToken
}

// Get METRIC_COLLECTION_INTERVAL env, default to 30s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}
