package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type logConfig struct {
	// Path is the directory of rotated log files.
	Path string

	// Rotation settings handed to lumberjack.
	MaxSize    int `mapstructure:"maxSize"`
	MaxBackups int `mapstructure:"maxBackups"`
	MaxAge     int `mapstructure:"maxAge"`
}

type config struct {
	// Debug indicates if in debug mode.
	Debug bool

	// Label is used as prefix in log output, e.g., mainnet, testnet.
	Label string

	Log logConfig
}

var cfg config

// validators run in order after every load.
var validators = []func(*config) error{
	checkLabel,
	checkLogPath,
	checkLogRotation,
}

// Load reads the config file if any, applies defaults and validates the result.
func Load(display bool) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	// Incase test cases require loading configs
	v.AddConfigPath("../config")

	if err := load(v, display); err != nil {
		panic(err)
	}
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// GetLabel returns custom label as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetLogPath returns the directory of log files.
func GetLogPath() string {
	return cfg.Log.Path
}

// GetLogRotation returns maxSize(MB), maxBackups and maxAge(days) of log files.
func GetLogRotation() (int, int, int) {
	return cfg.Log.MaxSize, cfg.Log.MaxBackups, cfg.Log.MaxAge
}

/* ------------------------------
         Utility Functions
------------------------------ */

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("label", "")
	v.SetDefault("log.path", "./logs")
	v.SetDefault("log.maxSize", 30)
	v.SetDefault("log.maxBackups", 100)
	v.SetDefault("log.maxAge", 30)
}

func load(v *viper.Viper, display bool) error {
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Println("No config file found, using defaults")
	}

	loaded := config{}
	err = v.Unmarshal(&loaded)
	if err != nil {
		return err
	}

	loaded.Label = strings.TrimSpace(loaded.Label)

	if err := validate(&loaded); err != nil {
		return err
	}

	cfg = loaded

	if display {
		configContent, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			return err
		}

		log.Println(string(configContent))
	}

	return nil
}

func validate(c *config) error {
	for _, check := range validators {
		if err := check(c); err != nil {
			return err
		}
	}

	return nil
}

func checkLabel(c *config) error {
	if strings.ContainsAny(c.Label, "[]\n") {
		return fmt.Errorf("label %q must not contain brackets or line breaks", c.Label)
	}

	return nil
}

func checkLogPath(c *config) error {
	if strings.TrimSpace(c.Log.Path) == "" {
		return errors.New("log.path must be set")
	}

	return nil
}

func checkLogRotation(c *config) error {
	if c.Log.MaxSize <= 0 {
		return errors.New("log.maxSize must be great than 0")
	}

	if c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		return errors.New("log.maxBackups and log.maxAge must not be negative")
	}

	return nil
}
