package config

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultMinStakedAmount = "1000000"
	DefaultWhaleCap        = "100000000000000000"
	DefaultOut             = "drop.csv"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	FilePath        string
	MinStakedAmount *uint256.Int
	WhaleCap        *uint256.Int
	Out             string
	LogLevel        string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STAKEDROP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("min-staked-amount", DefaultMinStakedAmount)
	v.SetDefault("whale-cap", DefaultWhaleCap)
	v.SetDefault("out", DefaultOut)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	minStaked, err := ParseAmount(v.GetString("min-staked-amount"))
	if err != nil {
		return Config{}, fmt.Errorf("parse min-staked-amount: %w", err)
	}
	whaleCap, err := ParseAmount(v.GetString("whale-cap"))
	if err != nil {
		return Config{}, fmt.Errorf("parse whale-cap: %w", err)
	}

	cfg := Config{
		FilePath:        v.GetString("file-path"),
		MinStakedAmount: minStaked,
		WhaleCap:        whaleCap,
		Out:             v.GetString("out"),
		LogLevel:        v.GetString("log-level"),
	}

	return cfg, nil
}

// ParseAmount parses a base-10 token amount that may exceed 64 bits.
func ParseAmount(input string) (*uint256.Int, error) {
	input = strings.TrimSpace(input)
	if !isNumeric(input) {
		return nil, fmt.Errorf("invalid amount %q", input)
	}
	amount, err := uint256.FromDecimal(input)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", input, err)
	}
	return amount, nil
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}
