// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads application settings from file and environment.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Serper   SerperConfig
	Apify    ApifyConfig
	AI       AIConfig
	Search   SearchConfig
}

// ServerConfig holds the API server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds the BadgerDB settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SerperConfig holds settings for the Serper search provider.
type SerperConfig struct {
	APIKey            string  `mapstructure:"api_key"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstLimit        int     `mapstructure:"burst_limit"`
}

// ApifyConfig holds settings for the Apify actor provider.
type ApifyConfig struct {
	Token string `mapstructure:"token"`
}

// AIConfig holds settings for the inference-backed analyzer.
// An empty API key is valid; analysis then degrades to the fallback path.
type AIConfig struct {
	Host        string  `mapstructure:"host"`
	Model       string  `mapstructure:"model"`
	APIKey      string  `mapstructure:"api_key"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// SearchConfig holds settings for the search orchestrator.
type SearchConfig struct {
	PoolSize int `mapstructure:"pool_size"`
}

// Load loads the configuration from file and environment variables.
func Load() (*Config, error) {
	// Set default values
	viper.SetDefault("SERVER.PORT", "8080")
	viper.SetDefault("DATABASE.PATH", "./data/viralscope")
	viper.SetDefault("SERPER.API_KEY", "")
	viper.SetDefault("SERPER.REQUESTS_PER_SECOND", 5)
	viper.SetDefault("SERPER.BURST_LIMIT", 10)
	viper.SetDefault("APIFY.TOKEN", "")
	viper.SetDefault("AI.HOST", "https://openrouter.ai/api/v1")
	viper.SetDefault("AI.MODEL", "qwen/qwen-2.5-72b-instruct")
	viper.SetDefault("AI.API_KEY", "")
	viper.SetDefault("AI.MAX_TOKENS", 1000)
	viper.SetDefault("AI.TEMPERATURE", 0.3)
	viper.SetDefault("SEARCH.POOL_SIZE", 1)

	// Load from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err // Only return error if it's not a "file not found" error
		}
	}

	// Load from environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
