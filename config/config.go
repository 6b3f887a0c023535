package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string           `mapstructure:"port"`
	UploadDir    string           `mapstructure:"upload_dir"`
	MongoURI     string           `mapstructure:"MONGODB_URI"`
	Chunking     ChunkingConfig   `mapstructure:"chunking"`
	Embedding    EmbeddingConfig  `mapstructure:"embedding"`
	Generation   GenerationConfig `mapstructure:"generation"`
	WeaviateHost string           `mapstructure:"weaviate_host"`
	WeaviateKey  string           `mapstructure:"WEAVIATE_APIKEY"`
}

type ChunkingConfig struct {
	ChunkSize int `mapstructure:"chunk_size"`
	Overlap   int `mapstructure:"overlap"`
}

type EmbeddingConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	APIKey    string `mapstructure:"EMBEDDING_API_KEY"`
	Model     string `mapstructure:"model"`
	Dimension int    `mapstructure:"dimension"`
}

// GenerationConfig selects the language model backend. Provider is
// "openai" (any OpenAI-compatible endpoint) or "gemini".
type GenerationConfig struct {
	Provider string   `mapstructure:"provider"`
	Endpoint string   `mapstructure:"endpoint"`
	APIKey   string   `mapstructure:"LLM_API_KEY"`
	APIKeys  []string `mapstructure:"GEMINI_API_KEYS"`
	Model    string   `mapstructure:"model"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("port", "5000")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("chunking.chunk_size", 500)
	v.SetDefault("chunking.overlap", 100)
	v.SetDefault("embedding.dimension", 384)
	v.SetDefault("generation.provider", "openai")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.BindEnv("MONGODB_URI")
	v.BindEnv("WEAVIATE_APIKEY")
	v.BindEnv("embedding.EMBEDDING_API_KEY", "EMBEDDING_API_KEY")
	v.BindEnv("generation.LLM_API_KEY", "LLM_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
