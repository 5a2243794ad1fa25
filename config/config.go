package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	AI       AI
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// AI carries every knob the generation pipeline needs. Nothing in the
// pipeline reads the environment directly; this struct is the single source.
type AI struct {
	ProviderURL    string
	APIKey         string
	Model          string
	Provider       string // display name used in audit logs
	TimeoutSeconds int
	FallbackMode   string // "error" or "stub"
	QuestionCount  int
}

func (a AI) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("AI_MODEL", "default-model")
	viper.SetDefault("AI_PROVIDER", "default")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("AI_FALLBACK_MODE", "error")
	viper.SetDefault("MATHS_DIAGNOSTIC_QUESTION_COUNT", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.AI.ProviderURL = viper.GetString("AI_PROVIDER_URL")
	config.AI.APIKey = viper.GetString("AI_API_KEY")
	config.AI.Model = viper.GetString("AI_MODEL")
	config.AI.Provider = viper.GetString("AI_PROVIDER")
	config.AI.TimeoutSeconds = viper.GetInt("AI_TIMEOUT_SECONDS")
	config.AI.FallbackMode = viper.GetString("AI_FALLBACK_MODE")
	config.AI.QuestionCount = viper.GetInt("MATHS_DIAGNOSTIC_QUESTION_COUNT")

	log.Info().
		Str("serverPort", config.Server.Port).
		Str("aiProvider", config.AI.Provider).
		Str("aiFallbackMode", config.AI.FallbackMode).
		Int("questionCount", config.AI.QuestionCount).
		Msg("Config loaded")
	return &config, nil
}
