package configs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type SuggestionAPIConfig struct {
	App           App
	DB            DB
	Logger        Logger
	HTTP          HTTP
	Suggestions   Suggestions
	Notifications Notifications
}

type ModerationBotConfig struct {
	App           App
	DB            DB
	Logger        Logger
	Bot           Bot
	Suggestions   Suggestions
	Notifications Notifications
}

type VoteReconcilerConfig struct {
	App        App
	DB         DB
	Logger     Logger
	Reconciler Reconciler
}

func LoadSuggestionAPIConfig() (SuggestionAPIConfig, error) {
	var config SuggestionAPIConfig
	if err := load(&config); err != nil {
		return SuggestionAPIConfig{}, err
	}
	return config, nil
}

func LoadModerationBotConfig() (ModerationBotConfig, error) {
	var config ModerationBotConfig
	if err := load(&config); err != nil {
		return ModerationBotConfig{}, err
	}
	return config, nil
}

func LoadVoteReconcilerConfig() (VoteReconcilerConfig, error) {
	var config VoteReconcilerConfig
	if err := load(&config); err != nil {
		return VoteReconcilerConfig{}, err
	}
	return config, nil
}

func load(config interface{}) error {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}
