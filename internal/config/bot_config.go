package config

import "github.com/spf13/viper"

// BotConfig is optional: an empty token disables the chat front-end.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

func (config BotConfig) Enabled() bool {
	return config.Token != ""
}

func (config BotConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("bot.token", "TG_TOKEN")
}
