// Command trello is a small CLI over the Trello API client. Credentials
// and listener settings come from a config.toml read by viper, overridable
// through TRELLO_-prefixed environment variables.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-trello/trello"
)

var rootCmd = &cobra.Command{
	Use:           "trello",
	Short:         "Interact with the Trello API from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initLogger() *zap.Logger {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	return logger
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("trello")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars may carry everything.
		zap.L().Debug("no config file loaded", zap.Error(err))
	}
}

func newClient() *trello.Client {
	return trello.NewClient(trello.Config{
		Key:         viper.GetString("trello.api_key"),
		Secret:      viper.GetString("trello.api_secret"),
		Token:       viper.GetString("trello.api_token"),
		TokenSecret: viper.GetString("trello.token_secret"),
	}, trello.WithLogger(zap.L()))
}

func main() {
	logger := initLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	initConfig()

	if err := rootCmd.Execute(); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
