package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"personal/discord_entities/src/client"
	"personal/discord_entities/src/config"
	"personal/discord_entities/src/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logging.New(logging.ProfileRuntime, logging.Options{})
		boot.Fatal().Err(err).Msg("Error loading configuration")
	}

	logger := logging.New(logging.ProfileRuntime, logging.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := client.NewBot(ctx, cfg.Token, cfg.Prefix,
		client.WithAPIURL(cfg.APIURL),
		client.WithLogger(logger),
		client.WithHandlers(client.Handlers{
			MessageCreate: func(m *client.Message) {
				logger.Info().
					Str("channel_id", string(m.ChannelID)).
					Stringer("kind", m.Type).
					Bool("deletable", m.CanDelete()).
					Msg("message")
			},
			ChannelCreate: func(ch *client.Channel) {
				logger.Info().
					Str("channel_id", string(ch.ID)).
					Stringer("kind", ch.Type).
					Int("sort_bucket", ch.Type.SortBucket()).
					Msg("channel created")
			},
		}),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error creating bot")
	}

	if err := bot.ConnectToGateway(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("gateway connection ended")
	}

	if err := bot.Disconnect(); err != nil {
		logger.Warn().Err(err).Msg("Error disconnecting")
	}
}
