package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "frostward/internal/command/core"
	_ "frostward/internal/command/gamescmd"
	_ "frostward/internal/command/giftcode"
	_ "frostward/internal/command/translatecmd"
	_ "frostward/internal/command/verifycmd"

	"frostward/internal/config"
	"frostward/internal/discord"
	"frostward/internal/logutil"
	"frostward/internal/storage"
	v "frostward/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	logutil.Setup(cfg.LogLevel, cfg.LogFile)
	log.Info().Str("version", v.Version).Msgf("starting %s", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(cfg.StorageDir)
	if err != nil {
		log.Fatal().Err(err).Msg("storage error")
	}
	defer store.Close()

	bot := discord.NewBot(cfg, config.DefaultGuild(), store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot stopped with error")
		}
		cancel()
	}

	log.Info().Msg("exited cleanly")
}
