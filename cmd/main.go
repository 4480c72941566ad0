package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/FuryACE007/team-ui/internal/bot"
	"github.com/FuryACE007/team-ui/internal/clients/candidates"
	"github.com/FuryACE007/team-ui/internal/config"
	"github.com/FuryACE007/team-ui/internal/intent"
	"github.com/FuryACE007/team-ui/internal/logger"
	"github.com/FuryACE007/team-ui/internal/metrics"
	"github.com/FuryACE007/team-ui/internal/page"
	"github.com/FuryACE007/team-ui/internal/server"
	"github.com/FuryACE007/team-ui/internal/services"
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

const shutdownTimeout = 10 * time.Second

func newCandidatesClient(cfg config.CandidatesConfig) *candidates.Client {

	client := candidates.NewClient(cfg.BaseURL)
	client.SetTimeout(cfg.Timeout)
	client.SetRateLimit(cfg.MaxRequestsPerSecond)
	client.SetPaging(cfg.Page, cfg.Limit)

	if !cfg.CircuitBreaker.Enabled {
		return client
	}

	consecutiveFailures := cfg.CircuitBreaker.ConsecutiveFailures
	client.SetCircuitBreaker(gobreaker.Settings{
		Name:        "candidates",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})
	return client
}

func runBot(cfg config.BotConfig, bus EventBus.Bus, queries *services.QueryService) *bot.Bot {

	if !cfg.Enabled() {
		log.Info("bot token is not set, chat front-end disabled")
		return nil
	}

	tgbot, err := bot.NewBot(cfg.Token, bus, queries)
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run()
	return tgbot
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	bus := EventBus.New()
	sessions := services.NewSessions(cfg.Server.SessionTTL)

	queries, err := services.NewQueryService(ctx, bus, intent.NewExtractor(), newCandidatesClient(cfg.Candidates), sessions)
	if err != nil {
		log.Fatalf("can't create query service: %v", err)
	}

	cleaner, err := services.NewSessionsCleaner(sessions, cfg.Server.SessionsCleanup)
	if err != nil {
		log.Fatalf("can't create sessions cleaner: %v", err)
	}
	defer cleaner.Stop()

	renderer, err := page.NewRenderer()
	if err != nil {
		log.Fatalf("can't create renderer: %v", err)
	}
	renderer.SetTitle(cfg.Server.Title)
	renderer.SetRefreshInterval(cfg.Server.RefreshSeconds)

	srv, err := server.NewServer(cfg.Server, queries, renderer)
	if err != nil {
		log.Fatalf("can't create server: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("http server stopped: %v", err)
		}
	}()

	tgbot := runBot(cfg.Bot, bus, queries)

	<-ctx.Done()

	log.Info("Shutting down services...")
	if tgbot != nil {
		tgbot.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
