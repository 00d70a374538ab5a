package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"thrift-store/observability"
	"thrift-store/store"
	"thrift-store/store/domain"
	"thrift-store/store/infra"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel}))

	var stats domain.StatsStore
	if cfg.statsEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.statsRedisAddr,
			Password: cfg.statsRedisPassword,
			DB:       cfg.statsRedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := rdb.Ping(pingCtx).Result()
		cancel()
		if err != nil {
			log.Fatalf("redis stats ping error: %v", err)
		}

		stats = infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.statsPrefix),
			infra.WithStatsTTL(cfg.statsTTL),
			infra.WithStatsBucket(cfg.statsBucket),
		)
	}

	sim, err := store.NewSimulation(cfg.sim,
		store.WithObserver(observability.NewSlogObserver(logger)),
		store.WithStats(stats),
	)
	if err != nil {
		log.Fatalf("simulation error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if cfg.runFor > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, cfg.runFor)
		defer stop()
	}

	logger.Info("thrift store open",
		"sections", strings.Join(cfg.sim.Sections, ","),
		"tick", cfg.sim.Tick,
		"assistants", cfg.sim.Assistants,
		"customers", cfg.sim.Customers,
	)
	logger.Info("stocking",
		"carryCapacity", cfg.sim.CarryCapacity,
		"sectionMaxCapacity", cfg.sim.SectionMaxCapacity,
		"stockingBaseTicks", cfg.sim.StockingBaseTicks,
		"restFrequencyTicks", cfg.sim.RestFrequencyTicks,
		"restDurationTicks", cfg.sim.RestDurationTicks,
	)
	logger.Info("stats", "enabled", cfg.statsEnabled, "redisAddr", cfg.statsRedisAddr, "bucket", cfg.statsBucket, "ttl", cfg.statsTTL)

	if err := sim.Run(ctx); err != nil {
		log.Fatalf("simulation error: %v", err)
	}

	inv := sim.Inventory()
	logger.Info("thrift store closed", "pending", inv.Pending(), "stocked", inv.Stocked(), "shelves", inv.Snapshot())
}

type config struct {
	sim      store.Config
	runFor   time.Duration
	logLevel slog.Level

	statsEnabled       bool
	statsRedisAddr     string
	statsRedisPassword string
	statsRedisDB       int
	statsPrefix        string
	statsTTL           time.Duration
	statsBucket        string
}

func readConfig() (config, error) {
	cfg := config{sim: store.DefaultConfig()}

	if v := os.Getenv("SECTIONS"); strings.TrimSpace(v) != "" {
		cfg.sim.Sections = strings.Split(v, ",")
	}
	cfg.sim.Tick = getenvDurationDefault("TICK_DURATION", cfg.sim.Tick)
	cfg.sim.Assistants = getenvIntDefault("ASSISTANTS", cfg.sim.Assistants)
	cfg.sim.Customers = getenvIntDefault("CUSTOMERS", cfg.sim.Customers)
	cfg.sim.CarryCapacity = getenvIntDefault("ASSISTANT_CARRY_CAPACITY", cfg.sim.CarryCapacity)
	cfg.sim.SectionMaxCapacity = getenvIntDefault("SECTION_MAX_CAPACITY", cfg.sim.SectionMaxCapacity)
	cfg.sim.StockingBaseTicks = getenvIntDefault("STOCKING_BASE_TICKS", cfg.sim.StockingBaseTicks)
	cfg.sim.RestFrequencyTicks = getenvIntDefault("REST_FREQUENCY_TICKS", cfg.sim.RestFrequencyTicks)
	cfg.sim.RestDurationTicks = getenvIntDefault("REST_DURATION_TICKS", cfg.sim.RestDurationTicks)
	cfg.sim.DeliveryEveryTicks = getenvIntDefault("DELIVERY_EVERY_TICKS", cfg.sim.DeliveryEveryTicks)
	cfg.sim.DeliverySize = getenvIntDefault("DELIVERY_SIZE", cfg.sim.DeliverySize)
	cfg.sim.CustomerThinkTicks = getenvIntDefault("CUSTOMER_THINK_TICKS", cfg.sim.CustomerThinkTicks)
	cfg.sim.CustomerPatience = getenvDurationDefault("CUSTOMER_PATIENCE", 0)
	cfg.runFor = getenvDurationDefault("RUN_FOR", 0)

	level, err := parseLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return config{}, err
	}
	cfg.logLevel = level

	cfg.statsEnabled = getenvBoolDefault("STATS_ENABLED", false)
	cfg.statsRedisAddr = getenvDefault("STATS_REDIS_ADDR", "")
	cfg.statsRedisPassword = os.Getenv("STATS_REDIS_PASSWORD")
	cfg.statsRedisDB = getenvIntDefault("STATS_REDIS_DB", 0)
	cfg.statsPrefix = getenvDefault("STATS_PREFIX", "thriftstore:stats")
	cfg.statsTTL = getenvDurationDefault("STATS_TTL", 24*time.Hour)
	cfg.statsBucket = getenvDefault("STATS_BUCKET", "minute")

	if cfg.statsEnabled && strings.TrimSpace(cfg.statsRedisAddr) == "" {
		return config{}, errors.New("STATS_REDIS_ADDR is required when STATS_ENABLED=true")
	}
	if cfg.runFor < 0 {
		return config{}, errors.New("RUN_FOR must be >= 0")
	}
	if err := cfg.sim.Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func parseLevel(v string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
		return 0, errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	}
	return l, nil
}
