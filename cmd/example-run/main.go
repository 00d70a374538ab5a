package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"thrift-store/observability"
	"thrift-store/store"
	"thrift-store/store/infra"
)

func main() {
	// Exemplo: roda a loja em processo por alguns segundos, com ticks curtos e
	// estatísticas em memória, e imprime o resumo no fim.
	cfg := store.DefaultConfig()
	cfg.Tick = 5 * time.Millisecond
	cfg.Assistants = 2
	cfg.Customers = 4
	cfg.RestFrequencyTicks = 50
	cfg.RestDurationTicks = 20
	cfg.DeliveryEveryTicks = 30
	cfg.CustomerPatience = 500 * time.Millisecond

	runFor := 3 * time.Second
	if v := os.Getenv("RUN_FOR"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Fatalf("invalid RUN_FOR: %q", v)
		}
		runFor = d
	}

	stats := infra.NewMemoryStatsStore()
	rec := &observability.Recorder{}
	// só avisos no terminal; o Recorder guarda todos os eventos para o resumo
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	sim, err := store.NewSimulation(cfg,
		store.WithObserver(rec, observability.NewSlogObserver(logger)),
		store.WithStats(stats),
		store.WithSeed(1),
	)
	if err != nil {
		log.Fatalf("simulation error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, stop := context.WithTimeout(ctx, runFor)
	defer stop()

	log.Printf("example run for %s (tick %s)", runFor, cfg.Tick)
	if err := sim.Run(ctx); err != nil {
		log.Fatalf("simulation error: %v", err)
	}

	total := stats.Total()
	log.Printf("delivered=%d stocked=%d collected=%d on_shelves=%d pending=%d gave_up=%d",
		total.Delivered, total.Stocked, total.Collected, total.OnShelves(),
		sim.Inventory().Pending(), len(rec.OfType(observability.EventGaveUp)))

	bySection := stats.BySection()
	names := make([]string, 0, len(bySection))
	for name := range bySection {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := bySection[name]
		log.Printf("  %-12s delivered=%d stocked=%d collected=%d waited=%s",
			name, c.Delivered, c.Stocked, c.Collected, c.Waited)
	}
}
