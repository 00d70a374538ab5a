package main

import (
	"log/slog"
	"testing"
	"time"
)

func TestReadConfig_Defaults(t *testing.T) {
	cfg, err := readConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.sim.Assistants != 5 || cfg.sim.Customers != 5 {
		t.Fatalf("expected 5 assistants and 5 customers, got %d/%d", cfg.sim.Assistants, cfg.sim.Customers)
	}
	if cfg.sim.Tick != 100*time.Millisecond {
		t.Fatalf("expected default tick 100ms, got %s", cfg.sim.Tick)
	}
	if len(cfg.sim.Sections) != 6 {
		t.Fatalf("expected 6 default sections, got %d", len(cfg.sim.Sections))
	}
	if cfg.logLevel != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.logLevel)
	}
}

func TestReadConfig_FromEnv(t *testing.T) {
	t.Setenv("SECTIONS", "books, toys")
	t.Setenv("TICK_DURATION", "5ms")
	t.Setenv("ASSISTANT_CARRY_CAPACITY", "3")
	t.Setenv("SECTION_MAX_CAPACITY", "7")
	t.Setenv("CUSTOMER_PATIENCE", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := readConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.sim.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %v", cfg.sim.Sections)
	}
	if cfg.sim.Tick != 5*time.Millisecond {
		t.Fatalf("expected tick 5ms, got %s", cfg.sim.Tick)
	}
	if cfg.sim.CarryCapacity != 3 || cfg.sim.SectionMaxCapacity != 7 {
		t.Fatalf("expected capacities 3/7, got %d/%d", cfg.sim.CarryCapacity, cfg.sim.SectionMaxCapacity)
	}
	if cfg.sim.CustomerPatience != 2*time.Second {
		t.Fatalf("expected patience 2s, got %s", cfg.sim.CustomerPatience)
	}
	if cfg.logLevel != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.logLevel)
	}
}

func TestReadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "zero carry capacity", key: "ASSISTANT_CARRY_CAPACITY", val: "0"},
		{name: "zero section capacity", key: "SECTION_MAX_CAPACITY", val: "0"},
		{name: "stats without redis addr", key: "STATS_ENABLED", val: "true"},
		{name: "bad log level", key: "LOG_LEVEL", val: "loud"},
		{name: "zero tick", key: "TICK_DURATION", val: "0s"},
		{name: "zero delivery interval", key: "DELIVERY_EVERY_TICKS", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := readConfig(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestReadConfig_UnparsableValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("ASSISTANTS", "abc")
	t.Setenv("TICK_DURATION", "fast")
	t.Setenv("STATS_ENABLED", "maybe")

	cfg, err := readConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.sim.Assistants != 5 {
		t.Fatalf("expected default 5 assistants, got %d", cfg.sim.Assistants)
	}
	if cfg.sim.Tick != 100*time.Millisecond {
		t.Fatalf("expected default tick, got %s", cfg.sim.Tick)
	}
	if cfg.statsEnabled {
		t.Fatalf("expected stats disabled by default")
	}
}
