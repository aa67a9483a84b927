package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/LianHaeming/workoutplanner/config"
	"github.com/LianHaeming/workoutplanner/storage"
)

func testConfig(driver, path string) config.Config {
	return config.Config{
		Port:          "0",
		StorageDriver: driver,
		StoragePath:   path,
		LogLevel:      "debug",
		LogFormat:     "console",
		CORSOrigins:   []string{"*"},
		ICSStartHour:  7,
	}
}

func TestRunUnknownDriverReturnsError(t *testing.T) {
	err := run(context.Background(), testConfig("etcd", t.TempDir()), zaptest.NewLogger(t))
	if !errors.Is(err, storage.ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestRunClosesStorageOnShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := run(ctx, testConfig(storage.DriverBolt, path), zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run: %v", err)
	}

	// bbolt holds an exclusive file lock until Close, so reopening only
	// succeeds if run released the slot.
	slot, err := storage.OpenBoltSlot(path)
	if err != nil {
		t.Fatalf("reopen bolt slot: %v", err)
	}
	slot.Close()
}

func TestRunClosesStorageOnListenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	cfg := testConfig(storage.DriverBolt, path)
	cfg.Port = "not-a-port"

	if err := run(context.Background(), cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatal("expected listen error")
	}

	slot, err := storage.OpenBoltSlot(path)
	if err != nil {
		t.Fatalf("reopen bolt slot: %v", err)
	}
	slot.Close()
}
