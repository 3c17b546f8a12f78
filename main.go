package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goccy/go-json"
	"github.com/larynjahor/lifo/internal/config"
	"github.com/larynjahor/lifo/logging"
	"github.com/larynjahor/lifo/pkg/driver"
	"github.com/larynjahor/lifo/pkg/script"
)

func main() {
	c := logging.Auto()
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	var req script.Request

	slog.Info("started lifo")
	defer slog.Info("exited lifo")

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		return err
	}

	d, err := driver.New(cfg)
	if err != nil {
		return err
	}

	resp, err := d.Do(ctx, &req)
	if err != nil {
		slog.Error("failed to run scripts", slog.Any("err", err), slog.String("backend", cfg.Backend), slog.String("allocator", cfg.Allocator))
		return err
	}

	return writeResponse(resp)
}

func writeResponse(resp *script.Response) error {
	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		return err
	}

	return nil
}
