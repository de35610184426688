package main

import (
	"context"
	"fmt"
	"os"

	"ride-dispatch/internal/config"
	dispatchservice "ride-dispatch/internal/dispatch-service"
	"ride-dispatch/internal/dispatch-service/adapters/driven/db"
	"ride-dispatch/internal/mylogger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: app <dispatch-service|migrate>")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	mylog, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "dispatch-service":
		if err := dispatchservice.Execute(ctx, mylog, cfg); err != nil {
			mylog.Error("service stopped with error", err)
			os.Exit(1)
		}
	case "migrate":
		if err := db.Migrate(ctx, cfg.DB); err != nil {
			mylog.Error("migration failed", err)
			os.Exit(1)
		}
		mylog.Info("migrations applied")
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		os.Exit(1)
	}
}
