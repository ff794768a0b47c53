// Copyright (c) 2025 SysMonitor authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Command sysmonitor samples host CPU and memory utilization on a fixed
// interval and appends the readings to a log file until interrupted.
//
//	sysmonitor [-i|--interval <seconds>] [-f|--logfile <path>] [-v|--verbose]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sysmonitor/internal/config"
	"sysmonitor/internal/logging"
	"sysmonitor/internal/monitor"
	"sysmonitor/internal/stats"
)

func main() {
	cfg := config.Resolve(os.Args[1:])

	logger, echo := logging.New(cfg.LogFile, cfg.Verbose)
	defer logger.Sync()

	if cfg.Verbose {
		if summary := stats.HostSummary(); summary != "" {
			fmt.Println(summary)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := monitor.New(cfg, logger, echo)
	if err := m.Run(ctx); err != nil {
		// Fatal writes the log line and exits with code 1.
		echo.Fatal(fmt.Sprintf("Monitoring failed to start: %v", err))
	}

	fmt.Printf("Monitoring stopped. Log file: %s\n", cfg.LogFile)
}
