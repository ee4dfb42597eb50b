package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/arborcroft/dpgraph/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Args:  cobra.NoArgs,
	Short: "Expose engine metrics over HTTP for Prometheus to scrape",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":9090", "address to serve /metrics on")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	reg := prometheus.NewRegistry()
	engine.NewMetrics(reg) // registers the engine's counters and histogram

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	logger := newLogger(logLevel)
	logger.Info().Str("addr", addr).Msg("serving metrics")
	fmt.Printf("serving metrics on %s/metrics\n", addr)
	return http.ListenAndServe(addr, mux)
}
