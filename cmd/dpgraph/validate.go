package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborcroft/dpgraph/engine"
	"github.com/arborcroft/dpgraph/graphmodel"
	"github.com/arborcroft/dpgraph/propagate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Args:  cobra.NoArgs,
	Short: "Validate an analysis graph and print its privacy report",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("graph", "", "path to a JSON analysis graph file")
	validateCmd.Flags().Bool("dynamic", false, "continue past node failures instead of aborting (spec §6 dynamic failure mode)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	graphPath, _ := cmd.Flags().GetString("graph")
	if graphPath == "" {
		return fmt.Errorf("--graph flag is required")
	}
	dynamic, _ := cmd.Flags().GetBool("dynamic")

	def, err := loadPrivacyDefinition()
	if err != nil {
		return fmt.Errorf("loading privacy definition: %w", err)
	}
	logger := newLogger(logLevel)

	g, err := loadGraph(graphPath)
	if err != nil {
		return fmt.Errorf("loading graph: %w", err)
	}

	e := engine.New(def, logger, nil)
	if dynamic {
		e.FailureMode = propagate.FailDynamic
	}

	a, err := e.ValidateAnalysis(cmd.Context(), g, map[uint32]*graphmodel.Property{})
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	usages, total, err := e.ComputePrivacyUsage(a)
	if err != nil {
		return fmt.Errorf("computing privacy usage: %w", err)
	}

	rep, err := e.GenerateReport(a, usages, total)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
