package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborcroft/dpgraph/privacy"
)

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Args:  cobra.NoArgs,
	Short: "Convert between a mechanism's accuracy guarantee and its epsilon/delta cost",
	RunE:  runAccuracy,
}

func init() {
	accuracyCmd.Flags().String("mechanism", "laplace", "mechanism (laplace, gaussian, analytic_gaussian, simple_geometric, snapping)")
	accuracyCmd.Flags().Float64("sensitivity", 1, "the mechanism's input sensitivity")
	accuracyCmd.Flags().Float64("alpha", 0.05, "the failure probability of the accuracy bound")
	accuracyCmd.Flags().Float64("delta", 0, "delta, for Gaussian mechanisms and as an input to --accuracy")
	accuracyCmd.Flags().Float64("bound", 0, "clipping bound, required by --accuracy for snapping")
	accuracyCmd.Flags().Float64("epsilon", 0, "epsilon; given with --delta, prints the accuracy it achieves")
	accuracyCmd.Flags().Float64("accuracy", 0, "desired accuracy radius; prints the epsilon/delta needed")
}

func runAccuracy(cmd *cobra.Command, args []string) error {
	mechName, _ := cmd.Flags().GetString("mechanism")
	sens, _ := cmd.Flags().GetFloat64("sensitivity")
	alpha, _ := cmd.Flags().GetFloat64("alpha")
	delta, _ := cmd.Flags().GetFloat64("delta")
	bound, _ := cmd.Flags().GetFloat64("bound")
	epsilon, _ := cmd.Flags().GetFloat64("epsilon")
	accuracy, _ := cmd.Flags().GetFloat64("accuracy")

	mechanism := parseMechanism(mechName)

	switch {
	case epsilon > 0:
		usage := privacy.Usage{Epsilon: epsilon, Delta: delta}
		got, err := privacy.PrivacyUsageToAccuracy(mechanism, sens, alpha, usage)
		if err != nil {
			return err
		}
		fmt.Printf("accuracy: %.6g (at confidence %.4g)\n", got, 1-alpha)
		return nil

	case accuracy > 0:
		usage, err := privacy.AccuracyToPrivacyUsage(mechanism, sens, alpha, accuracy, delta, bound)
		if err != nil {
			return err
		}
		fmt.Printf("epsilon: %.6g  delta: %.6g\n", usage.Epsilon, usage.Delta)
		return nil

	default:
		return fmt.Errorf("must supply exactly one of --epsilon or --accuracy")
	}
}
