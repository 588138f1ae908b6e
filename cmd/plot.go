package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/qdollar/internal/gesture"
	"github.com/ThatOtherAndrew/qdollar/internal/plot"
	"github.com/ThatOtherAndrew/qdollar/pkg/qdollar"
)

var (
	plotOutput     string
	plotNormalized string
)

var plotCmd = &cobra.Command{
	Use:   "plot FILE",
	Short: "Plot a recorded gesture against its resampled points",
	Args:  cobra.ExactArgs(1),
	RunE:  plotGesture,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "output image (default FILE_resample.svg)")
	plotCmd.Flags().StringVar(&plotNormalized, "normalized", "", "also plot the normalized cloud to this image")
}

func plotGesture(cmd *cobra.Command, args []string) error {
	points, err := gestures.ReadPointsFile(args[0])
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	if args[0] == "-" {
		name = "stdin"
	}
	output := plotOutput
	if output == "" {
		output = name + "_resample.svg"
	}

	if err := plot.Resampled(output, name, points, qdollar.NumPoints); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", output)

	if plotNormalized != "" {
		if err := plot.Normalized(plotNormalized, qdollar.NewCloud(name, points)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", plotNormalized)
	}
	return nil
}
