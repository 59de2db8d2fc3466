package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tonematch/internal/cli"
	"github.com/Veraticus/tonematch/internal/model"
	"github.com/Veraticus/tonematch/internal/palette"
)

func palettesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Show the seasonal palettes",
		Long: `Show the four seasonal palettes. With --undertone, the palettes recommended
for that undertone are marked.

Examples:
  tonematch palettes
  tonematch palettes --undertone warm
  tonematch palettes --undertone cool --json`,
		Args: cobra.NoArgs,
		RunE: runPalettes,
	}

	cmd.Flags().StringP("undertone", "u", "", "Undertone to recommend for (warm, cool, neutral)")
	cmd.Flags().Bool("json", false, "Print the palettes as JSON")

	return cmd
}

func runPalettes(cmd *cobra.Command, _ []string) error {
	raw, _ := cmd.Flags().GetString("undertone")
	jsonOut, _ := cmd.Flags().GetBool("json")

	var undertone model.Undertone
	if raw != "" {
		u, err := model.ParseUndertone(raw)
		if err != nil {
			return fmt.Errorf("invalid --undertone: %w", err)
		}
		undertone = u
	}

	if !jsonOut {
		return cli.RenderPalettes(cmd.OutOrStdout(), undertone)
	}

	var out any = model.SeasonalPalettes()
	if undertone != "" {
		out = palette.Recommend(undertone)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode palettes: %w", err)
	}
	return nil
}
