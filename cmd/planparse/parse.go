package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wanderplan/pkg/planparse"
)

// readInput reads the file named by args[0], or stdin when it is "-" or absent.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sectionsCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "sections [file]",
		Short: "Split the markdown at level-two headings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, planparse.SplitSections(text))
		},
	}
}

func daysCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "days [file]",
		Short: "List the itinerary days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, planparse.ExtractDays(text))
		},
	}
}

func budgetCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "budget [file]",
		Short: "List the budget allocation lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, planparse.ExtractBudgetItems(text))
		},
	}
}

func placesCMD() *cobra.Command {
	var limit int
	var fallback []string
	cmd := &cobra.Command{
		Use:   "places [file]",
		Short: "Guess destinations and per-day places",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			type dayPlaces struct {
				Day    int      `json:"day"`
				Places []string `json:"places"`
			}
			out := struct {
				Destinations []string    `json:"destinations"`
				Days         []dayPlaces `json:"days"`
			}{
				Destinations: planparse.ExtractDestinationHints(text, limit),
				Days:         []dayPlaces{},
			}
			for _, d := range planparse.ExtractDays(text) {
				out.Days = append(out.Days, dayPlaces{
					Day:    d.Day,
					Places: planparse.ExtractPlacesFromTimelineText(d.Lines(), fallback),
				})
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", planparse.DefaultHintLimit, "maximum number of destination hints")
	cmd.Flags().StringSliceVar(&fallback, "fallback", nil, "places used when a day names none")
	return cmd
}

func viewCMD() *cobra.Command {
	var destination string
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Build the full dashboard view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, planparse.BuildPlanView(text, destination))
		},
	}
	cmd.Flags().StringVar(&destination, "destination", "", "destination hint that overrides guessed destinations")
	return cmd
}
