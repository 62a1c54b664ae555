package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{
		Use:           "planparse",
		Short:         "Extract dashboard data from an itinerary markdown file",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(sectionsCMD(), daysCMD(), budgetCMD(), placesCMD(), viewCMD(), enrichCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
