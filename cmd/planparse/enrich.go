package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"wanderplan/internal/config"
	"wanderplan/pkg/enrich"
	"wanderplan/pkg/logger"
	"wanderplan/pkg/planparse"
)

func enrichCMD() *cobra.Command {
	var (
		destination string
		places      []string
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "enrich [file]",
		Short: "Look up photos and weather for the places of a plan",
		Long: "Runs live Wikipedia and Open-Meteo lookups. With --place the file is not read; " +
			"otherwise every place of every itinerary day is enriched.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			lookups := make([]enrich.PlaceLookup, 0, len(places))
			for _, p := range places {
				lookups = append(lookups, enrich.PlaceLookup{PlaceName: p, DestinationHint: destination})
			}
			if len(lookups) == 0 {
				text, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				view := planparse.BuildPlanView(text, destination)
				for _, day := range view.Days {
					for _, p := range day.Places {
						lookups = append(lookups, enrich.PlaceLookup{
							PlaceName:       p,
							DestinationHint: view.PrimaryDestination,
							DayText:         day.Text,
						})
					}
				}
			}

			httpClient := enrich.NewHTTPClient(cfg.EnrichTimeout())
			enricher := enrich.NewEnricher(
				enrich.NewPhotoClient(httpClient, cfg.WikipediaBaseURL, cfg.WikipediaRestURL),
				enrich.NewWeatherClient(httpClient, cfg.OpenMeteoGeocodeURL, cfg.OpenMeteoForecastURL),
				enrich.NewMemoryCache(),
				enrich.NewMemoryCache(),
				enrich.NewMetrics(nil),
				log,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return printJSON(cmd, enricher.EnrichMany(ctx, lookups))
		},
	}
	cmd.Flags().StringVar(&destination, "destination", "", "destination hint for every lookup")
	cmd.Flags().StringSliceVar(&places, "place", nil, "place to enrich; repeatable")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline for all lookups")
	return cmd
}
