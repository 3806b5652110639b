package main

import (
	"os"

	"github.com/duxbuse/townsmith/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "townsmith",
		Short: "Deterministic procedural settlement generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(mapCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one settlement and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 1, "generation seed")
	cmd.Flags().StringVar(&opts.size, "size", "village", "settlement size (hamlet, village, town, city)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "street layout (organic, grid, mixed; empty draws from size weights)")
	cmd.Flags().Float64VarP(&opts.density, "density", "d", 1.0, "density multiplier")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "world X position")
	cmd.Flags().Float64Var(&opts.z, "z", 0, "world Z position")
	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "building catalog YAML (default: built-in)")
	cmd.Flags().BoolVar(&opts.terrain, "terrain", false, "synthesize a terrain grid from the seed")
	cmd.Flags().BoolVar(&opts.profile, "profile", false, "write a CPU profile")
	return cmd
}

func mapCmd() *cobra.Command {
	var opts mapOptions

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Scatter settlements across a map and print the aggregate summary",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMap(opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 1, "generation seed")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 8, "settlements to place")
	cmd.Flags().Float64Var(&opts.extent, "extent", 2000, "half-size of the square map, meters")
	cmd.Flags().Float64Var(&opts.minDist, "min-distance", 400, "minimum distance between settlement centers")
	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "building catalog YAML (default: built-in)")
	cmd.Flags().BoolVar(&opts.terrain, "terrain", false, "synthesize a terrain grid from the seed")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the combined map JSON to this file")
	cmd.Flags().BoolVar(&opts.profile, "profile", false, "write a CPU profile")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog.yaml]",
		Short: "Validate a building catalog and a settlement generated from it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runValidate(path)
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [catalog.yaml]",
		Short: "Print the active building catalog as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runCatalog(path)
		},
	}
}

func serveCmd() *cobra.Command {
	var port int
	var seed int64
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local dev server for interactive inspection",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			srv, err := server.New(seed, cat, port)
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "default generation seed")
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "building catalog YAML (default: built-in)")
	return cmd
}
