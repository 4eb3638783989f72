package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "astrosynth",
		Short: "Exoplanet habitability, terraforming and evolution engine",
	}

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(terraformCmd())
	rootCmd.AddCommand(evolveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scoreCmd() *cobra.Command {
	var dbPath string
	var modelPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score [planet]",
		Short: "Score a planet's habitability from its measured parameters",
		Long: "Score a planet's habitability. The argument is a planet " +
			"definition file (or a project directory containing planet.yaml), " +
			"or a catalog planet name when --db is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScore(args[0], dbPath, modelPath, asJSON)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalog; the argument becomes a planet name")
	cmd.Flags().StringVar(&modelPath, "model", "", "YAML file overriding scoring weights and bands")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}

func terraformCmd() *cobra.Command {
	var dbPath string
	var asJSON bool
	var edits terraformEdits

	cmd := &cobra.Command{
		Use:   "terraform [planet]",
		Short: "Run a terraforming what-if against a planet's baseline score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits.mark(cmd)
			return runTerraform(args[0], dbPath, edits, asJSON)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalog; the argument becomes a planet name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	cmd.Flags().Float64Var(&edits.nitrogen, "nitrogen", 0, "nitrogen percentage")
	cmd.Flags().Float64Var(&edits.oxygen, "oxygen", 0, "oxygen percentage")
	cmd.Flags().Float64Var(&edits.co2, "co2", 0, "carbon dioxide percentage")
	cmd.Flags().Float64Var(&edits.waterVapor, "water-vapor", 0, "water vapor percentage")
	cmd.Flags().Float64Var(&edits.argon, "argon", 0, "argon percentage")
	cmd.Flags().Float64Var(&edits.water, "water", 0, "surface water coverage percentage")
	cmd.Flags().Float64Var(&edits.orbit, "orbit", 0, "orbital distance in AU")
	cmd.Flags().Float64Var(&edits.mass, "mass", 0, "planet mass in Earth masses")
	cmd.Flags().Float64Var(&edits.radius, "radius", 0, "planet radius in Earth radii")
	cmd.Flags().BoolVar(&edits.moon, "moon", false, "give the planet a large moon")
	cmd.Flags().BoolVar(&edits.normalize, "normalize", false, "rescale the atmosphere to sum to 100%")
	return cmd
}

func evolveCmd() *cobra.Command {
	var dbPath string
	var asJSON bool
	var samples int

	cmd := &cobra.Command{
		Use:   "evolve [planet]",
		Short: "Generate a planet's evolutionary timeline from formation to stellar death",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEvolve(args[0], dbPath, samples, asJSON)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalog; the argument becomes a planet name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	cmd.Flags().IntVarP(&samples, "samples", "n", 50, "number of timeline snapshots")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [planet]",
		Short: "Validate a planet definition without scoring it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [catalog.csv] [catalog.db]",
		Short: "Import a NASA Exoplanet Archive CSV export into a SQLite catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), args[0], args[1])
		},
	}
}

func statsCmd() *cobra.Command {
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [catalog.db]",
		Short: "Score every cataloged planet and summarize the distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args[0], top, asJSON)
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of top-ranked planets to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [catalog.db]",
		Short: "Start the local HTTP API over a SQLite catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
