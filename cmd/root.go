package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sunilmaharaj1991-max/BlinkLean/config"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/app"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "blinklean",
	Short: "BlinkLean serviceability and scrap pricing service",
	Long: "Checks whether a location is inside a BlinkLean service zone and estimates the value of " +
		"recyclable material baskets. Run the HTTP API with serve, or query the engines directly.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile(configPath)
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c
		app.InitializeLogger(cfg.Log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml)")
}

// loadServices builds the engines without the result cache; CLI runs are one-shot.
func loadServices() (*catalog.Catalog, *app.ServiceComponents, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, err
	}
	return cat, app.InitializeServices(cat, cfg.Engine, config.CacheConfig{}), nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
