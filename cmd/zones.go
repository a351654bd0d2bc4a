package main

import (
	"github.com/spf13/cobra"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	apihttp "github.com/sunilmaharaj1991-max/BlinkLean/internal/http"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Print the service zones as GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		return writeJSON(cmd, apihttp.ZonesGeoJSON(cat.Zones))
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
