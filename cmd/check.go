package main

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

var (
	checkLat     float64
	checkLon     float64
	checkPincode string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check service availability at a location",
	Example: "  blinklean check --lat 12.965 --lon 77.535",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateCoordinates(checkLat, checkLon); err != nil {
			return err
		}

		_, svc, err := loadServices()
		if err != nil {
			return err
		}
		defer svc.Close()

		report, err := svc.Availability.Check(cmd.Context(), model.AvailabilityQuery{
			Point:   model.NewGeoPoint(checkLat, checkLon),
			Pincode: checkPincode,
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd, report)
	},
}

func validateCoordinates(lat, lon float64) error {
	p := model.NewGeoPoint(lat, lon)
	switch {
	case !p.IsFinite():
		return eris.New("coordinates must be finite numbers")
	case math.Abs(lat) > 90:
		return eris.Errorf("latitude %v out of range [-90, 90]", lat)
	case math.Abs(lon) > 180:
		return eris.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return nil
}

func init() {
	checkCmd.Flags().Float64Var(&checkLat, "lat", 0, "latitude in degrees")
	checkCmd.Flags().Float64Var(&checkLon, "lon", 0, "longitude in degrees")
	checkCmd.Flags().StringVar(&checkPincode, "pincode", "", "optional pincode echoed in the report")
	_ = checkCmd.MarkFlagRequired("lat")
	_ = checkCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(checkCmd)
}
