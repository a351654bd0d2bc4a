package main

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/dto"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service"
)

var quoteCmd = &cobra.Command{
	Use:   "quote material=kg [material=kg...]",
	Short: "Estimate the value of a scrap basket",
	Example: `  blinklean quote copper=10 plastic=2.5
  blinklean quote "glass bottles=4"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := parseQuoteArgs(args)
		if err != nil {
			return err
		}

		cat, svc, err := loadServices()
		if err != nil {
			return err
		}
		defer svc.Close()

		prediction, err := svc.Pricer.Predict(items)
		if err != nil {
			return err
		}
		return writeJSON(cmd, dto.PredictResponse{
			BasketPrediction: prediction,
			Currency:         cat.Rates.Currency(),
			Advisory:         service.Advisory(prediction),
		})
	},
}

// parseQuoteArgs reads material=kg pairs. Material names may contain spaces
// and '='; the weight follows the last '='.
func parseQuoteArgs(args []string) ([]model.ScrapItem, error) {
	items := make([]model.ScrapItem, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, eris.Errorf("invalid item %q: want material=kg", arg)
		}
		material := strings.TrimSpace(arg[:i])
		weight, err := strconv.ParseFloat(strings.TrimSpace(arg[i+1:]), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid weight in %q", arg)
		}
		if !(weight > 0 && weight <= service.DefaultMaxWeightKg) {
			return nil, eris.Wrapf(service.ErrInvalidWeight, "%s: %v kg", material, weight)
		}
		items = append(items, model.ScrapItem{Material: material, WeightKg: weight})
	}
	return items, nil
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
