// Package main is the entry point for the BlinkLean service.
//
// @title           BlinkLean API
// @version         1.0.0
// @description     Serviceability checks and scrap price estimation for BlinkLean pickups.
//
//	Points are matched against service-zone polygons; scrap baskets are valued at
//	fluctuating market rates with an anomaly flag and a confidence score.
//
// @contact.name   BlinkLean Support
// @contact.url    https://github.com/sunilmaharaj1991-max/BlinkLean
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Availability
// @tag.description Zone serviceability
//
// @tag.name        Scrap
// @tag.description Scrap valuation and rates
//
// @tag.name        Address
// @tag.description Address suggestions
//
// @tag.name        Assistant
// @tag.description Customer chat assistant
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/sunilmaharaj1991-max/BlinkLean/docs" // swagger docs
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("blinklean failed")
	}
}
