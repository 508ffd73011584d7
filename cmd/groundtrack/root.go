package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "groundtrack",
	Short: "Propagate a TLE and report states in a chosen reference frame",
	Long: "groundtrack reads a two-line element set, propagates it with SGP4 " +
		"(states come out in TEME), and rotates each state into the requested " +
		"reference frame. Earth-fixed targets need IERS finals data for UT1 " +
		"and polar motion.",
	RunE: runGroundtrack,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.String("tle", "", "path to a TLE file (two or three lines)")
	flags.String("start", "", "propagation start, RFC 3339 UTC (default: the current time)")
	flags.Duration("duration", 0, "propagation window (default 90m)")
	flags.Duration("step", 0, "propagation step (default 60s)")
	flags.String("frame", "ITRF", "target reference frame (e.g. ITRF, TEME, ICRF, IAU_EARTH)")
	flags.String("finals-csv", "", "path to the IERS finals2000A CSV")
	flags.String("eop-cache", "", "path to the local EOP cache database")
	flags.String("format", "csv", "output format: csv or json")
	_ = rootCmd.MarkFlagRequired("tle")

	viper.SetEnvPrefix("GROUNDTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)
}
