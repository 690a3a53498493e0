package main

import (
	"fmt"
	"time"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/rscpal"
	"github.com/hausenergie/librscp-go/tags"
	"github.com/spf13/cobra"
)

var flaginterval time.Duration

var emsCmd = &cobra.Command{
	Use:   "ems",
	Short: "Show the live power flow",
	Long: `Show the energy management figures: solar production, battery and grid
power, house consumption and the battery state of charge.

With --interval the query repeats on the same session until interrupted.`,
	RunE: runEms,
}

func init() {
	emsCmd.Flags().DurationVarP(&flaginterval, "interval", "i", 0, "Repeat every interval, 0 queries once")
	rootCmd.AddCommand(emsCmd)
}

func runEms(cmd *cobra.Command, args []string) error {
	client, err := openclient()
	if err != nil {
		return err
	}
	defer client.Close()

	for {
		rsp, err := client.SendReceive(
			rscpal.Request(tags.EmsPowerPV),
			rscpal.Request(tags.EmsPowerBat),
			rscpal.Request(tags.EmsPowerHome),
			rscpal.Request(tags.EmsPowerGrid),
			rscpal.Request(tags.EmsBatSOC),
			rscpal.Request(tags.EmsAutarky),
			rscpal.Request(tags.EmsSelfConsumption),
		)
		if err != nil {
			return err
		}

		printwatts(rsp, tags.EmsPowerPV, "Solar")
		printwatts(rsp, tags.EmsPowerBat, "Battery")
		printwatts(rsp, tags.EmsPowerHome, "Home")
		printwatts(rsp, tags.EmsPowerGrid, "Grid")
		var soc byte
		if err = rsp.CastValue(tags.EmsBatSOC, &soc); err == nil {
			fmt.Printf("%-18s %6d %%\n", "Battery charge", soc)
		}
		printpercent(rsp, tags.EmsAutarky, "Autarky")
		printpercent(rsp, tags.EmsSelfConsumption, "Self consumption")

		if flaginterval <= 0 {
			return nil
		}
		fmt.Println()
		time.Sleep(flaginterval)
	}
}

func printwatts(rsp *rscpal.Frame, tag base.Tag, label string) {
	var w int32
	if err := rsp.CastValue(tag, &w); err != nil {
		fmt.Printf("%-18s not available (%v)\n", label, err)
		return
	}
	fmt.Printf("%-18s %6d W\n", label, w)
}

func printpercent(rsp *rscpal.Frame, tag base.Tag, label string) {
	var p float32
	if err := rsp.CastValue(tag, &p); err != nil {
		fmt.Printf("%-18s not available (%v)\n", label, err)
		return
	}
	fmt.Printf("%-18s %6.1f %%\n", label, p)
}
