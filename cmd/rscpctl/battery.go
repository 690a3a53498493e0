package main

import (
	"fmt"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/rscpal"
	"github.com/hausenergie/librscp-go/tags"
	"github.com/spf13/cobra"
)

var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Show battery pack details",
	RunE:  runBattery,
}

func init() {
	rootCmd.AddCommand(batteryCmd)
}

func runBattery(cmd *cobra.Command, args []string) error {
	client, err := openclient()
	if err != nil {
		return err
	}
	defer client.Close()

	rsp, err := client.SendReceive(
		rscpal.Request(tags.BatDeviceName),
		rscpal.Request(tags.BatRSOC),
		rscpal.Request(tags.BatModuleVoltage),
		rscpal.Request(tags.BatTerminalVoltage),
		rscpal.Request(tags.BatCurrent),
		rscpal.Request(tags.BatChargeCycles),
		rscpal.Request(tags.BatUsableCapacity),
		rscpal.Request(tags.BatUsableRemainingCapacity),
	)
	if err != nil {
		return err
	}

	printstring(rsp, tags.BatDeviceName, "Device")
	printfloat(rsp, tags.BatRSOC, "State of charge", "%")
	printfloat(rsp, tags.BatModuleVoltage, "Module voltage", "V")
	printfloat(rsp, tags.BatTerminalVoltage, "Terminal voltage", "V")
	printfloat(rsp, tags.BatCurrent, "Current", "A")
	var cycles uint32
	if err = rsp.CastValue(tags.BatChargeCycles, &cycles); err == nil {
		fmt.Printf("%-18s %8d\n", "Charge cycles", cycles)
	}
	printfloat(rsp, tags.BatUsableCapacity, "Usable capacity", "")
	printfloat(rsp, tags.BatUsableRemainingCapacity, "Usable remaining", "")
	return nil
}

func printfloat(rsp *rscpal.Frame, tag base.Tag, label string, unit string) {
	var v float64
	if err := rsp.CastValue(tag, &v); err != nil {
		fmt.Printf("%-18s not available (%v)\n", label, err)
		return
	}
	fmt.Printf("%-18s %8.2f %s\n", label, v, unit)
}
