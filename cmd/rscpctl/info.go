package main

import (
	"fmt"
	"time"

	"github.com/hausenergie/librscp-go/rscpal"
	"github.com/hausenergie/librscp-go/tags"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device identity and software versions",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := openclient()
	if err != nil {
		return err
	}
	defer client.Close()

	rsp, err := client.SendReceive(
		rscpal.Request(tags.InfoSerialNumber),
		rscpal.Request(tags.InfoProductionDate),
		rscpal.Request(tags.InfoSwRelease),
		rscpal.Request(tags.InfoPlatformType),
		rscpal.Request(tags.InfoMACAddress),
		rscpal.Request(tags.InfoIPAddress),
		rscpal.Request(tags.InfoTime),
	)
	if err != nil {
		return err
	}

	printstring(rsp, tags.InfoSerialNumber, "Serial number")
	printstring(rsp, tags.InfoProductionDate, "Production date")
	printstring(rsp, tags.InfoSwRelease, "Software release")
	printstring(rsp, tags.InfoPlatformType, "Platform")
	printstring(rsp, tags.InfoMACAddress, "MAC address")
	printstring(rsp, tags.InfoIPAddress, "IP address")
	var t time.Time
	if err = rsp.CastValue(tags.InfoTime, &t); err == nil {
		fmt.Printf("%-18s %s\n", "Device time", t.Format(time.RFC3339))
	}
	fmt.Printf("%-18s %v\n", "Access level", client.UserLevel())
	return nil
}
