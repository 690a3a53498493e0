package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/rscpal"
	"github.com/hausenergie/librscp-go/tags"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get TAG...",
	Short: "Query arbitrary tags",
	Long: `Query one or more tags by catalogue name or raw hex value and print
whatever the controller answers:

  rscpctl get EMS_POWER_PV EMS_POWER_GRID
  rscpctl get 0x0A000001`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	items := make([]rscpal.Item, 0, len(args))
	for _, a := range args {
		t, err := parsetag(a)
		if err != nil {
			return err
		}
		items = append(items, rscpal.Request(t))
	}

	client, err := openclient()
	if err != nil {
		return err
	}
	defer client.Close()

	rsp, err := client.SendReceive(items...)
	if err != nil {
		return err
	}
	for i := range rsp.Items {
		it := &rsp.Items[i]
		fmt.Printf("%s (%v) = %s\n", tags.Name(it.Tag), it.Value.Type, formatvalue(&it.Value))
	}
	return nil
}

func parsetag(s string) (base.Tag, error) {
	if t, ok := tags.Lookup(s); ok {
		return t, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown tag %q", s)
	}
	return base.Tag(v), nil
}

func formatvalue(v *rscpal.Value) string {
	switch v.Type {
	case base.DataTypeNone:
		return "none"
	case base.DataTypeTimestamp:
		t, _ := v.AsTimestamp()
		return t.Format(time.RFC3339Nano)
	case base.DataTypeByteArray:
		b, _ := v.AsByteArray()
		return fmt.Sprintf("0x%X", b)
	case base.DataTypeContainer:
		items, _ := v.AsContainer()
		parts := make([]string, 0, len(items))
		for i := range items {
			parts = append(parts, fmt.Sprintf("%s=%s", tags.Name(items[i].Tag), formatvalue(&items[i].Value)))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case base.DataTypeError:
		code, _ := v.AsErrorCode()
		return fmt.Sprintf("error %v", code)
	default:
		return fmt.Sprintf("%v", v.Value)
	}
}
