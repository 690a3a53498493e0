package main

import (
	"fmt"
	"time"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/rscpal"
	"github.com/hausenergie/librscp-go/tcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flaghost     string
	flagport     int
	flagkey      string
	flaguser     string
	flagpassword string
	flagtimeout  time.Duration
	flagconfig   string
	flagverbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "rscpctl",
	Short: "RSCP client for E3/DC storage controllers",
	Long: `rscpctl talks to an E3/DC home energy storage controller over its local
RSCP interface.

Every command needs the controller address and three credentials: the RSCP key
configured on the device plus the portal username and password. They can be
given as flags or kept in a YAML config file:

  host: 192.168.1.100
  key: mysecret
  user: user@example.com
  password: portalpassword

Prefer the config file for the key and password so they stay out of the shell
history.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flaghost, "host", "H", "", "Controller address")
	rootCmd.PersistentFlags().IntVarP(&flagport, "port", "p", base.DefaultPort, "RSCP port")
	rootCmd.PersistentFlags().StringVarP(&flagkey, "key", "k", "", "RSCP encryption key")
	rootCmd.PersistentFlags().StringVarP(&flaguser, "user", "u", "", "Portal username")
	rootCmd.PersistentFlags().StringVar(&flagpassword, "password", "", "Portal password")
	rootCmd.PersistentFlags().DurationVarP(&flagtimeout, "timeout", "t", 30*time.Second, "Communication timeout")
	rootCmd.PersistentFlags().StringVarP(&flagconfig, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagverbose, "verbose", "v", false, "Log the protocol exchange")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// openclient builds a client from the resolved configuration and logs in.
func openclient() (rscpal.Client, error) {
	rc, err := resolveconfig()
	if err != nil {
		return nil, err
	}
	if rc.Host == "" {
		return nil, fmt.Errorf("no controller host given, use --host or a config file")
	}

	client := rscpal.New(tcp.New(rc.Host, rc.Port, rc.Timeout), rscpal.NewSettings(rc.Key, rc.User, rc.Password))
	if flagverbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		client.SetLogger(logger.Sugar())
	}
	if err = client.Open(); err != nil {
		return nil, err
	}
	return client, nil
}

func printstring(rsp *rscpal.Frame, tag base.Tag, label string) {
	var s string
	if err := rsp.CastValue(tag, &s); err != nil {
		fmt.Printf("%-18s not available (%v)\n", label, err)
		return
	}
	fmt.Printf("%-18s %s\n", label, s)
}
