package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"
)

// fileconfig is the YAML shape of the optional config file. Pointer fields
// tell an absent value apart from a zero one.
type fileconfig struct {
	Host     string  `yaml:"host"`
	Port     *int    `yaml:"port"`
	Key      string  `yaml:"key"`
	User     string  `yaml:"user"`
	Password string  `yaml:"password"`
	Timeout  *string `yaml:"timeout"`
}

type runconfig struct {
	Host     string
	Port     int
	Key      string
	User     string
	Password string
	Timeout  time.Duration
}

func loadconfig(path string) (*fileconfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileconfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveconfig merges the config file under the flags, an explicitly set
// flag always wins over the file.
func resolveconfig() (*runconfig, error) {
	rc := runconfig{
		Host:     flaghost,
		Port:     flagport,
		Key:      flagkey,
		User:     flaguser,
		Password: flagpassword,
		Timeout:  flagtimeout,
	}
	if flagconfig == "" {
		return &rc, nil
	}
	cfg, err := loadconfig(flagconfig)
	if err != nil {
		return nil, err
	}
	fl := rootCmd.PersistentFlags()
	if !fl.Changed("host") && cfg.Host != "" {
		rc.Host = cfg.Host
	}
	if !fl.Changed("port") {
		rc.Port = ptr.Deref(cfg.Port, rc.Port)
	}
	if !fl.Changed("key") && cfg.Key != "" {
		rc.Key = cfg.Key
	}
	if !fl.Changed("user") && cfg.User != "" {
		rc.User = cfg.User
	}
	if !fl.Changed("password") && cfg.Password != "" {
		rc.Password = cfg.Password
	}
	if !fl.Changed("timeout") && cfg.Timeout != nil {
		rc.Timeout, err = time.ParseDuration(*cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
	}
	return &rc, nil
}
