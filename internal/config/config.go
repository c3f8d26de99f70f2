package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/facilitymap/internal/model"
)

const defaultWorkers = 4

// Config holds all runtime configuration for a facgen run.
type Config struct {
	LogFormat string // "text" or "json"

	// Snapshot source: exactly one of the two.
	SnapshotDir string
	SnapshotURL string

	OutDir    string
	PeriodStr string
	Period    model.Period
	Regions   []string
	Workers   int

	// plan
	Region string

	// load
	DSN     string
	DataDir string
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	SnapshotDir string   `yaml:"snapshot_dir"`
	SnapshotURL string   `yaml:"snapshot_url"`
	OutDir      string   `yaml:"out_dir"`
	Regions     []string `yaml:"regions"`
	Workers     int      `yaml:"workers"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set by flags win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if c.SnapshotDir == "" {
		c.SnapshotDir = yc.SnapshotDir
	}
	if c.SnapshotURL == "" {
		c.SnapshotURL = yc.SnapshotURL
	}
	if c.OutDir == "" {
		c.OutDir = yc.OutDir
	}
	if len(c.Regions) == 0 {
		c.Regions = yc.Regions
	}
	if c.Workers == 0 {
		c.Workers = yc.Workers
	}
	return nil
}

// Validate normalizes and checks the fields a generate run needs.
func (c *Config) Validate() error {
	if err := c.resolveSource(); err != nil {
		return err
	}
	if c.OutDir == "" {
		return fmt.Errorf("--out is required")
	}
	if err := c.resolvePeriod(); err != nil {
		return err
	}

	if len(c.Regions) == 0 {
		c.Regions = append([]string(nil), model.DefaultRegions...)
	}
	for i, r := range c.Regions {
		name := strings.ToUpper(strings.TrimSpace(r))
		if !model.KnownRegion(name) {
			return fmt.Errorf("unknown region %q", r)
		}
		c.Regions[i] = name
	}

	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
	if c.Workers < 1 {
		return fmt.Errorf("--workers must be positive")
	}
	return nil
}

// ValidatePlan checks the fields a plan dry run needs.
func (c *Config) ValidatePlan() error {
	if err := c.resolveSource(); err != nil {
		return err
	}
	if err := c.resolvePeriod(); err != nil {
		return err
	}

	if c.Region == "" {
		return fmt.Errorf("--region is required")
	}
	name := strings.ToUpper(strings.TrimSpace(c.Region))
	if !model.KnownRegion(name) {
		return fmt.Errorf("unknown region %q", c.Region)
	}
	c.Region = name
	return nil
}

// ValidateLoad checks the fields a load run needs.
func (c *Config) ValidateLoad() error {
	if c.DataDir == "" {
		return fmt.Errorf("--dir is required")
	}
	if _, err := os.Stat(c.DataDir); err != nil {
		return fmt.Errorf("data dir not accessible: %w", err)
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}

func (c *Config) resolveSource() error {
	if c.SnapshotDir == "" && c.SnapshotURL == "" {
		return fmt.Errorf("--snapshot-dir or --snapshot-url is required")
	}
	if c.SnapshotDir != "" && c.SnapshotURL != "" {
		return fmt.Errorf("--snapshot-dir and --snapshot-url are mutually exclusive")
	}
	return nil
}

// resolvePeriod parses the requested period, defaulting to the most recent
// period the publisher can be expected to have.
func (c *Config) resolvePeriod() error {
	if c.PeriodStr == "" {
		c.Period = model.CurrentPeriod(time.Now())
		return nil
	}
	p, err := model.ParsePeriod(c.PeriodStr)
	if err != nil {
		return err
	}
	c.Period = p
	return nil
}
