// Package base carries the pieces shared by every CLI command: the logger,
// the UI, flag-set help rendering, and the boilerplate of building an SDK
// from configuration.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/iris-platform/iris-go/internal/config"
	"github.com/iris-platform/iris-go/pkg/client"
	"github.com/iris-platform/iris-go/pkg/iris"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewCommand creates the shared command base.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{Log: log, UI: ui}
}

// LoadSDK builds an SDK instance from the given config file path (empty
// means environment-only configuration).
func (c *Command) LoadSDK(configPath string) (*iris.IRIS, *config.Config, error) {
	cfg, err := config.Load(afero.NewOsFs(), configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	clientCfg.Logger = c.Log

	apiClient, err := client.New(clientCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating API client: %w", err)
	}

	return iris.New(apiClient, &iris.Options{Logger: c.Log}), cfg, nil
}

// FlagSet wraps flag.FlagSet with help rendering for command Help() output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps a flag.FlagSet.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag set as an indented block for a command's Help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		b.WriteString(fmt.Sprintf("  -%s\n", fl.Name))
		usage := fl.Usage
		if fl.DefValue != "" && fl.DefValue != "false" {
			usage = fmt.Sprintf("%s (default: %s)", usage, fl.DefValue)
		}
		b.WriteString(fmt.Sprintf("      %s\n", usage))
	})
	return strings.TrimSuffix(b.String(), "\n")
}
