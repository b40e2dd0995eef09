package open

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/iris-platform/iris-go/internal/cmd/base"
	"github.com/iris-platform/iris-go/internal/config"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "Open the IRIS dashboard in a browser"
}

func (c *Command) Help() string {
	return `Usage: iris open

  Opens the configured dashboard URL in the default browser.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the IRIS config file.")

	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}

	_, cfg, err := c.LoadSDK(c.flagConfig)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	url := cfg.DashboardURL
	if url == "" {
		url = config.DefaultDashboardURL
	}

	if err := browser.OpenURL(url); err != nil {
		c.UI.Error(fmt.Sprintf("error opening %s: %v", url, err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("Opened %s", url))
	return 0
}
