package agents

import (
	"context"
	"flag"
	"fmt"

	"github.com/iris-platform/iris-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagConfig string
	flagFormat string
}

func (c *ListCommand) Synopsis() string {
	return "List agents"
}

func (c *ListCommand) Help() string {
	return `Usage: iris agents list

  Lists every agent visible to the configured token.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("agents list", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the IRIS config file.")
	f.StringVar(&c.flagFormat, "format", base.FormatText,
		"Output format: text, json, or yaml.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}

	sdk, _, err := c.LoadSDK(c.flagConfig)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	agents, err := sdk.Agents.List(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing agents: %v", err))
		return 1
	}

	if c.flagFormat != base.FormatText {
		if err := c.PrintStructured(c.flagFormat, agents); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		return 0
	}

	if len(agents) == 0 {
		c.UI.Info("No agents found")
		return 0
	}
	for _, agent := range agents {
		c.UI.Output(fmt.Sprintf("%s  %s  (%s)", agent.ID, agent.Name, agent.Status))
	}
	return 0
}
