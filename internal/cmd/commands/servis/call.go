package servis

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iris-platform/iris-go/internal/cmd/base"
)

type CallCommand struct {
	*base.Command

	flagConfig string
	flagFormat string
	flagParam  base.KVFlag
}

func (c *CallCommand) Synopsis() string {
	return "Invoke a Servis.ai remote function"
}

func (c *CallCommand) Help() string {
	return `Usage: iris servis call FUNCTION [options]

  Invokes a remote function on the connected Servis.ai integration and
  prints the response. FUNCTION may be camelCase or snake_case; camelCase
  names are converted before dispatch:

    iris servis call getCaseDetails -param case_id=81223` +
		c.Flags().Help()
}

func (c *CallCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("servis call", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the IRIS config file.")
	f.StringVar(&c.flagFormat, "format", base.FormatJSON,
		"Output format: json or yaml.")
	f.Var(&c.flagParam, "param",
		"Function parameter as key=value; may repeat.")

	return f
}

func (c *CallCommand) Run(args []string) int {
	// The function name comes before any flags; stdlib flag parsing stops at
	// the first non-flag token, so flags are parsed from the remainder.
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		c.UI.Error("a function name is required before any flags")
		return 1
	}
	function := args[0]

	flags := c.Flags()
	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}
	if extra := flags.Args(); len(extra) > 0 {
		c.UI.Error(fmt.Sprintf("unexpected argument %q", extra[0]))
		return 1
	}

	sdk, _, err := c.LoadSDK(c.flagConfig)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	result, err := sdk.Integrations.Servis().Call(
		context.Background(), function, c.flagParam.Map())
	if err != nil {
		c.UI.Error(fmt.Sprintf("error calling %s: %v", function, err))
		return 1
	}

	if err := c.PrintStructured(c.flagFormat, result); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
