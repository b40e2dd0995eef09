package pages

import (
	"context"
	"flag"
	"fmt"

	"github.com/iris-platform/iris-go/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	flagConfig string
	flagFormat string
	flagPage   string
	flagPath   string
}

func (c *GetCommand) Synopsis() string {
	return "Read a page or one component of it"
}

func (c *GetCommand) Help() string {
	return `Usage: iris pages get -page=ID [-path=DOT.PATH]

  Fetches a page. Without -path the whole component tree is printed; with
  -path only the addressed value:

    iris pages get -page=home -path=sections.0.props.title` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("pages get", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the IRIS config file.")
	f.StringVar(&c.flagFormat, "format", base.FormatJSON,
		"Output format: json or yaml.")
	f.StringVar(&c.flagPage, "page", "", "ID of the page to read.")
	f.StringVar(&c.flagPath, "path", "",
		"Dot path into the component tree; omit for the full tree.")

	return f
}

func (c *GetCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if c.flagPage == "" {
		c.UI.Error("the -page flag is required")
		return 1
	}

	sdk, _, err := c.LoadSDK(c.flagConfig)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	page, err := sdk.Pages.Get(context.Background(), c.flagPage)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching page: %v", err))
		return 1
	}

	var value any = page.Content
	if c.flagPath != "" {
		found, ok := page.Component(c.flagPath)
		if !ok {
			c.UI.Error(fmt.Sprintf("path %q not found in page %s", c.flagPath, c.flagPage))
			return 1
		}
		value = found
	}

	if err := c.PrintStructured(c.flagFormat, value); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	return 0
}
