package version

import (
	"github.com/iris-platform/iris-go/internal/cmd/base"
	"github.com/iris-platform/iris-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return "Usage: iris version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
