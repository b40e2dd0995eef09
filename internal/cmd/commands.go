package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/iris-platform/iris-go/internal/cmd/base"
	"github.com/iris-platform/iris-go/internal/cmd/commands/agents"
	"github.com/iris-platform/iris-go/internal/cmd/commands/bloqs"
	"github.com/iris-platform/iris-go/internal/cmd/commands/open"
	"github.com/iris-platform/iris-go/internal/cmd/commands/pages"
	"github.com/iris-platform/iris-go/internal/cmd/commands/servis"
	versioncmd "github.com/iris-platform/iris-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
		"agents list": func() (cli.Command, error) {
			return &agents.ListCommand{Command: b}, nil
		},
		"agents create": func() (cli.Command, error) {
			return &agents.CreateCommand{Command: b}, nil
		},
		"bloqs ingest": func() (cli.Command, error) {
			return &bloqs.IngestCommand{Command: b}, nil
		},
		"pages get": func() (cli.Command, error) {
			return &pages.GetCommand{Command: b}, nil
		},
		"pages set": func() (cli.Command, error) {
			return &pages.SetCommand{Command: b}, nil
		},
		"servis call": func() (cli.Command, error) {
			return &servis.CallCommand{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &open.Command{Command: b}, nil
		},
	}
}
