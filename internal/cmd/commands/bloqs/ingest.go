package bloqs

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/iris-platform/iris-go/internal/cmd/base"
	"github.com/iris-platform/iris-go/pkg/jobs"
)

type IngestCommand struct {
	*base.Command

	flagConfig   string
	flagBloq     string
	flagDir      string
	flagWait     bool
	flagInterval time.Duration
	flagTimeout  time.Duration
}

func (c *IngestCommand) Synopsis() string {
	return "Upload a folder of documents into a bloq"
}

func (c *IngestCommand) Help() string {
	return `Usage: iris bloqs ingest -bloq=ID -dir=PATH [options]

  Uploads every file under PATH to the bloq's staging folder and starts a
  server-side ingestion job. With -wait the command blocks until the job
  reaches a terminal state, printing progress as the server reports it.` +
		c.Flags().Help()
}

func (c *IngestCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("bloqs ingest", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the IRIS config file.")
	f.StringVar(&c.flagBloq, "bloq", "", "ID of the bloq to ingest into.")
	f.StringVar(&c.flagDir, "dir", "", "Folder whose files should be ingested.")
	f.BoolVar(&c.flagWait, "wait", false,
		"Block until the ingestion job finishes.")
	f.DurationVar(&c.flagInterval, "poll-interval", jobs.DefaultInterval,
		"Interval between status polls when waiting.")
	f.DurationVar(&c.flagTimeout, "timeout", jobs.DefaultTimeout,
		"Give up waiting after this long; the job keeps running server-side.")

	return f
}

func (c *IngestCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if c.flagBloq == "" || c.flagDir == "" {
		c.UI.Error("both -bloq and -dir are required")
		return 1
	}

	sdk, _, err := c.LoadSDK(c.flagConfig)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	jobID, err := sdk.Bloqs.IngestFolder(ctx, c.flagBloq, c.flagDir)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error starting ingestion: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("Started ingestion job %s", jobID))

	if !c.flagWait {
		return 0
	}

	status, err := sdk.Bloqs.WaitForIngestion(ctx, c.flagBloq, jobID, jobs.WaitOptions{
		Interval: c.flagInterval,
		Timeout:  c.flagTimeout,
		OnUpdate: func(s *jobs.Status) error {
			c.UI.Info(fmt.Sprintf("  %s: %.0f%% (%d/%d files)",
				s.Status, s.ProgressPercent, s.ProcessedFiles, s.TotalFiles))
			return nil
		},
	})
	if err != nil {
		var failed *jobs.JobFailedError
		var timedOut *jobs.TimeoutError
		switch {
		case errors.As(err, &failed):
			c.UI.Error(fmt.Sprintf("Ingestion failed: %s", failed.Summary))
			for _, entry := range failed.Status.ErrorLog {
				c.UI.Error(fmt.Sprintf("  %s: %s", entry.File, entry.Error))
			}
		case errors.As(err, &timedOut):
			c.UI.Error(fmt.Sprintf(
				"Gave up after %s; job %s is still running server-side",
				c.flagTimeout, jobID))
		default:
			c.UI.Error(fmt.Sprintf("error waiting for ingestion: %v", err))
		}
		return 1
	}

	c.UI.Info(fmt.Sprintf("Ingestion %s: %d/%d files processed",
		status.Status, status.ProcessedFiles, status.TotalFiles))
	if len(status.ErrorLog) > 0 {
		c.UI.Warn("Some files were skipped:")
		for _, entry := range status.ErrorLog {
			c.UI.Warn(fmt.Sprintf("  %s: %s", entry.File, entry.Error))
		}
	}
	return 0
}
