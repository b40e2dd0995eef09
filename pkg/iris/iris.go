// Package iris contains the typed resource services of the IRIS platform
// SDK. Each service is a thin wrapper that serializes arguments into HTTP
// requests through pkg/client and decodes JSON responses into model structs.
//
// The interesting mechanics live elsewhere: pkg/nested (dot-path access and
// merging), pkg/templates (agent template resolution) and pkg/jobs (folder
// ingestion polling). Services here wire those into the resource surface.
package iris

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/iris-platform/iris-go/pkg/client"
	"github.com/iris-platform/iris-go/pkg/templates"
)

const apiPrefix = "api/v1"

// IRIS bundles every resource service over a shared transport.
type IRIS struct {
	Agents       *AgentsService
	Workflows    *WorkflowsService
	Bloqs        *BloqsService
	Leads        *LeadsService
	Integrations *IntegrationsService
	RAG          *RAGService
	Programs     *ProgramsService
	Courses      *CoursesService
	Pages        *PagesService
	Schedules    *SchedulesService
	Payments     *PaymentsService

	client *client.Client
	logger hclog.Logger
}

// Options tune SDK construction. All fields are optional.
type Options struct {
	// Logger for service-level debug output. Default: null logger.
	Logger hclog.Logger
	// Templates used by Agents.CreateFromTemplate. Default: the built-in
	// registry.
	Templates *templates.Registry
	// Fs is the filesystem folder ingestion walks. Default: OS filesystem.
	Fs afero.Fs
}

// New creates the SDK root over an already-configured client.
func New(c *client.Client, opts *Options) *IRIS {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	registry := opts.Templates
	if registry == nil {
		registry = templates.BuiltIn()
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	sdk := &IRIS{client: c, logger: logger.Named("iris")}
	sdk.Agents = &AgentsService{client: c, logger: sdk.logger, templates: registry}
	sdk.Workflows = &WorkflowsService{client: c, logger: sdk.logger}
	sdk.Bloqs = &BloqsService{client: c, logger: sdk.logger, fs: fs}
	sdk.Leads = &LeadsService{client: c, logger: sdk.logger}
	sdk.Integrations = &IntegrationsService{client: c, logger: sdk.logger}
	sdk.RAG = &RAGService{client: c, logger: sdk.logger}
	sdk.Programs = &ProgramsService{client: c, logger: sdk.logger}
	sdk.Courses = &CoursesService{client: c, logger: sdk.logger}
	sdk.Pages = &PagesService{client: c, logger: sdk.logger}
	sdk.Schedules = &SchedulesService{client: c, logger: sdk.logger}
	sdk.Payments = &PaymentsService{client: c, logger: sdk.logger}
	return sdk
}
