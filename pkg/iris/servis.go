package iris

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"

	"github.com/iris-platform/iris-go/pkg/client"
)

// servisIntegrationID is the fixed provider identifier the generic execute
// endpoint expects for Servis.ai calls.
const servisIntegrationID = "servis"

// ServisProxy invokes arbitrary remote functions on the Servis.ai
// integration through the platform's generic execute endpoint.
//
// Rather than dynamic dispatch, the Go surface is an explicit Execute plus
// Call, which translates a camelCase method name to the snake_case remote
// function identifier. A few typed wrappers cover the common operations;
// Call remains the generic fallback for everything else.
type ServisProxy struct {
	client *client.Client
	logger hclog.Logger
}

// ToSnakeCase converts a camelCase method name to the snake_case identifier
// the remote function registry uses. Already-snake_case input passes
// through unchanged.
func ToSnakeCase(name string) string {
	return strcase.ToSnake(name)
}

// Execute runs a named remote function with the given parameters and
// returns the decoded response body. A remote error payload such as
// {"error": "..."} comes back as data — interpreting it is the caller's
// job. Transport and HTTP errors propagate unchanged.
func (p *ServisProxy) Execute(ctx context.Context, action string, parameters map[string]any) (map[string]any, error) {
	if parameters == nil {
		parameters = map[string]any{}
	}
	body := map[string]any{
		"integration": servisIntegrationID,
		"action":      action,
		"parameters":  parameters,
	}

	p.logger.Debug("executing servis function", "action", action)

	var result map[string]any
	if err := p.client.Post(ctx, apiPrefix+"/integrations/execute", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Call snake-cases a camelCase method name and delegates to Execute.
func (p *ServisProxy) Call(ctx context.Context, methodName string, parameters map[string]any) (map[string]any, error) {
	return p.Execute(ctx, ToSnakeCase(methodName), parameters)
}

// ListAccountUsers returns the users of the connected Servis account.
func (p *ServisProxy) ListAccountUsers(ctx context.Context) (map[string]any, error) {
	return p.Execute(ctx, "list_account_users", nil)
}

// GetCaseDetails returns a single case by ID.
func (p *ServisProxy) GetCaseDetails(ctx context.Context, caseID string) (map[string]any, error) {
	return p.Execute(ctx, "get_case_details", map[string]any{"case_id": caseID})
}

// CreateCase opens a new case with the given fields.
func (p *ServisProxy) CreateCase(ctx context.Context, fields map[string]any) (map[string]any, error) {
	return p.Execute(ctx, "create_case", fields)
}
