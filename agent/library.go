package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is a tool a model can call.
type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary dispatches calls to the function of the same name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
	}
}

// NewDeclaration returns the declarations of the functions.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

// Report is a Function returning a markdown report.
type Report struct {
	Name        string
	Description string
	// Parameters are string parameters, by name, with their description.
	Parameters map[string]string
	Render     func(args map[string]string) (string, error)
}

func (r *Report) Declaration() *genai.FunctionDeclaration {
	d := &genai.FunctionDeclaration{
		Name:        r.Name,
		Description: r.Description,
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report.",
		},
	}
	if len(r.Parameters) > 0 {
		d.Parameters = &genai.Schema{Type: genai.TypeObject, Properties: make(map[string]*genai.Schema)}
		for name, desc := range r.Parameters {
			d.Parameters.Properties[name] = &genai.Schema{Type: genai.TypeString, Description: desc}
		}
	}
	return d
}

func (r *Report) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	params := make(map[string]string, len(args))
	for k, v := range args {
		if _, ok := r.Parameters[k]; !ok {
			return errorResponse(id, r.Name, fmt.Errorf("unknown parameter %q", k))
		}
		s, ok := v.(string)
		if !ok {
			return errorResponse(id, r.Name, fmt.Errorf("invalid type for %q got %T, expected string", k, v))
		}
		params[k] = s
	}
	out, err := r.Render(params)
	if err != nil {
		return errorResponse(id, r.Name, err)
	}
	return &genai.FunctionResponse{ID: id, Name: r.Name, Response: map[string]any{"output": out}}
}
