package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"detailflow/utils"

	"go.uber.org/zap"
)

// ToolDef defines a tool the conversational agent can call.
type ToolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
	Handler     ToolHandler     `json:"-"`
}

// ToolResult is what a tool hands back to the agent: a short message to
// relay in chat plus a structured payload.
type ToolResult struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	IsError bool        `json:"is_error,omitempty"`
}

// ToolHandler executes a tool against its decoded input.
type ToolHandler func(ctx context.Context, input json.RawMessage) *ToolResult

// Registry manages the available tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ToolDef
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*ToolDef)}
}

// Register adds a tool to the registry, replacing any previous tool of
// the same name.
func (r *Registry) Register(tool *ToolDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (*ToolDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all registered tools sorted by name.
func (r *Registry) List() []*ToolDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ToolDef, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs the named tool. Unknown names come back as an error
// result with the catalog, so the agent can self-correct.
func (r *Registry) Execute(ctx context.Context, name string, input json.RawMessage) *ToolResult {
	tool, ok := r.Get(name)
	if !ok {
		all := r.List()
		names := make([]string, 0, len(all))
		for _, t := range all {
			names = append(names, t.Name)
		}
		return Errorf("unknown tool %q; available tools: %s", name, strings.Join(names, ", "))
	}
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}
	result := tool.Handler(ctx, input)
	if result.IsError {
		utils.GetLogger().Warn("tool returned error result",
			zap.String("tool", name), zap.String("message", result.Message))
	}
	return result
}

// OK builds a success result.
func OK(message string, details interface{}) *ToolResult {
	return &ToolResult{Message: message, Details: details}
}

// Errorf builds an error result the agent can relay or act on.
func Errorf(format string, args ...interface{}) *ToolResult {
	return &ToolResult{Message: fmt.Sprintf(format, args...), IsError: true}
}

// decode unmarshals tool input into its parameter struct.
func decode(input json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("malformed input: %w", err)
	}
	return nil
}
