package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"detailflow/services/extract"
)

// RegisterExtractTools wires the screenshot formatter onto the registry.
func RegisterExtractTools(r *Registry) {
	r.Register(&ToolDef{
		Name:        "screenshot_extract_format",
		Description: "Normalize fields pulled from a chat screenshot into a record summary with suggested follow-up tool calls.",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"phone":{"type":"string"},"address":{"type":"string"},"locationArea":{"type":"string"},"vehicle":{"type":"string"},"serviceType":{"type":"string"},"requestedDate":{"type":"string"},"requestedTime":{"type":"string"},"price":{"type":"number"},"referralSource":{"type":"string"},"notes":{"type":"string"}}}`),
		Handler:     screenshotExtractFormat(),
	})
}

func screenshotExtractFormat() ToolHandler {
	return func(ctx context.Context, input json.RawMessage) *ToolResult {
		var extraction extract.Extraction
		if err := decode(input, &extraction); err != nil {
			return Errorf("%v", err)
		}
		result := extract.Format(extraction)
		msg := result.Summary
		if len(result.MissingFields) > 0 {
			msg += fmt.Sprintf("\nStill missing: %s.", strings.Join(result.MissingFields, ", "))
		}
		return OK(msg, result)
	}
}
