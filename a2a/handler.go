// Package a2a implements the Agent-to-Agent protocol dispatcher: a JSON-RPC
// 2.0 request router between the messaging platform and the dictionary agent.
package a2a

import (
	"context"
	"fmt"
	"log"
	"strings"

	"smartdict/common"
	"smartdict/dictionary"
)

// AgentVersion is reported by the "info" method and the manifest endpoints.
const AgentVersion = "1.0.0"

// textFields is the priority order for locating the message text in params;
// the platform is inconsistent about which field it sends.
var textFields = []string{"message", "text", "content", "input"}

// Handler routes JSON-RPC envelopes to the dictionary agent.
type Handler struct {
	agent *dictionary.Agent
}

// NewHandler constructs a dispatcher around the given agent.
func NewHandler(agent *dictionary.Agent) *Handler {
	return &Handler{agent: agent}
}

// Handle dispatches one JSON-RPC request. It never panics: any fault inside
// dispatch is converted to a -32603 error envelope, so the caller can emit
// the returned response verbatim.
func (h *Handler) Handle(ctx context.Context, req common.Request) (resp common.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[A2A] Handler fault: %v", r)
			resp = common.NewError(req.ID, common.CodeInternalError, fmt.Sprintf("Internal error: %v", r))
		}
	}()

	if req.JSONRPC != common.Version {
		return common.NewError(req.ID, common.CodeInvalidRequest, "Invalid JSON-RPC version")
	}

	log.Printf("[A2A] Request - Method: %s, ID: %v", req.Method, req.ID)

	switch req.Method {
	case "message":
		return h.handleMessage(ctx, req)
	case "ping":
		return common.NewSuccess(req.ID, map[string]any{
			"status": "ok",
			"agent":  h.agent.Name(),
		})
	case "info":
		return common.NewSuccess(req.ID, h.AgentInfo())
	default:
		return common.NewError(req.ID, common.CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (h *Handler) handleMessage(ctx context.Context, req common.Request) common.Response {
	text := messageText(req.Params)
	if strings.TrimSpace(text) == "" {
		return common.NewError(req.ID, common.CodeInvalidParams, "No message content provided")
	}

	reply := h.agent.Process(ctx, text)

	// The platform's consumers disagree on which field carries the reply,
	// so every known alias gets the identical string.
	result := map[string]any{
		"type":     "message",
		"content":  reply,
		"format":   "text",
		"message":  reply,
		"text":     reply,
		"response": reply,
		"status":   "success",
		"agent":    h.agent.Name(),
	}
	return common.NewSuccess(req.ID, result)
}

// messageText returns the first non-empty string among the known text
// fields. Non-string values do not match.
func messageText(params map[string]any) string {
	for _, field := range textFields {
		if v, ok := params[field].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// AgentInfo describes this agent for the "info" method and GET /info.
func (h *Handler) AgentInfo() common.AgentInfo {
	return common.AgentInfo{
		Name:         h.agent.Name(),
		Version:      AgentVersion,
		Capabilities: []string{"message", "definitions", "examples"},
		Commands:     []string{"define", "meaning", "help"},
		Status:       "online",
	}
}
