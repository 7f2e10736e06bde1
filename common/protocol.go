package common

// Version is the JSON-RPC protocol version this agent speaks.
const Version = "2.0"

// JSON-RPC 2.0 error codes used by the dispatcher.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// --- Wire envelopes (Platform <-> Agent) ---

// Request is an inbound JSON-RPC envelope from the messaging platform.
// The id may be a string, a number, or absent (null); it is echoed back
// verbatim in the response.
type Request struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params,omitempty"`
	ID      any            `json:"id"`
}

// Response is the outbound JSON-RPC envelope. Exactly one of Result/Error
// is present on the wire.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      any    `json:"id"`
}

// Error carries a JSON-RPC error code and message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewSuccess builds a success envelope echoing the request id.
func NewSuccess(id, result any) Response {
	return Response{JSONRPC: Version, Result: result, ID: id}
}

// NewError builds an error envelope echoing the request id.
func NewError(id any, code int, message string) Response {
	return Response{JSONRPC: Version, Error: &Error{Code: code, Message: message}, ID: id}
}

// --- Agent descriptor ---

// AgentInfo describes the agent to the platform ("info" method and GET /info).
type AgentInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
	Commands     []string `json:"commands"`
	Status       string   `json:"status"`
}
