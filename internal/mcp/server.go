// Package mcp implements the MCP server surface: JSON-RPC 2.0, one request
// per line on the input stream, one response per line on the output stream.
// It validates tool arguments, invokes the iterm client, and forwards results
// or failure messages verbatim to the caller.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/glorko/itermlink/internal/config"
	"github.com/glorko/itermlink/internal/iterm"
)

const protocolVersion = "2024-11-05"

// JSON-RPC envelope types.

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    serverCapabilities `json:"capabilities"`
	ServerInfo      serverInfo         `json:"serverInfo"`
}

type serverCapabilities struct {
	Tools *toolsCapability `json:"tools,omitempty"`
}

type toolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

type tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema inputSchema `json:"inputSchema"`
}

type inputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type toolsListResult struct {
	Tools []tool `json:"tools"`
}

type callToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

type toolResult struct {
	Content []contentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Server dispatches MCP requests to the iterm client. It owns no session
// state; every tool call is an independent round-trip against iTerm2.
type Server struct {
	client  *iterm.Client
	cfg     *config.Config
	log     *logrus.Entry
	in      io.Reader
	out     io.Writer
	version string
}

// NewServer wires a dispatcher over the given streams.
func NewServer(client *iterm.Client, cfg *config.Config, log *logrus.Entry, in io.Reader, out io.Writer, version string) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Server{client: client, cfg: cfg, log: log, in: in, out: out, version: version}
}

// Serve reads requests until the input stream closes. Tool failures are
// reported to the caller, never fatal to the server.
func (s *Server) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			s.sendError(nil, -32700, "Parse error")
			continue
		}
		s.handleRequest(ctx, req)
	}
	return scanner.Err()
}

func (s *Server) handleRequest(ctx context.Context, req request) {
	s.log.WithField("method", req.Method).Debug("request")

	switch req.Method {
	case "initialize":
		s.sendResult(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    serverCapabilities{Tools: &toolsCapability{}},
			ServerInfo:      serverInfo{Name: "itermlink", Version: s.version},
		})

	case "notifications/initialized":
		// No response needed.

	case "tools/list":
		s.sendResult(req.ID, toolsListResult{Tools: toolList()})

	case "tools/call":
		var params callToolParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(req.ID, -32602, "Invalid params")
			return
		}
		text, isErr := s.callTool(ctx, params)
		s.sendResult(req.ID, toolResult{
			Content: []contentItem{{Type: "text", Text: text}},
			IsError: isErr,
		})

	default:
		s.sendError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (s *Server) sendResult(id interface{}, result interface{}) {
	s.write(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(id interface{}, code int, message string) {
	s.write(response{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}})
}

func (s *Server) write(resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.WithError(err).Error("failed to marshal response")
		return
	}
	fmt.Fprintln(s.out, string(data))
}
