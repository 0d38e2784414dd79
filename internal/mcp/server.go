package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Server serves MCP requests for one project root. Requests are handled
// sequentially in arrival order; the underlying operations are plain
// filesystem reads and need no locking beyond the write mutex guarding
// the output stream.
type Server struct {
	projectRoot string
	serverName  string
	version     string
	logger      *slog.Logger

	reader  *bufio.Reader
	writer  io.Writer
	writeMu sync.Mutex

	initialized bool
}

// NewServer creates a Server reading newline-delimited JSON-RPC messages
// from r and writing responses to w. The logger must not write to w:
// stdout is the wire.
func NewServer(projectRoot, version string, r io.Reader, w io.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		projectRoot: projectRoot,
		serverName:  "forma",
		version:     version,
		logger:      logger,
		reader:      bufio.NewReaderSize(r, 64*1024),
		writer:      w,
	}
}

// Serve reads and dispatches messages until EOF, a read error, or context
// cancellation. Malformed lines produce JSON-RPC error responses rather
// than terminating the loop.
func (s *Server) Serve(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadBytes('\n')
		if len(line) == 0 && err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		if isBlank(line) {
			continue
		}

		var req request
		if uerr := json.Unmarshal(line, &req); uerr != nil {
			s.logger.Warn("parse error", "error", uerr)
			if werr := s.write(newErrorResponse(nil, CodeParseError, "parse error: "+uerr.Error())); werr != nil {
				return werr
			}
			continue
		}

		if resp := s.dispatch(&req); resp != nil {
			if werr := s.write(resp); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

// dispatch routes a request to its handler. Notifications return nil.
func (s *Server) dispatch(req *request) *response {
	s.logger.Debug("request", "method", req.Method)

	if req.isNotification() {
		// notifications/initialized and friends need no reply.
		return nil
	}

	var (
		result any
		err    error
	)

	switch req.Method {
	case "initialize":
		result = s.handleInitialize()
	case "ping":
		result = struct{}{}
	case "tools/list":
		result = s.handleToolsList()
	case "tools/call":
		result, err = s.handleToolsCall(req.Params)
	case "resources/list":
		result = s.handleResourcesList()
	case "resources/read":
		result, err = s.handleResourcesRead(req.Params)
	default:
		return newErrorResponse(req.ID, CodeMethodNotFound, "method not found: "+req.Method)
	}

	if err != nil {
		if rerr, ok := err.(*rpcError); ok {
			return newErrorResponse(req.ID, rerr.Code, rerr.Message)
		}
		return newErrorResponse(req.ID, CodeInternalError, err.Error())
	}

	resp, merr := newResponse(req.ID, result)
	if merr != nil {
		return newErrorResponse(req.ID, CodeInternalError, merr.Error())
	}
	return resp
}

// write marshals a response and writes it as one line.
func (s *Server) write(resp *response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.writer.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// handleInitialize reports server identity and capabilities.
func (s *Server) handleInitialize() any {
	s.initialized = true
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    s.serverName,
			"version": s.version,
		},
	}
}

func isBlank(line []byte) bool {
	for _, b := range line {
		if b != ' ' && b != '\t' && b != '\r' && b != '\n' {
			return false
		}
	}
	return true
}
