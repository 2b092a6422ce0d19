package playground

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	alccerr "github.com/msto63/alcc/foundation/core/error"
	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang"
	"github.com/msto63/alcc/foundation/rlang/ast"
	"github.com/msto63/alcc/foundation/rlang/diagnostic"
	"github.com/msto63/alcc/foundation/rlang/eval"
)

// WebSocketHandler serves compiler requests over WebSocket connections.
// Every connection is a session with its own id; requests of one session
// are answered in order.
type WebSocketHandler struct {
	engine   *rlang.Engine
	logger   *alcclog.Logger
	upgrader websocket.Upgrader
	config   Config
	sessions *sessionCounter
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(engine *rlang.Engine, logger *alcclog.Logger, cfg Config, sessions *sessionCounter) *WebSocketHandler {
	return &WebSocketHandler{
		engine: engine,
		logger: logger.WithField("component", "playground-websocket"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return cfg.AllowAllOrigins || sameOrigin(r)
			},
		},
		config:   cfg,
		sessions: sessions,
	}
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection handles a single WebSocket connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	s := &session{
		id:     uuid.NewString(),
		conn:   conn,
		engine: h.engine,
	}
	s.logger = h.logger.WithField("session", s.id)

	h.sessions.add(1)
	defer h.sessions.add(-1)

	s.logger.Info("WebSocket connection established", alcclog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	conn.SetReadLimit(h.config.MaxMessageSize)
	conn.SetReadDeadline(time.Now().Add(h.config.IdleTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.config.IdleTimeout))
		return nil
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WarnWithErr("WebSocket read error", err)
			} else {
				s.logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.config.IdleTimeout))

		s.handle(msg)
	}
}

// session answers the requests of one connection
type session struct {
	id     string
	conn   *websocket.Conn
	engine *rlang.Engine
	logger *alcclog.Logger
}

func (s *session) handle(msg Message) {
	s.logger.Debug("request received", alcclog.Fields{"type": msg.Type, "id": msg.ID})

	if msg.Type == TypePing {
		s.send(Response{Type: TypePong, ID: msg.ID})
		return
	}

	var payload SourcePayload
	switch msg.Type {
	case TypeTokenize, TypeParse, TypeEval:
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || msg.Payload == nil {
			s.sendError(msg.ID, ErrorPayload{Code: CodeInvalidPayload, Message: "payload must be {\"source\": string}"})
			return
		}
	default:
		s.sendError(msg.ID, ErrorPayload{Code: CodeUnknownType, Message: "unknown message type: " + msg.Type})
		return
	}

	switch msg.Type {
	case TypeTokenize:
		s.tokenize(msg.ID, payload.Source)
	case TypeParse:
		s.parse(msg.ID, payload.Source)
	case TypeEval:
		s.eval(msg.ID, payload.Source)
	}
}

func (s *session) tokenize(id, source string) {
	tokens, err := s.engine.Tokenize(source)
	if err != nil {
		s.sendFailure(id, source, err, nil)
		return
	}
	s.send(Response{Type: TypeTokens, ID: id, Payload: TokensPayload{Tokens: tokenPayloads(tokens)}})
}

func (s *session) parse(id, source string) {
	tree, err := s.engine.Parse(source)
	if err != nil {
		s.sendFailure(id, source, err, nil)
		return
	}

	statements := make([]map[string]interface{}, 0, tree.Len())
	for _, stmt := range tree.All() {
		statements = append(statements, ast.ASTToMap(stmt))
	}
	s.send(Response{Type: TypeAST, ID: id, Payload: ASTPayload{
		Statements: statements,
		Source:     ast.FormatSource(tree),
		Tree:       ast.DumpTree(tree),
	}})
}

func (s *session) eval(id, source string) {
	results, err := s.engine.Evaluate(source)
	if err != nil {
		s.sendFailure(id, source, err, results)
		return
	}
	s.send(Response{Type: TypeResult, ID: id, Payload: ResultPayload{Results: resultEntries(results)}})
}

func resultEntries(results []eval.Result) []ResultEntry {
	out := make([]ResultEntry, len(results))
	for i, r := range results {
		out[i] = ResultEntry{Source: ast.ASTToSource(r.Statement), Value: r.Value}
	}
	return out
}

// sendFailure reports a compiler failure with its diagnostics
func (s *session) sendFailure(id, source string, err error, results []eval.Result) {
	s.logger.Debug("request failed", alcclog.Fields{"id": id, "error": err.Error()})

	message := err.Error()
	if platformErr, ok := err.(*alccerr.Error); ok {
		message = platformErr.Message()
	}

	payload := ErrorPayload{
		Code:        alccerr.GetCode(err).String(),
		Message:     message,
		Diagnostics: diagnosticPayloads(source, diagnostic.FromError(err)),
	}
	if len(results) > 0 {
		payload.Results = resultEntries(results)
	}
	s.sendError(id, payload)
}

func (s *session) sendError(id string, payload ErrorPayload) {
	s.send(Response{Type: TypeError, ID: id, Payload: payload})
}

// send sends a response message via WebSocket
func (s *session) send(resp Response) {
	resp.Session = s.id
	if err := s.conn.WriteJSON(resp); err != nil {
		s.logger.WarnWithErr("WebSocket send error", err)
	}
}
