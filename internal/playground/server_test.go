package playground

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	alcclog "github.com/msto63/alcc/foundation/core/log"
	"github.com/msto63/alcc/foundation/rlang"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	logger := alcclog.NewWithConfig(alcclog.Config{Level: alcclog.LevelError, Output: io.Discard})
	engine := rlang.NewEngine(rlang.Options{Logger: logger, MaxSourceLength: 64})

	srv := New(engine, logger, DefaultConfig())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// response mirrors Response with a raw payload for decoding in tests
type response struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Session string          `json:"session"`
	Payload json.RawMessage `json:"payload"`
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg interface{}) response {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return resp
}

func request(typ, id, source string) map[string]interface{} {
	return map[string]interface{}{
		"type":    typ,
		"id":      id,
		"payload": map[string]string{"source": source},
	}
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestWebSocket_Ping(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts)

	resp := roundTrip(t, conn, map[string]string{"type": "ping", "id": "p1"})
	if resp.Type != TypePong || resp.ID != "p1" {
		t.Errorf("unexpected response %+v", resp)
	}
	if _, err := uuid.Parse(resp.Session); err != nil {
		t.Errorf("session %q is not a uuid", resp.Session)
	}

	// the session id is stable for the connection
	again := roundTrip(t, conn, map[string]string{"type": "ping"})
	if again.Session != resp.Session {
		t.Errorf("session changed from %s to %s", resp.Session, again.Session)
	}
}

func TestWebSocket_Tokenize(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts)

	resp := roundTrip(t, conn, request(TypeTokenize, "t1", "1 + (2)"))
	if resp.Type != TypeTokens || resp.ID != "t1" {
		t.Fatalf("unexpected response %+v", resp)
	}

	var payload TokensPayload
	if err := json.Unmarshal(resp.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, tok := range payload.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	if got := strings.Join(kinds, " "); got != "NumberLiteral Plus LeftParen NumberLiteral RightParen EOF" {
		t.Errorf("kinds = %s", got)
	}
	if last := payload.Tokens[len(payload.Tokens)-1]; last.Start != 7 || last.Column != 8 {
		t.Errorf("EOF token = %+v", last)
	}
}

func TestWebSocket_Parse(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts)

	resp := roundTrip(t, conn, request(TypeParse, "a1", "1+2*3"))
	if resp.Type != TypeAST {
		t.Fatalf("unexpected response %+v", resp)
	}

	var payload ASTPayload
	if err := json.Unmarshal(resp.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Source != "1 + 2 * 3" {
		t.Errorf("Source = %q", payload.Source)
	}
	if len(payload.Statements) != 1 || payload.Statements[0]["type"] != "ExpressionStatement" {
		t.Errorf("Statements = %+v", payload.Statements)
	}
	expr, _ := payload.Statements[0]["expr"].(map[string]interface{})
	if expr["op"] != "+" {
		t.Errorf("root operator = %v, want +", expr["op"])
	}
}

func TestWebSocket_Eval(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dial(t, ts)

	resp := roundTrip(t, conn, request(TypeEval, "e1", "1 + (10 / 100 - 1); (1 + 2) * 3"))
	if resp.Type != TypeResult {
		t.Fatalf("unexpected response %+v", resp)
	}

	var payload ResultPayload
	if err := json.Unmarshal(resp.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Results) != 2 || payload.Results[0].Value != 0 || payload.Results[1].Value != 9 {
		t.Errorf("Results = %+v", payload.Results)
	}
}

func TestWebSocket_Errors(t *testing.T) {
	tests := []struct {
		name    string
		msg     interface{}
		code    string
		diag    string
		results int
	}{
		{"syntax", request(TypeParse, "1", "(1 + 2"), "RLANG_SYNTAX", "UNMATCHED_PARENTHESIS", 0},
		{"lexical", request(TypeEval, "2", "1 + x"), "RLANG_LEXICAL", "LEXICAL_AMBIGUITY", 0},
		{"evaluation", request(TypeEval, "3", "3; 1 / 0"), "RLANG_EVALUATION", "DIVISION_BY_ZERO", 1},
		{"too long", request(TypeTokenize, "4", strings.Repeat("1", 65)), "INVALID_LENGTH", "", 0},
		{"unknown type", map[string]string{"type": "compile"}, CodeUnknownType, "", 0},
		{"missing payload", map[string]string{"type": "eval"}, CodeInvalidPayload, "", 0},
	}

	_, ts := newTestServer(t)
	conn := dial(t, ts)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := roundTrip(t, conn, tt.msg)
			if resp.Type != TypeError {
				t.Fatalf("unexpected response %+v", resp)
			}

			var payload ErrorPayload
			if err := json.Unmarshal(resp.Payload, &payload); err != nil {
				t.Fatal(err)
			}
			if payload.Code != tt.code {
				t.Errorf("Code = %s, want %s", payload.Code, tt.code)
			}
			if tt.diag != "" {
				if len(payload.Diagnostics) == 0 || payload.Diagnostics[0].Code != tt.diag {
					t.Errorf("Diagnostics = %+v, want %s", payload.Diagnostics, tt.diag)
				} else if !strings.Contains(payload.Diagnostics[0].Rendered, "^") {
					t.Errorf("rendered diagnostic lacks a caret: %q", payload.Diagnostics[0].Rendered)
				}
			}
			if len(payload.Results) != tt.results {
				t.Errorf("Results = %+v, want %d", payload.Results, tt.results)
			}
		})
	}
}

func TestServer_Sessions(t *testing.T) {
	srv, ts := newTestServer(t)
	conn := dial(t, ts)
	roundTrip(t, conn, map[string]string{"type": "ping"})

	if got := srv.Sessions(); got != 1 {
		t.Errorf("Sessions() = %d, want 1", got)
	}

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.Sessions() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := srv.Sessions(); got != 0 {
		t.Errorf("Sessions() = %d after close, want 0", got)
	}
}

func TestSameOrigin(t *testing.T) {
	tests := []struct {
		origin string
		host   string
		want   bool
	}{
		{"", "localhost:8080", true},
		{"http://localhost:8080", "localhost:8080", true},
		{"http://evil.example", "localhost:8080", false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		r.Host = tt.host
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		if got := sameOrigin(r); got != tt.want {
			t.Errorf("sameOrigin(%q, %q) = %v, want %v", tt.origin, tt.host, got, tt.want)
		}
	}
}
