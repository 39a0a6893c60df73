package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"calc/engine"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func callPress(t *testing.T, sess *Session, buttons any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	if buttons != nil {
		req.Params.Arguments = map[string]any{"buttons": buttons}
	}
	res, err := pressHandler(sess)(context.Background(), req)
	if err != nil {
		t.Fatalf("press: %v", err)
	}
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("content = %d items", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T", res.Content[0])
	}
	return tc.Text
}

func decodeReport(t *testing.T, res *mcp.CallToolResult) Report {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var r Report
	if err := json.Unmarshal([]byte(resultText(t, res)), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return r
}

func TestPressTool(t *testing.T) {
	sess := NewSession()
	r := decodeReport(t, callPress(t, sess, "7 + 5 ="))
	want := Report{Display: "12.0", Shown: "12.0", Operation: "add", Operand: "7.0"}
	if r != want {
		t.Fatalf("report = %+v, want %+v", r, want)
	}

	// Presses accumulate across calls; "=" reapplies 7 + display.
	r = decodeReport(t, callPress(t, sess, "="))
	if r.Display != "19.0" {
		t.Fatalf("display = %q", r.Display)
	}
}

func TestPressToolScientificFallback(t *testing.T) {
	sess := NewSession()
	r := decodeReport(t, callPress(t, sess, "9 9 9 9 9 x 9 9 9 9 9 ="))
	if r.Display != "9999800001.0" || r.Shown != "9.999800e+09" {
		t.Fatalf("report = %+v", r)
	}
}

func TestPressToolErrors(t *testing.T) {
	sess := NewSession()
	callPress(t, sess, "4")

	res := callPress(t, sess, nil)
	if !res.IsError || !strings.Contains(resultText(t, res), "buttons is required") {
		t.Fatalf("missing buttons: %+v", res)
	}
	res = callPress(t, sess, 42)
	if !res.IsError {
		t.Fatal("non-string buttons should fail")
	}
	res = callPress(t, sess, "1 sqrt")
	if !res.IsError || !strings.Contains(resultText(t, res), "sqrt") {
		t.Fatalf("unknown label: %+v", res)
	}
	if got := sess.State().Display; got != "4" {
		t.Fatalf("failed press changed state: %q", got)
	}
}

func TestSessionReset(t *testing.T) {
	sess := NewSession()
	sess.Press(decodeButtons(t, "8 x 2 = AC")...)
	st := sess.State()
	if st.Display != "0" || st.Op.String() != "multiply" {
		t.Fatalf("AC should keep the pending operation: %v", st)
	}
	if st = sess.Reset(); st.Op.String() != "none" || st.Operand != 0 {
		t.Fatalf("reset = %v", st)
	}
}

func TestServerRoundTrip(t *testing.T) {
	s := server.NewMCPServer("calc-test", "0.0.0", server.WithToolCapabilities(true), server.WithResourceCapabilities(false, false))
	sess := NewSession()
	Register(s, sess)

	call := func(id int, name string, args map[string]any) Report {
		t.Helper()
		msg, err := json.Marshal(map[string]any{
			"jsonrpc": "2.0",
			"id":      id,
			"method":  "tools/call",
			"params":  map[string]any{"name": name, "arguments": args},
		})
		if err != nil {
			t.Fatal(err)
		}
		raw, err := json.Marshal(s.HandleMessage(context.Background(), msg))
		if err != nil {
			t.Fatal(err)
		}
		var resp struct {
			Result struct {
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
				IsError bool `json:"isError"`
			} `json:"result"`
		}
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
		if resp.Result.IsError || len(resp.Result.Content) != 1 {
			t.Fatalf("%s: %s", name, raw)
		}
		var r Report
		if err := json.Unmarshal([]byte(resp.Result.Content[0].Text), &r); err != nil {
			t.Fatalf("report %s: %v", raw, err)
		}
		return r
	}

	if r := call(1, "press", map[string]any{"buttons": "9 ÷ 0 ="}); r.Display != "inf" {
		t.Fatalf("press = %+v", r)
	}
	if r := call(2, "state", map[string]any{}); r.Operation != "divide" {
		t.Fatalf("state = %+v", r)
	}
	if r := call(3, "reset", map[string]any{}); r.Display != "0" || r.Operation != "none" {
		t.Fatalf("reset = %+v", r)
	}
}

func decodeButtons(t *testing.T, s string) []engine.Button {
	t.Helper()
	b, err := engine.ParseSequence(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
