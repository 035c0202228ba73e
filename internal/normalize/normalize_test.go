package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShapes(t *testing.T) {
	norm := New(nil)

	tests := []struct {
		name        string
		body        string
		wantSuccess bool
		wantMessage string
	}{
		{name: "structured success", body: `{"success":true,"data":[1,2]}`, wantSuccess: true},
		{name: "structured failure", body: `{"success":false,"message":"already submitted"}`, wantSuccess: false, wantMessage: "already submitted"},
		{name: "bare zero sentinel", body: `0`, wantSuccess: false, wantMessage: MsgInvalidCredentials},
		{name: "quoted zero sentinel", body: `"0"`, wantSuccess: false, wantMessage: MsgInvalidCredentials},
		{name: "null sentinel", body: `null`, wantSuccess: false, wantMessage: MsgInvalidCredentials},
		{name: "false sentinel", body: `false`, wantSuccess: false, wantMessage: MsgInvalidCredentials},
		{name: "error field under 200", body: `{"error":"token expired"}`, wantSuccess: false, wantMessage: "token expired"},
		{name: "status error", body: `{"status":"error","message":"bad term"}`, wantSuccess: false, wantMessage: "bad term"},
		{name: "invalid credentials message", body: `{"message":"Invalid credentials"}`, wantSuccess: false, wantMessage: MsgInvalidCredentials},
		{name: "text pair success", body: "ok|Pickup processed", wantSuccess: true, wantMessage: "Pickup processed"},
		{name: "text pair failure", body: "error|Invalid token", wantSuccess: false, wantMessage: "Invalid token"},
		{name: "empty body", body: "", wantSuccess: false, wantMessage: MsgEmptyResponse},
		{name: "whitespace body", body: "   \n", wantSuccess: false, wantMessage: MsgEmptyResponse},
		{name: "no flag passthrough", body: `{"data":{"grades":[]}}`, wantSuccess: true},
		{name: "bare array passthrough", body: `[{"id":1}]`, wantSuccess: true},
		{name: "garbage text", body: "<html>502</html>", wantSuccess: false, wantMessage: MsgUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := norm.Normalize([]byte(tt.body))
			assert.Equal(t, tt.wantSuccess, result.Success)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, result.Message)
			}
		})
	}
}

func TestNormalizeNeverPanics(t *testing.T) {
	norm := New(nil)
	inputs := []string{"", "|", "||", "{", "}", "0|", `{"success":"yes"}`, "\x00\xff", "true", "42"}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			norm.Normalize([]byte(input))
		}, "input %q", input)
	}
}

func TestNormalizeKeepsPayload(t *testing.T) {
	norm := New(nil)

	result := norm.Normalize([]byte(`{"success":true,"homework_assignments":[{"id":1,"subject":"Math"}]}`))
	require.True(t, result.Success)

	var payload struct {
		Assignments []struct {
			ID int `json:"id"`
		} `json:"homework_assignments"`
	}
	require.NoError(t, DecodeInto(result, &payload))
	require.Len(t, payload.Assignments, 1)
	assert.Equal(t, 1, payload.Assignments[0].ID)
}

func TestDecodeIntoEmptyResult(t *testing.T) {
	var dest map[string]json.RawMessage
	assert.NoError(t, DecodeInto(Result{Success: true}, &dest))
	assert.Nil(t, dest)
}

func TestTextPairStatusCasing(t *testing.T) {
	norm := New(nil)

	result := norm.Normalize([]byte("OK|done"))
	assert.True(t, result.Success)
	assert.Equal(t, "done", result.Message)
}
