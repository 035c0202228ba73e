// Package normalize collapses the backend's heterogeneous success and error
// conventions onto one uniform Result. All shape-sniffing heuristics live
// here; the enumerated cases mirror behaviour observed per endpoint, and any
// newly integrated endpoint must get its own case rather than assuming
// uniformity.
package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/noah-isme/sma-mobile-sdk/pkg/metrics"
)

// Fixed user-facing messages for ambiguous backend replies. Raw technical
// detail never reaches the end user.
const (
	MsgEmptyResponse      = "empty response"
	MsgInvalidCredentials = "invalid credentials"
	MsgUnrecognized       = "failed to load"
)

// Shape labels reported to metrics.
const (
	shapeEmpty    = "empty"
	shapeSentinel = "sentinel"
	shapeObject   = "object"
	shapeText     = "text_pair"
	shapeOther    = "unrecognized"
)

// Normalizer translates raw response bodies into Results. The zero value is
// usable; the recorder is optional.
type Normalizer struct {
	recorder *metrics.Recorder
}

// New builds a normalizer reporting shape outcomes to the recorder.
func New(recorder *metrics.Recorder) *Normalizer {
	return &Normalizer{recorder: recorder}
}

// Normalize maps a raw body onto a Result. It is total: no input panics or
// returns an error, and parse failures fall through to the text handling.
func (n *Normalizer) Normalize(body []byte) Result {
	result, shape := n.normalize(body)
	n.recorder.RecordNormalization(shape, result.Success)
	return result
}

func (n *Normalizer) normalize(body []byte) (Result, string) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		// json.Unmarshal on an empty input fails; guard before parsing.
		return Fail(MsgEmptyResponse, "EMPTY_RESPONSE"), shapeEmpty
	}

	if isSentinel(trimmed) {
		return Fail(MsgInvalidCredentials, "INVALID_CREDENTIALS"), shapeSentinel
	}

	var decoded interface{}
	if err := json.Unmarshal(trimmed, &decoded); err == nil {
		if obj, ok := decoded.(map[string]interface{}); ok {
			return normalizeObject(trimmed, obj), shapeObject
		}
		// Valid JSON but not an object: arrays pass through as success,
		// any remaining scalar is a sentinel variant we did not enumerate.
		if _, ok := decoded.([]interface{}); ok {
			return Ok(json.RawMessage(trimmed), ""), shapeObject
		}
		return Fail(MsgInvalidCredentials, "INVALID_CREDENTIALS"), shapeSentinel
	}

	if result, ok := normalizeTextPair(trimmed); ok {
		return result, shapeText
	}

	return Fail(MsgUnrecognized, "MALFORMED_RESPONSE"), shapeOther
}

// isSentinel matches the bare values the backend emits in place of a
// structured error: 0, "0", null, false.
func isSentinel(trimmed []byte) bool {
	switch string(trimmed) {
	case "0", `"0"`, "null", "false":
		return true
	}
	return false
}

func normalizeObject(raw []byte, obj map[string]interface{}) Result {
	message, _ := obj["message"].(string)

	// Failure markers win even under HTTP 200.
	if _, hasError := obj["error"]; hasError {
		if message == "" {
			if errText, ok := obj["error"].(string); ok {
				message = errText
			}
		}
		if message == "" {
			message = MsgUnrecognized
		}
		return Fail(message, failureCode(obj))
	}
	if status, ok := obj["status"].(string); ok && strings.EqualFold(status, "error") {
		if message == "" {
			message = MsgUnrecognized
		}
		return Fail(message, failureCode(obj))
	}
	if message == "Invalid credentials" {
		return Fail(MsgInvalidCredentials, "INVALID_CREDENTIALS")
	}

	if success, ok := obj["success"].(bool); ok {
		if !success {
			if message == "" {
				message = MsgUnrecognized
			}
			return Fail(message, failureCode(obj))
		}
		return Ok(json.RawMessage(raw), message)
	}

	// No explicit success flag and no failure marker: treat as success
	// passthrough, the caller remaps fields it knows about.
	return Ok(json.RawMessage(raw), message)
}

func failureCode(obj map[string]interface{}) string {
	if code, ok := obj["errorType"].(string); ok && code != "" {
		return code
	}
	if code, ok := obj["error_code"].(string); ok && code != "" {
		return code
	}
	return "APPLICATION_FAILURE"
}

// normalizeTextPair handles the legacy "status|message" plain-text
// convention: split on the first pipe, "ok" on the left means success.
func normalizeTextPair(trimmed []byte) (Result, bool) {
	text := string(trimmed)
	idx := strings.Index(text, "|")
	if idx < 0 {
		return Result{}, false
	}

	status := strings.TrimSpace(text[:idx])
	message := strings.TrimSpace(text[idx+1:])

	if strings.EqualFold(status, "ok") {
		return Result{Success: true, Message: message}, true
	}
	return Fail(message, "LEGACY_"+strings.ToUpper(status)), true
}
