package normalize

import "encoding/json"

// Result is the uniform value every fetch function returns. Callers branch
// on Success only; the backend's original response shape never leaks past
// this package.
type Result struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Message   string          `json:"message,omitempty"`
	ErrorCode string          `json:"error_code,omitempty"`
}

// Ok builds a success result carrying raw payload bytes.
func Ok(data json.RawMessage, message string) Result {
	return Result{Success: true, Data: data, Message: message}
}

// Fail builds a failure result.
func Fail(message, errorCode string) Result {
	return Result{Success: false, Message: message, ErrorCode: errorCode}
}

// DecodeInto unmarshals the result's payload into dest. A result without
// payload decodes as a no-op so callers can keep zero values.
func DecodeInto(r Result, dest interface{}) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, dest)
}
