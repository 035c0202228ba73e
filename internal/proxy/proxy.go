// Package proxy decides whether a fetch runs against the caller's own data
// or on behalf of a child, based on the untyped parameter bag screens pass
// around during navigation.
package proxy

import (
	"fmt"
	"strconv"
)

// NavParams is the duck-typed navigation parameter bag. It arrives from
// many call sites with no schema, so every accessor here must be total.
type NavParams map[string]interface{}

// Options is the extracted proxy decision input.
type Options struct {
	StudentID  string
	ParentData map[string]interface{}
}

// ShouldUseProxy reports whether a screen should call the on-behalf-of-child
// endpoint. True only when the proxy flag is set AND a student id is
// present: a truthy flag without an id is malformed navigation state and
// reads as false rather than failing.
func ShouldUseProxy(params NavParams) bool {
	if params == nil {
		return false
	}
	flag, ok := params["useParentProxy"].(bool)
	if !ok || !flag {
		return false
	}
	return Extract(params).StudentID != ""
}

// Extract pulls the proxy options out of the bag. The student id is the
// first of params.studentId or params.parentData.studentId; numeric ids are
// coerced to their decimal string form.
func Extract(params NavParams) Options {
	if params == nil {
		return Options{}
	}

	opts := Options{}
	if pd, ok := params["parentData"].(map[string]interface{}); ok {
		opts.ParentData = pd
	}

	if id := coerceID(params["studentId"]); id != "" {
		opts.StudentID = id
	} else if opts.ParentData != nil {
		opts.StudentID = coerceID(opts.ParentData["studentId"])
	}

	return opts
}

func coerceID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		// JSON numbers decode as float64; ids are integral.
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case fmt.Stringer:
		return id.String()
	}
	return ""
}
