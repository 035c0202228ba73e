package client

import (
	"context"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

// Older grade endpoints nest the list under data.grades, newer ones return
// it at the top level.
type gradesPayload struct {
	Grades []Grade `json:"grades"`
	Data   struct {
		Grades []Grade `json:"grades"`
	} `json:"data"`
}

// ListGrades fetches grades for the acting user or the target child,
// optionally narrowed to one term.
func (c *Client) ListGrades(ctx context.Context, rc proxy.Context, term string) (GradesResult, error) {
	if c.demoMode {
		return GradesResult{Result: okFixture(), Grades: demoGrades}, nil
	}

	resp, err := c.exec.Get(ctx, epGradesList.path, authParams(epGradesList, rc, transport.Params{"term": term}))
	if err != nil {
		return GradesResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := GradesResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload gradesPayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Grades = payload.Grades
	if out.Grades == nil {
		out.Grades = payload.Data.Grades
	}
	return out, nil
}
