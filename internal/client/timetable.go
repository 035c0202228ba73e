package client

import (
	"context"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

type timetablePayload struct {
	Timetable []TimetableEntry `json:"timetable"`
	Schedule  []TimetableEntry `json:"schedule"`
}

// GetTimetable fetches the week's timetable. week is the backend's week
// selector (e.g. "current", "next" or an ISO week); empty means current.
func (c *Client) GetTimetable(ctx context.Context, rc proxy.Context, week string) (TimetableResult, error) {
	if c.demoMode {
		return TimetableResult{Result: okFixture(), Entries: demoTimetable}, nil
	}

	resp, err := c.exec.Get(ctx, epTimetable.path, authParams(epTimetable, rc, transport.Params{"week": week}))
	if err != nil {
		return TimetableResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := TimetableResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload timetablePayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Entries = payload.Timetable
	if out.Entries == nil {
		out.Entries = payload.Schedule
	}
	return out, nil
}
