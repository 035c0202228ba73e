package client

import (
	"context"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

type attendancePayload struct {
	Records    []AttendanceRecord `json:"records"`
	Attendance []AttendanceRecord `json:"attendance"`
}

// ListAttendance fetches attendance records within the inclusive date range
// (YYYY-MM-DD); empty bounds are omitted.
func (c *Client) ListAttendance(ctx context.Context, rc proxy.Context, from, to string) (AttendanceResult, error) {
	if c.demoMode {
		return AttendanceResult{Result: okFixture(), Records: demoAttendance}, nil
	}

	resp, err := c.exec.Get(ctx, epAttendanceList.path, authParams(epAttendanceList, rc, transport.Params{
		"from": from,
		"to":   to,
	}))
	if err != nil {
		return AttendanceResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := AttendanceResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload attendancePayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Records = payload.Records
	if out.Records == nil {
		out.Records = payload.Attendance
	}
	return out, nil
}
