package client

import (
	"context"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

type pickupPayload struct {
	Requests       []PickupRequest `json:"requests"`
	PickupRequests []PickupRequest `json:"pickup_requests"`
}

// ListPickupRequests fetches pending pickup requests visible to the acting
// user (teachers see their class, parents their children).
func (c *Client) ListPickupRequests(ctx context.Context, rc proxy.Context) (PickupListResult, error) {
	if c.demoMode {
		return PickupListResult{Result: okFixture(), Requests: demoPickups}, nil
	}

	resp, err := c.exec.Get(ctx, epPickupList.path, authParams(epPickupList, rc, nil))
	if err != nil {
		return PickupListResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := PickupListResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload pickupPayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Requests = payload.Requests
	if out.Requests == nil {
		out.Requests = payload.PickupRequests
	}
	return out, nil
}

// ProcessPickupRequest approves or rejects one pickup request. This is a
// legacy endpoint replying with "status|message" plain text; the normalizer
// handles the split.
func (c *Client) ProcessPickupRequest(ctx context.Context, rc proxy.Context, requestID, action string) (normalize.Result, error) {
	if c.demoMode {
		return normalize.Result{Success: true, Message: "Pickup processed"}, nil
	}

	resp, err := c.exec.PostJSON(ctx, epPickupProcess.path, authParams(epPickupProcess, rc, transport.Params{
		"request_id": requestID,
		"action":     action,
	}), nil)
	if err != nil {
		return normalize.Result{}, err
	}
	return c.norm.Normalize(resp.Body), nil
}
