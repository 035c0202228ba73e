package client

import (
	"context"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
)

// The health endpoint predates the response conventions of the rest of the
// API: visits arrive nested under health_records.medical_visits, with a
// flat data.records variant on newer deployments.
type healthPayload struct {
	Data struct {
		Records []HealthRecord `json:"records"`
	} `json:"data"`
	HealthRecords struct {
		MedicalVisits []HealthRecord `json:"medical_visits"`
	} `json:"health_records"`
}

// ListHealthRecords fetches health records for the acting user or target
// child.
func (c *Client) ListHealthRecords(ctx context.Context, rc proxy.Context) (HealthResult, error) {
	if c.demoMode {
		return HealthResult{Result: okFixture(), Records: demoHealth}, nil
	}

	resp, err := c.exec.Get(ctx, epHealthList.path, authParams(epHealthList, rc, nil))
	if err != nil {
		return HealthResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := HealthResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload healthPayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Records = payload.Data.Records
	if out.Records == nil {
		out.Records = payload.HealthRecords.MedicalVisits
	}
	return out, nil
}

// NewHealthRecord is the payload for creating a health record; teachers and
// school nurses use it to log medical visits.
type NewHealthRecord struct {
	StudentID   string `json:"student_id"`
	Date        string `json:"date"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
}

// CreateHealthRecord records one medical visit.
func (c *Client) CreateHealthRecord(ctx context.Context, rc proxy.Context, record NewHealthRecord) (normalize.Result, error) {
	if c.demoMode {
		return okFixture(), nil
	}

	resp, err := c.exec.PostJSON(ctx, epHealthCreate.path, authParams(epHealthCreate, rc, nil), record)
	if err != nil {
		return normalize.Result{}, err
	}
	return c.norm.Normalize(resp.Body), nil
}
