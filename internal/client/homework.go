package client

import (
	"context"
	"strconv"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

// HomeworkFilter narrows the homework list.
type HomeworkFilter struct {
	Subject string
	Status  string
	Page    int
	Limit   int
}

// The homework endpoint has shipped both field names over time.
type homeworkPayload struct {
	Assignments []HomeworkItem `json:"homework_assignments"`
	Homework    []HomeworkItem `json:"homework"`
}

// ListHomework fetches assignments for the acting user, or for the target
// child when the context is proxied.
func (c *Client) ListHomework(ctx context.Context, rc proxy.Context, filter HomeworkFilter) (HomeworkResult, error) {
	if c.demoMode {
		return HomeworkResult{Result: okFixture(), Homework: demoHomework}, nil
	}

	params := authParams(epHomeworkList, rc, transport.Params{
		"subject": filter.Subject,
		"status":  filter.Status,
		"page":    positiveInt(filter.Page),
		"limit":   positiveInt(filter.Limit),
	})

	resp, err := c.exec.Get(ctx, epHomeworkList.path, params)
	if err != nil {
		return HomeworkResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := HomeworkResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload homeworkPayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Homework = payload.Assignments
	if out.Homework == nil {
		out.Homework = payload.Homework
	}
	return out, nil
}

// HomeworkSubmission is the payload for submitting completed homework.
type HomeworkSubmission struct {
	HomeworkID int    `json:"homework_id"`
	Answer     string `json:"answer,omitempty"`
	FileURL    string `json:"file_url,omitempty"`
}

// SubmitHomework submits one assignment for the acting user.
func (c *Client) SubmitHomework(ctx context.Context, rc proxy.Context, submission HomeworkSubmission) (normalize.Result, error) {
	if c.demoMode {
		return okFixture(), nil
	}

	resp, err := c.exec.PostJSON(ctx, epHomeworkSubmit.path, authParams(epHomeworkSubmit, rc, nil), submission)
	if err != nil {
		return normalize.Result{}, err
	}
	return c.norm.Normalize(resp.Body), nil
}

// positiveInt renders a pagination value, empty when unset so the executor
// drops the parameter.
func positiveInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}
