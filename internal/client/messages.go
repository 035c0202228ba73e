package client

import (
	"context"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/proxy"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

type messagesPayload struct {
	Messages []Message `json:"messages"`
}

// ListMessages fetches the acting user's message threads.
func (c *Client) ListMessages(ctx context.Context, rc proxy.Context, page, limit int) (MessagesResult, error) {
	if c.demoMode {
		return MessagesResult{Result: okFixture(), Messages: demoMessages}, nil
	}

	resp, err := c.exec.Get(ctx, epMessagesList.path, authParams(epMessagesList, rc, transport.Params{
		"page":  positiveInt(page),
		"limit": positiveInt(limit),
	}))
	if err != nil {
		return MessagesResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := MessagesResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload messagesPayload
	if err := normalize.DecodeInto(result, &payload); err != nil {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}
	out.Messages = payload.Messages
	return out, nil
}

// NewMessage is the payload for sending a message.
type NewMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// SendMessage sends one message from the acting user.
func (c *Client) SendMessage(ctx context.Context, rc proxy.Context, msg NewMessage) (normalize.Result, error) {
	if c.demoMode {
		return okFixture(), nil
	}

	resp, err := c.exec.PostJSON(ctx, epMessageSend.path, authParams(epMessageSend, rc, nil), msg)
	if err != nil {
		return normalize.Result{}, err
	}
	return c.norm.Normalize(resp.Body), nil
}
