package client

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
	"github.com/noah-isme/sma-mobile-sdk/internal/transport"
)

type loginRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
}

type loginPayload struct {
	AuthCode    string          `json:"auth_code"`
	UserID      json.Number     `json:"user_id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Profile     json.RawMessage `json:"profile"`
}

// Login authenticates against the backend and, on success, persists the
// session into the account-type slot.
func (c *Client) Login(ctx context.Context, accountType credstore.AccountType, username, password string) (LoginResult, error) {
	if c.demoMode {
		return c.demoLogin(ctx, accountType, username)
	}

	resp, err := c.exec.PostJSON(ctx, epLogin.path, nil, loginRequest{
		Username:    username,
		Password:    password,
		AccountType: string(accountType),
	})
	if err != nil {
		return LoginResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := LoginResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload loginPayload
	if err := normalize.DecodeInto(result, &payload); err != nil || payload.AuthCode == "" {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}

	session := credstore.Session{
		AccountType: accountType,
		AuthCode:    payload.AuthCode,
		UserID:      payload.UserID.String(),
		Username:    payload.Username,
		DisplayName: payload.DisplayName,
		Profile:     payload.Profile,
	}
	if err := c.store.Save(ctx, session); err != nil {
		// The backend accepted the login; losing the local write only means
		// the user logs in again next launch.
		c.logger.Warn("failed to persist session after login", zap.Error(err))
	}

	out.AuthCode = session.AuthCode
	out.UserID = session.UserID
	out.DisplayName = session.DisplayName
	return out, nil
}

// AddStudentAccount logs a child in with the parent's credentials and
// appends the resulting session to the student account list.
func (c *Client) AddStudentAccount(ctx context.Context, username, password string) (LoginResult, error) {
	parentCode, err := c.resolver.AuthCodeFor(ctx, credstore.AccountParent)
	if err != nil {
		return LoginResult{}, err
	}

	resp, err := c.exec.PostJSON(ctx, epAddStudentAccount.path,
		transport.Params{epAddStudentAccount.authParam: parentCode},
		loginRequest{Username: username, Password: password, AccountType: string(credstore.AccountStudent)})
	if err != nil {
		return LoginResult{}, err
	}

	result := c.norm.Normalize(resp.Body)
	out := LoginResult{Result: result}
	if !result.Success {
		return out, nil
	}

	var payload loginPayload
	if err := normalize.DecodeInto(result, &payload); err != nil || payload.AuthCode == "" {
		out.Result = normalize.Fail(normalize.MsgUnrecognized, "MALFORMED_RESPONSE")
		return out, nil
	}

	session := credstore.Session{
		AccountType: credstore.AccountStudent,
		AuthCode:    payload.AuthCode,
		UserID:      payload.UserID.String(),
		Username:    payload.Username,
		DisplayName: payload.DisplayName,
		Profile:     payload.Profile,
	}
	if err := c.store.AppendStudentAccount(ctx, session); err != nil {
		out.Result = normalize.Fail(err.Error(), "DUPLICATE_ACCOUNT")
		return out, nil
	}

	out.AuthCode = session.AuthCode
	out.UserID = session.UserID
	out.DisplayName = session.DisplayName
	return out, nil
}

// Logout removes the stored session for the account type. Purely local: the
// backend owns token validity and is not notified.
func (c *Client) Logout(ctx context.Context, accountType credstore.AccountType) error {
	return c.store.Remove(ctx, accountType)
}
