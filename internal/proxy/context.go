package proxy

import (
	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// Context is the validated per-fetch request context: whose token authorizes
// the call and whose data is being requested. It is built once per screen
// entry and discarded after the fetch; it is never persisted.
type Context struct {
	ActingAuthCode  string `validate:"required"`
	TargetStudentID string `validate:"required_if=IsProxied true"`
	IsProxied       bool
}

var validate = validator.New()

// NewContext builds a request context for a call made with the caller's own
// identity.
func NewContext(authCode string) (Context, error) {
	return build(Context{ActingAuthCode: authCode})
}

// NewProxyContext builds a request context for a call made on behalf of a
// child. A proxied context without a student id is a caller error, not a
// recoverable state.
func NewProxyContext(authCode, studentID string) (Context, error) {
	return build(Context{
		ActingAuthCode:  authCode,
		TargetStudentID: studentID,
		IsProxied:       true,
	})
}

// FromNavParams derives a request context from a navigation parameter bag,
// falling back to a self context when the bag does not call for proxying.
func FromNavParams(authCode string, params NavParams) (Context, error) {
	if ShouldUseProxy(params) {
		return NewProxyContext(authCode, Extract(params).StudentID)
	}
	return NewContext(authCode)
}

func build(c Context) (Context, error) {
	if err := validate.Struct(c); err != nil {
		return Context{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid request context")
	}
	return c, nil
}
