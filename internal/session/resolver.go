// Package session resolves the bearer token for an outgoing backend call
// from the sessions persisted on the device.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/internal/credstore"
	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// Resolver walks an ordered list of resolution strategies and returns the
// first auth code found. Resolution is read-only: it never mutates stored
// state.
type Resolver struct {
	store      *credstore.Store
	strategies []strategy
	logger     *zap.Logger
}

type strategy struct {
	name    string
	resolve func(ctx context.Context) (string, bool)
}

// New constructs a resolver over the credential store. Priority order is
// fixed: teacher, parent, student, the legacy last-logged-in slot, then the
// guardian-only token.
func New(store *credstore.Store, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{store: store, logger: logger}
	r.strategies = []strategy{
		{name: "teacher", resolve: r.slot(credstore.AccountTeacher)},
		{name: "parent", resolve: r.slot(credstore.AccountParent)},
		{name: "student", resolve: r.slot(credstore.AccountStudent)},
		{name: "legacy", resolve: r.legacySlot},
		{name: "guardian", resolve: r.guardianCode},
	}
	return r
}

// AuthCode returns the highest-priority stored auth code.
func (r *Resolver) AuthCode(ctx context.Context) (string, error) {
	for _, s := range r.strategies {
		if code, ok := s.resolve(ctx); ok {
			r.logger.Debug("auth code resolved", zap.String("strategy", s.name))
			return code, nil
		}
	}
	return "", appErrors.Clone(appErrors.ErrNoSession, "")
}

// AuthCodeFor returns the auth code for a specific account type, falling
// back to the legacy slot when that type's slot is empty.
func (r *Resolver) AuthCodeFor(ctx context.Context, t credstore.AccountType) (string, error) {
	if code, ok := r.slot(t)(ctx); ok {
		return code, nil
	}
	if code, ok := r.legacySlot(ctx); ok {
		return code, nil
	}
	return "", appErrors.Clone(appErrors.ErrNoSession, "no session for account type "+string(t))
}

// Current returns the full session record behind AuthCode, when the winning
// strategy was a session slot. Guardian-only identities have no session and
// resolve to NoSession here.
func (r *Resolver) Current(ctx context.Context) (*credstore.Session, error) {
	for _, t := range []credstore.AccountType{credstore.AccountTeacher, credstore.AccountParent, credstore.AccountStudent} {
		if s, err := r.store.Load(ctx, t); err == nil && s.AuthCode != "" {
			return s, nil
		}
	}
	if s, err := r.store.LoadLast(ctx); err == nil && s.AuthCode != "" {
		return s, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNoSession, "")
}

func (r *Resolver) slot(t credstore.AccountType) func(ctx context.Context) (string, bool) {
	return func(ctx context.Context) (string, bool) {
		s, err := r.store.Load(ctx, t)
		if err != nil || s.AuthCode == "" {
			return "", false
		}
		return s.AuthCode, true
	}
}

func (r *Resolver) legacySlot(ctx context.Context) (string, bool) {
	s, err := r.store.LoadLast(ctx)
	if err != nil || s.AuthCode == "" {
		return "", false
	}
	return s.AuthCode, true
}

func (r *Resolver) guardianCode(ctx context.Context) (string, bool) {
	code, err := r.store.GuardianAuthCode(ctx)
	if err != nil || code == "" {
		return "", false
	}
	return code, true
}
