package credstore

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-mobile-sdk/internal/kvstore"
	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// Store manages session persistence over a key-value backend. Storage
// failures come back as errors, never panics: a storage hiccup must not
// take the caller down.
type Store struct {
	kv     kvstore.Store
	logger *zap.Logger
}

// New constructs a credential store.
func New(kv kvstore.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// Save persists the session under its account-type slot and mirrors it into
// the legacy last-logged-in slot. Any prior record for the type is replaced.
func (s *Store) Save(ctx context.Context, session Session) error {
	if !session.AccountType.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "unknown account type: "+string(session.AccountType))
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "encode session")
	}

	if err := s.kv.Set(ctx, SlotKey(session.AccountType), payload); err != nil {
		return err
	}

	// Mirror failure is logged, not surfaced: the primary slot already holds
	// the record and the legacy slot only serves older readers.
	if err := s.kv.Set(ctx, KeyLastSession, payload); err != nil {
		s.logger.Warn("failed to mirror session into legacy slot", zap.Error(err))
	}

	return nil
}

// Load returns the session stored for the account type. Corrupt records are
// treated as absent.
func (s *Store) Load(ctx context.Context, t AccountType) (*Session, error) {
	return s.loadKey(ctx, SlotKey(t))
}

// LoadLast returns the legacy last-logged-in session, if any.
func (s *Store) LoadLast(ctx context.Context) (*Session, error) {
	return s.loadKey(ctx, KeyLastSession)
}

func (s *Store) loadKey(ctx context.Context, key string) (*Session, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return nil, err
		}
		s.logger.Warn("session read failed", zap.String("key", key), zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session unavailable")
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn("discarding corrupt session record", zap.String("key", key), zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrNotFound, "session record corrupt")
	}

	return &session, nil
}

// Remove deletes the slot for the account type. If the legacy mirror holds
// the same identity it is cleared as well, so a logged-out user does not
// resurface through the fallback path.
func (s *Store) Remove(ctx context.Context, t AccountType) error {
	current, err := s.Load(ctx, t)
	if err == nil {
		if last, lastErr := s.LoadLast(ctx); lastErr == nil && last.SameIdentity(*current) {
			if delErr := s.kv.Delete(ctx, KeyLastSession); delErr != nil {
				s.logger.Warn("failed to clear legacy session slot", zap.Error(delErr))
			}
		}
	}
	return s.kv.Delete(ctx, SlotKey(t))
}

// ListStudentAccounts returns the ordered child sessions added on this
// device. A missing or corrupt list reads as empty.
func (s *Store) ListStudentAccounts(ctx context.Context) ([]Session, error) {
	raw, err := s.kv.Get(ctx, KeyStudentList)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var accounts []Session
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.logger.Warn("discarding corrupt student account list", zap.Error(err))
		return nil, nil
	}
	return accounts, nil
}

// AppendStudentAccount adds a child session to the list, rejecting
// duplicates by identity. The read-modify-write is sequential within one
// call; concurrent appends against the same store are a documented hazard
// this layer does not lock against.
func (s *Store) AppendStudentAccount(ctx context.Context, session Session) error {
	accounts, err := s.ListStudentAccounts(ctx)
	if err != nil {
		return err
	}

	for _, existing := range accounts {
		if existing.SameIdentity(session) {
			return appErrors.Clone(appErrors.ErrDuplicateAccount, "")
		}
	}

	session.AccountType = AccountStudent
	accounts = append(accounts, session)

	payload, err := json.Marshal(accounts)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "encode student accounts")
	}
	return s.kv.Set(ctx, KeyStudentList, payload)
}

// RemoveStudentAccount drops any entries matching the identity.
func (s *Store) RemoveStudentAccount(ctx context.Context, session Session) error {
	accounts, err := s.ListStudentAccounts(ctx)
	if err != nil {
		return err
	}

	kept := accounts[:0]
	for _, existing := range accounts {
		if !existing.SameIdentity(session) {
			kept = append(kept, existing)
		}
	}

	payload, err := json.Marshal(kept)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrStorage.Code, "encode student accounts")
	}
	return s.kv.Set(ctx, KeyStudentList, payload)
}

// GuardianAuthCode returns the stored guardian-only token, used by
// non-account guardians who only hold a pickup QR identity.
func (s *Store) GuardianAuthCode(ctx context.Context) (string, error) {
	raw, err := s.kv.Get(ctx, KeyGuardianCode)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetGuardianAuthCode stores the guardian token.
func (s *Store) SetGuardianAuthCode(ctx context.Context, code string) error {
	return s.kv.Set(ctx, KeyGuardianCode, []byte(code))
}

// SelectedBranch returns the persisted school-branch selection, empty when
// none was stored.
func (s *Store) SelectedBranch(ctx context.Context) (string, error) {
	raw, err := s.kv.Get(ctx, KeySelectedBranch)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return string(raw), nil
}

// SetSelectedBranch persists the school-branch selection.
func (s *Store) SetSelectedBranch(ctx context.Context, branchID string) error {
	return s.kv.Set(ctx, KeySelectedBranch, []byte(branchID))
}
