// Package credstore persists authenticated sessions on the device. One slot
// exists per account type, plus an ordered list of student accounts a parent
// may add, a guardian-only auth code, and a legacy "last logged in" mirror
// kept for older readers.
package credstore

import "encoding/json"

// AccountType identifies which kind of user a session belongs to.
type AccountType string

const (
	AccountTeacher AccountType = "teacher"
	AccountParent  AccountType = "parent"
	AccountStudent AccountType = "student"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTeacher, AccountParent, AccountStudent:
		return true
	}
	return false
}

// Session is one authenticated identity held on the device. Profile carries
// backend-supplied fields this layer does not interpret; older stored
// records may miss any field, so nothing here is required at decode time.
type Session struct {
	AccountType AccountType     `json:"account_type"`
	AuthCode    string          `json:"auth_code"`
	UserID      string          `json:"user_id"`
	Username    string          `json:"username,omitempty"`
	DisplayName string          `json:"display_name,omitempty"`
	Profile     json.RawMessage `json:"profile,omitempty"`
}

// SameIdentity reports whether two sessions refer to the same user. Matching
// any of user id, username or auth code counts: the backend has issued
// records where only one of the three is stable.
func (s Session) SameIdentity(other Session) bool {
	if s.UserID != "" && s.UserID == other.UserID {
		return true
	}
	if s.Username != "" && s.Username == other.Username {
		return true
	}
	if s.AuthCode != "" && s.AuthCode == other.AuthCode {
		return true
	}
	return false
}

// Storage keys. Key naming is load-bearing: older app versions read
// "session:last" and "studentAccounts" directly.
const (
	keySessionPrefix  = "session:"
	KeyLastSession    = "session:last"
	KeyStudentList    = "studentAccounts"
	KeyGuardianCode   = "guardianAuthCode"
	KeySelectedBranch = "selectedBranch"
)

// SlotKey returns the storage key for an account type's session slot.
func SlotKey(t AccountType) string {
	return keySessionPrefix + string(t)
}
