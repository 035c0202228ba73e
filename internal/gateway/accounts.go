package gateway

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Account is one built-in gateway login.
type Account struct {
	UserID       string
	Username     string
	AccountType  string
	DisplayName  string
	passwordHash []byte
}

type accountSet struct {
	byUsername map[string]*Account
}

type seedAccount struct {
	userID      string
	username    string
	password    string
	accountType string
	displayName string
}

var seedAccounts = []seedAccount{
	{userID: "10", username: "t.carter", password: "teacher123", accountType: "teacher", displayName: "Ms. Carter"},
	{userID: "20", username: "p.nguyen", password: "parent123", accountType: "parent", displayName: "Linh Nguyen"},
	{userID: "7", username: "s.nguyen", password: "student123", accountType: "student", displayName: "Minh Nguyen"},
	{userID: "8", username: "s.nguyen2", password: "student123", accountType: "student", displayName: "Thao Nguyen"},
}

// newAccountSet hashes the seed passwords once at startup.
func newAccountSet() (*accountSet, error) {
	set := &accountSet{byUsername: make(map[string]*Account, len(seedAccounts))}
	for _, seed := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", seed.username, err)
		}
		set.byUsername[seed.username] = &Account{
			UserID:       seed.userID,
			Username:     seed.username,
			AccountType:  seed.accountType,
			DisplayName:  seed.displayName,
			passwordHash: hash,
		}
	}
	return set, nil
}

// authenticate returns the account when username/password/type all match.
func (s *accountSet) authenticate(username, password, accountType string) *Account {
	account, ok := s.byUsername[username]
	if !ok || account.AccountType != accountType {
		return nil
	}
	if bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)) != nil {
		return nil
	}
	return account
}

func (s *accountSet) byID(userID string) *Account {
	for _, account := range s.byUsername {
		if account.UserID == userID {
			return account
		}
	}
	return nil
}

type authClaims struct {
	AccountType string `json:"typ"`
	jwt.RegisteredClaims
}

// issueAuthCode signs a bearer token for the account. The mobile SDK treats
// the value as opaque.
func (g *Gateway) issueAuthCode(account *Account) (string, error) {
	claims := authClaims{
		AccountType: account.AccountType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(g.jwtExpiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(g.jwtSecret))
}

// verifyAuthCode returns the account behind a token, or nil.
func (g *Gateway) verifyAuthCode(code string) *Account {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(code, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(g.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return g.accounts.byID(claims.Subject)
}
