package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-mobile-sdk/pkg/config"
)

func newTestGateway(t *testing.T) (*Gateway, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gw, err := New(config.GatewayConfig{JWTSecret: "test_secret", JWTExpiration: time.Hour}, nil, nil)
	require.NoError(t, err)
	srv := httptest.NewServer(gw.Router())
	t.Cleanup(srv.Close)
	return gw, srv
}

func login(t *testing.T, srv *httptest.Server, username, password, accountType string) string {
	t.Helper()
	body := strings.NewReader(`{"username":"` + username + `","password":"` + password + `","account_type":"` + accountType + `"}`)
	resp, err := http.Post(srv.URL+"/api/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload struct {
		Success  bool   `json:"success"`
		AuthCode string `json:"auth_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Success)
	require.NotEmpty(t, payload.AuthCode)
	return payload.AuthCode
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestLoginBadCredentialsRepliesWithSentinel(t *testing.T) {
	_, srv := newTestGateway(t)

	body := strings.NewReader(`{"username":"t.carter","password":"wrong","account_type":"teacher"}`)
	resp, err := http.Post(srv.URL+"/api/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "legacy convention: failure still returns 200")
	assert.Equal(t, "0", string(raw))
}

func TestLoginIssuesVerifiableAuthCode(t *testing.T) {
	gw, srv := newTestGateway(t)

	code := login(t, srv, "t.carter", "teacher123", "teacher")

	account := gw.verifyAuthCode(code)
	require.NotNil(t, account)
	assert.Equal(t, "teacher", account.AccountType)
	assert.Equal(t, "10", account.UserID)
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	gw, srv := newTestGateway(t)
	_ = srv

	assert.Nil(t, gw.verifyAuthCode("not-a-token"))
	assert.Nil(t, gw.verifyAuthCode(""))

	other, err := New(config.GatewayConfig{JWTSecret: "other_secret", JWTExpiration: time.Hour}, nil, nil)
	require.NoError(t, err)
	foreign, err := other.issueAuthCode(other.accounts.byUsername["t.carter"])
	require.NoError(t, err)
	assert.Nil(t, gw.verifyAuthCode(foreign), "token signed with a different secret")
}

func TestHomeworkListRequiresAuth(t *testing.T) {
	_, srv := newTestGateway(t)

	status, body := get(t, srv.URL+"/api/homework/list")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0", body)
}

func TestHomeworkListParentProxy(t *testing.T) {
	_, srv := newTestGateway(t)
	code := login(t, srv, "p.nguyen", "parent123", "parent")

	status, body := get(t, srv.URL+"/api/homework/list?authCode="+code+"&student_id=7")
	require.Equal(t, http.StatusOK, status)

	var payload struct {
		Success     bool `json:"success"`
		Assignments []struct {
			ID int `json:"id"`
		} `json:"homework_assignments"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.True(t, payload.Success)
	require.NotEmpty(t, payload.Assignments)
	assert.Equal(t, 1, payload.Assignments[0].ID)
}

func TestGradesReplyHasNoSuccessFlag(t *testing.T) {
	_, srv := newTestGateway(t)
	code := login(t, srv, "s.nguyen", "student123", "student")

	_, body := get(t, srv.URL+"/api/grades?auth_code="+code)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	_, hasSuccess := payload["success"]
	assert.False(t, hasSuccess, "oldest deployment omits the flag")
	_, hasData := payload["data"]
	assert.True(t, hasData)
}

func TestPickupProcessTextReplies(t *testing.T) {
	_, srv := newTestGateway(t)
	teacherCode := login(t, srv, "t.carter", "teacher123", "teacher")
	parentCode := login(t, srv, "p.nguyen", "parent123", "parent")

	post := func(query string) string {
		resp, err := http.Post(srv.URL+"/api/pickup/process?"+query, "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(b)
	}

	assert.Equal(t, "error|Invalid token", post("authCode=garbage&request_id=1"))
	assert.Equal(t, "error|Only staff can process pickups", post("authCode="+parentCode+"&request_id=1"))
	assert.Equal(t, "ok|Pickup processed", post("authCode="+teacherCode+"&request_id=1"))
	assert.Equal(t, "error|Already processed", post("authCode="+teacherCode+"&request_id=1"))
}

func TestHealthCreateRestrictedToStaff(t *testing.T) {
	_, srv := newTestGateway(t)
	parentCode := login(t, srv, "p.nguyen", "parent123", "parent")

	body := strings.NewReader(`{"student_id":"7","date":"2026-08-30","description":"Scraped knee"}`)
	resp, err := http.Post(srv.URL+"/api/health-records/create?auth_code="+parentCode, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.False(t, payload.Success)
	assert.Contains(t, payload.Message, "staff")
}

func TestConcurrentSubmitsAndPickupDecisions(t *testing.T) {
	gw, srv := newTestGateway(t)
	studentCode := login(t, srv, "s.nguyen", "student123", "student")
	teacherCode := login(t, srv, "t.carter", "teacher123", "teacher")

	router := gw.Router()
	const workers = 8
	const rounds = 50

	var wg sync.WaitGroup
	var accepted, processed atomic.Int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost,
					"/api/homework/submit?authCode="+studentCode,
					strings.NewReader(`{"homework_id":1}`))
				req.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(rec, req)
				if strings.Contains(rec.Body.String(), `"success":true`) {
					accepted.Add(1)
				}

				rec = httptest.NewRecorder()
				req = httptest.NewRequest(http.MethodPost,
					"/api/pickup/process?authCode="+teacherCode+"&request_id=9", nil)
				router.ServeHTTP(rec, req)
				if strings.HasPrefix(rec.Body.String(), "ok|") {
					processed.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), accepted.Load(), "exactly one submission wins")
	assert.Equal(t, int64(1), processed.Load(), "exactly one decision wins")
}
