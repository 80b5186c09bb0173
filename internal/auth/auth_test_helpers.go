package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"golang.org/x/oauth2"

	"wagehire-backend/internal/database"
	"wagehire-backend/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It takes the testing object, database connection, email, and password as parameters.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	email string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(db)
	rec, resp, err := utilities.SimulateAPICall(handler.LoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	if resp["access_token"] == nil {
		return "", fmt.Errorf("login Failed: no access_token in response: %s", rec.Body.String())
	}
	return resp["access_token"].(string), nil
}

// MockOAuth2Server is an httptest-backed stand-in for Google's OAuth endpoints,
// serving the token exchange and the userinfo lookup for a fixed set of users.
type MockOAuth2Server struct {
	Server *httptest.Server
	// Config points the oauth2 client at this server
	Config *oauth2.Config
	// MockInfoEndpoint is the userinfo URL to inject into OauthLoginHandler
	MockInfoEndpoint string

	mu        sync.Mutex
	users     map[string]googleUserInfo
	authCodes map[string]string
	tokens    map[string]string
	exchanged map[string]bool
}

// NewMockOAuth2Server starts a mock server knowing the given users (keyed by GID).
func NewMockOAuth2Server(users []googleUserInfo) *MockOAuth2Server {
	m := &MockOAuth2Server{
		users:     map[string]googleUserInfo{},
		authCodes: map[string]string{},
		tokens:    map[string]string{},
		exchanged: map[string]bool{},
	}
	for _, u := range users {
		m.users[u.GID] = u
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", m.tokenHandler)
	mux.HandleFunc("/userinfo", m.userInfoHandler)
	m.Server = httptest.NewServer(mux)

	m.Config = &oauth2.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:   m.Server.URL + "/auth",
			TokenURL:  m.Server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: m.Server.URL + "/callback",
	}
	m.MockInfoEndpoint = m.Server.URL + "/userinfo"

	return m
}

// GetAuthCode mints an authorization code for the user with the given GID,
// as if they had completed the consent screen.
func (m *MockOAuth2Server) GetAuthCode(gid string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[gid]; !ok {
		return "", fmt.Errorf("unknown user: %s", gid)
	}
	code := "mock-code-" + gid
	m.authCodes[code] = gid
	return code, nil
}

// IsUserTokenExchanged reports whether the user's auth code went through the
// token endpoint.
func (m *MockOAuth2Server) IsUserTokenExchanged(gid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exchanged[gid]
}

// Close shuts the mock server down.
func (m *MockOAuth2Server) Close() {
	m.Server.Close()
}

func (m *MockOAuth2Server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	gid, ok := m.authCodes[r.FormValue("code")]
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		return
	}

	token := "mock-token-" + gid
	m.tokens[token] = gid
	m.exchanged[gid] = true

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (m *MockOAuth2Server) userInfoHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	auth := r.Header.Get("Authorization")

	var user googleUserInfo
	ok := false
	if len(auth) > len("Bearer ") {
		user, ok = m.users[m.tokens[auth[len("Bearer "):]]]
	}
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}
