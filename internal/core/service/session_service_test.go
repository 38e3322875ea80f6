package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Transport, token store and cache stubs
// ---------------------------------------------------------------------------

type cannedResponse struct {
	status int
	body   string
}

// stubRequester plays back canned responses keyed by "METHOD path". It
// honors the transport contract: non-2xx statuses come back as errors,
// and a 401 clears the token store before failing.
type stubRequester struct {
	responses map[string]cannedResponse
	tokens    ports.TokenStore
	calls     []string
	bodies    map[string][]byte
	policies  map[string]ports.UnauthorizedPolicy
}

func newStubRequester(tokens ports.TokenStore) *stubRequester {
	return &stubRequester{
		responses: make(map[string]cannedResponse),
		tokens:    tokens,
		bodies:    make(map[string][]byte),
		policies:  make(map[string]ports.UnauthorizedPolicy),
	}
}

func (r *stubRequester) on(method, path string, status int, body string) {
	r.responses[method+" "+path] = cannedResponse{status: status, body: body}
}

func (r *stubRequester) respond(ctx context.Context, key string, body any) (*http.Response, error) {
	r.calls = append(r.calls, key)
	if body != nil {
		raw, _ := json.Marshal(body)
		r.bodies[key] = raw
	}

	canned, ok := r.responses[key]
	if !ok {
		return nil, fmt.Errorf("unexpected request %s", key)
	}
	if canned.status == http.StatusUnauthorized {
		_ = r.tokens.Clear(ctx)
		return nil, fmt.Errorf("%s: %w", key, domain.ErrUnauthorized)
	}
	if canned.status < 200 || canned.status > 299 {
		return nil, fmt.Errorf("%d: %s", canned.status, canned.body)
	}
	return &http.Response{
		StatusCode: canned.status,
		Body:       io.NopCloser(strings.NewReader(canned.body)),
	}, nil
}

func (r *stubRequester) Request(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return r.respond(ctx, method+" "+path, body)
}

func (r *stubRequester) RequestMultipart(ctx context.Context, path string, fields map[string]string, _ *ports.FormFile) (*http.Response, error) {
	return r.respond(ctx, http.MethodPost+" "+path, fields)
}

func (r *stubRequester) QueryFetch(ctx context.Context, path string, policy ports.UnauthorizedPolicy) ([]byte, error) {
	r.policies[http.MethodGet+" "+path] = policy
	resp, err := r.respond(ctx, http.MethodGet+" "+path, nil)
	if err != nil {
		if policy == ports.On401ReturnNil && strings.Contains(err.Error(), domain.ErrUnauthorized.Error()) {
			return nil, nil
		}
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

type stubTokenStore struct {
	token  string
	clears int
	getErr error
}

func (s *stubTokenStore) Get(context.Context) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.token, nil
}

func (s *stubTokenStore) Set(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *stubTokenStore) Clear(context.Context) error {
	s.token = ""
	s.clears++
	return nil
}

type stubCache struct {
	entries       map[string][]byte
	invalidations []string
	cleared       int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, payload []byte) error {
	c.entries[key] = payload
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, key string) error {
	delete(c.entries, key)
	c.invalidations = append(c.invalidations, key)
	return nil
}

func (c *stubCache) Clear(context.Context) error {
	c.entries = make(map[string][]byte)
	c.cleared++
	return nil
}

var noplog = zerolog.Nop()

func newSessionFixture() (*SessionService, *stubRequester, *stubTokenStore, *stubCache) {
	tokens := &stubTokenStore{}
	cache := newStubCache()
	req := newStubRequester(tokens)
	svc := NewSessionService(req, tokens, cache, noplog)
	return svc, req, tokens, cache
}

const userJSON = `{"_id":"u1","username":"alice","role":"admin"}`

// ---------------------------------------------------------------------------
// Initialize
// ---------------------------------------------------------------------------

func TestSessionService_StartsInitializing(t *testing.T) {
	svc, _, _, _ := newSessionFixture()
	if got := svc.Session().Status; got != domain.StatusInitializing {
		t.Errorf("expected initializing before first check, got %v", got)
	}
}

func TestSessionService_Initialize_NoToken(t *testing.T) {
	svc, req, _, _ := newSessionFixture()

	svc.Initialize(context.Background())

	s := svc.Session()
	if s.Status != domain.StatusAnonymous {
		t.Errorf("expected anonymous, got %v", s.Status)
	}
	if s.Identity != nil {
		t.Error("anonymous session must not carry an identity")
	}
	if len(req.calls) != 0 {
		t.Errorf("no token means no network call, got %v", req.calls)
	}
}

func TestSessionService_Initialize_ValidToken(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	tokens.token = "tok-valid"
	req.on(http.MethodGet, "/users/get", http.StatusOK, userJSON)

	svc.Initialize(context.Background())

	s := svc.Session()
	if s.Status != domain.StatusAuthenticated {
		t.Fatalf("expected authenticated, got %v", s.Status)
	}
	if s.Identity == nil || s.Identity.Username != "alice" {
		t.Errorf("expected identity alice, got %+v", s.Identity)
	}
	if tokens.token != "tok-valid" {
		t.Error("a valid token must survive initialization")
	}
}

func TestSessionService_Initialize_RejectedTokenRecovers(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	tokens.token = "tok-stale"
	req.on(http.MethodGet, "/users/get", http.StatusUnauthorized, "")

	svc.Initialize(context.Background())

	s := svc.Session()
	if s.Status != domain.StatusAnonymous {
		t.Errorf("rejected token must land in anonymous, got %v", s.Status)
	}
	if tokens.token != "" {
		t.Error("rejected token must be cleared")
	}
}

func TestSessionService_Initialize_IdentityReadUsesNilPolicy(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	tokens.token = "tok-stale"
	req.on(http.MethodGet, "/users/get", http.StatusUnauthorized, "")

	svc.Initialize(context.Background())

	if got := req.policies["GET /users/get"]; got != ports.On401ReturnNil {
		t.Errorf("identity read must run under the return-nil policy, got %v", got)
	}
	if tokens.clears != 1 {
		t.Errorf("the transport owns the 401 clear, expected exactly 1, got %d", tokens.clears)
	}
	if svc.Session().Status != domain.StatusAnonymous {
		t.Error("expected anonymous after the rejected read")
	}
}

func TestSessionService_Initialize_ServerErrorClearsToken(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	tokens.token = "tok-unknown"
	req.on(http.MethodGet, "/users/get", http.StatusInternalServerError, "boom")

	svc.Initialize(context.Background())

	if svc.Session().Status != domain.StatusAnonymous {
		t.Error("expected anonymous after server failure")
	}
	if tokens.token != "" {
		t.Error("token and identity must drop together")
	}
}

func TestSessionService_Initialize_TokenStoreUnreadable(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	tokens.getErr = fmt.Errorf("disk gone")

	svc.Initialize(context.Background())

	if svc.Session().Status != domain.StatusAnonymous {
		t.Error("unreadable token store must resolve to anonymous")
	}
	if len(req.calls) != 0 {
		t.Errorf("no network call expected, got %v", req.calls)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestSessionService_Login_Success(t *testing.T) {
	svc, req, tokens, cache := newSessionFixture()
	req.on(http.MethodPost, "/users/login", http.StatusOK,
		`{"message":"ok","data":`+userJSON+`,"token":"tok-new"}`)

	identity, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if identity.Username != "alice" || identity.Role != "admin" {
		t.Errorf("wrong identity: %+v", identity)
	}
	if tokens.token != "tok-new" {
		t.Errorf("expected stored token tok-new, got %q", tokens.token)
	}
	if svc.Session().Status != domain.StatusAuthenticated {
		t.Error("expected authenticated after login")
	}

	found := false
	for _, key := range cache.invalidations {
		if key == keyIdentity {
			found = true
		}
	}
	if !found {
		t.Error("login must invalidate the identity cache key")
	}
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	tokens.token = "tok-old"
	req.on(http.MethodPost, "/users/login", http.StatusUnauthorized, "")

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "wrong"})
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}

	s := svc.Session()
	if s.Status != domain.StatusAnonymous {
		t.Errorf("expected anonymous after failed login, got %v", s.Status)
	}
	if s.LastError == nil {
		t.Error("failed login must record LastError for the form")
	}
	if tokens.token != "" {
		t.Error("failed login must clear any stored token")
	}
}

func TestSessionService_Login_ValidationShortCircuits(t *testing.T) {
	svc, req, _, _ := newSessionFixture()

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "", Password: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(req.calls) != 0 {
		t.Errorf("empty credentials must never hit the API, got %v", req.calls)
	}
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	svc, req, tokens, cache := newSessionFixture()
	tokens.token = "tok-active"
	cache.entries["products"] = []byte(`[]`)
	req.on(http.MethodPost, "/users/logout", http.StatusOK, `{"message":"bye"}`)

	svc.Logout(context.Background())

	if svc.Session().Status != domain.StatusAnonymous {
		t.Error("expected anonymous after logout")
	}
	if tokens.token != "" {
		t.Error("logout must clear the token")
	}
	if cache.cleared != 1 {
		t.Errorf("logout must clear the whole cache, got %d clears", cache.cleared)
	}
}

func TestSessionService_Logout_ServerFailureStillClears(t *testing.T) {
	svc, req, tokens, cache := newSessionFixture()
	tokens.token = "tok-active"
	req.on(http.MethodPost, "/users/logout", http.StatusInternalServerError, "boom")

	svc.Logout(context.Background())

	if svc.Session().Status != domain.StatusAnonymous {
		t.Error("logout is unconditional, server failure must not keep the session")
	}
	if tokens.token != "" {
		t.Error("token must be cleared even when the server call fails")
	}
	if cache.cleared != 1 {
		t.Error("cache must be cleared even when the server call fails")
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestSessionService_Register_EnvelopeWithToken(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	req.on(http.MethodPost, "/users/register", http.StatusCreated,
		`{"data":`+userJSON+`,"token":"tok-fresh"}`)

	identity, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Username != "alice" {
		t.Errorf("wrong identity: %+v", identity)
	}
	if tokens.token != "tok-fresh" {
		t.Error("register with token must behave like login")
	}
	if svc.Session().Status != domain.StatusAuthenticated {
		t.Error("expected authenticated after register")
	}
}

func TestSessionService_Register_BareIdentity(t *testing.T) {
	svc, req, tokens, _ := newSessionFixture()
	req.on(http.MethodPost, "/users/register", http.StatusCreated, userJSON)

	identity, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Username != "alice" {
		t.Errorf("wrong identity: %+v", identity)
	}
	if tokens.token != "" {
		t.Error("no token in the response means none stored")
	}
}

func TestSessionService_Register_DefaultsRoleToAdmin(t *testing.T) {
	svc, req, _, _ := newSessionFixture()
	req.on(http.MethodPost, "/users/register", http.StatusCreated, userJSON)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sent ports.RegisterInput
	if err := json.Unmarshal(req.bodies["POST /users/register"], &sent); err != nil {
		t.Fatalf("decode sent payload: %v", err)
	}
	if sent.Role != domain.RoleAdmin {
		t.Errorf("expected default role admin, got %q", sent.Role)
	}
}
