package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
	"github.com/freshcart/store-console/internal/core/ports"
)

// SessionService is the auth session state machine. The snapshot is
// mutex-guarded so individual reads and writes are atomic; concurrent
// operations are deliberately not serialized against each other. Each
// one commits state only in its own completion path, and whichever lands
// last wins.
type SessionService struct {
	client ports.Requester
	tokens ports.TokenStore
	cache  ports.CollectionCache
	log    zerolog.Logger

	mu      sync.Mutex
	session domain.Session
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(client ports.Requester, tokens ports.TokenStore, cache ports.CollectionCache, log zerolog.Logger) *SessionService {
	return &SessionService{
		client:  client,
		tokens:  tokens,
		cache:   cache,
		log:     log,
		session: domain.Session{Status: domain.StatusInitializing},
	}
}

// Session returns the current snapshot.
func (s *SessionService) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Initialize attempts silent re-authentication from the stored token,
// once at startup. It never returns an error: an absent token lands in
// anonymous directly, and a rejected one is cleared before the same
// transition.
func (s *SessionService) Initialize(ctx context.Context) {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("token store unreadable at startup")
		s.setAnonymous(nil)
		return
	}
	if token == "" {
		s.setAnonymous(nil)
		return
	}

	user, err := s.whoAmI(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("token validation failed")
		// A 401 resolves to a nil user below; this path covers every
		// other failure, so clear here too and token and identity drop
		// together.
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			s.log.Error().Err(cerr).Msg("failed to clear rejected token")
		}
		s.setAnonymous(nil)
		return
	}
	if user == nil {
		// Rejected token. The transport already dropped it.
		s.log.Debug().Msg("stored token rejected")
		s.setAnonymous(nil)
		return
	}

	identity := domain.IdentityOf(*user)
	s.setAuthenticated(identity)
	s.log.Info().Str("username", identity.Username).Msg("session restored")
}

// Login authenticates against the API, persists the returned token and
// commits the identity. The error is returned so the auth form can show
// field-level feedback.
func (s *SessionService) Login(ctx context.Context, input ports.LoginInput) (*domain.Identity, error) {
	if err := validateInput(input); err != nil {
		return nil, s.failAuth(ctx, err)
	}

	resp, err := s.client.Request(ctx, http.MethodPost, "/users/login", input)
	if err != nil {
		return nil, s.failAuth(ctx, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Message string       `json:"message"`
		Data    *domain.User `json:"data"`
		Token   string       `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Data == nil {
		if err == nil {
			err = domain.ErrInvalidCredentials
		}
		return nil, s.failAuth(ctx, err)
	}

	if payload.Token != "" {
		if err := s.tokens.Set(ctx, payload.Token); err != nil {
			return nil, s.failAuth(ctx, err)
		}
	}

	identity := domain.IdentityOf(*payload.Data)
	s.setAuthenticated(identity)
	if err := s.cache.Invalidate(ctx, keyIdentity); err != nil {
		s.log.Warn().Err(err).Msg("identity cache invalidation failed")
	}
	s.log.Info().Str("username", identity.Username).Msg("logged in")
	return &identity, nil
}

// Logout is unconditional: the server call is best-effort, and local
// state (identity, durable token, every cached collection) is cleared
// regardless of its outcome.
func (s *SessionService) Logout(ctx context.Context) {
	resp, err := s.client.Request(ctx, http.MethodPost, "/users/logout", nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	} else {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
	}

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear token on logout")
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear collection cache on logout")
	}
	s.setAnonymous(nil)
	s.log.Info().Msg("logged out")
}

// Register creates an account. When the server hands back a token the
// call behaves exactly like Login.
func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Identity, error) {
	if input.Role == "" {
		input.Role = domain.RoleAdmin
	}
	if err := validateInput(input); err != nil {
		return nil, s.recordError(err)
	}

	resp, err := s.client.Request(ctx, http.MethodPost, "/users/register", input)
	if err != nil {
		return nil, s.recordError(err)
	}
	defer resp.Body.Close()

	// The register endpoint answers with either a bare identity or a
	// {data, token} envelope, depending on the API version.
	var payload struct {
		domain.User
		Data  *domain.User `json:"data"`
		Token string       `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, s.recordError(err)
	}
	user := payload.User
	if payload.Data != nil {
		user = *payload.Data
	}

	if payload.Token != "" {
		if err := s.tokens.Set(ctx, payload.Token); err != nil {
			return nil, s.recordError(err)
		}
	}

	identity := domain.IdentityOf(user)
	s.setAuthenticated(identity)
	s.log.Info().Str("username", identity.Username).Msg("registered")
	return &identity, nil
}

// whoAmI validates the stored token against the server. The read runs
// under the return-nil policy, so a rejected token comes back as
// (nil, nil) after the transport has dropped it.
func (s *SessionService) whoAmI(ctx context.Context) (*domain.User, error) {
	raw, err := s.client.QueryFetch(ctx, "/users/get", ports.On401ReturnNil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var payload struct {
		domain.User
		Data *domain.User `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	if payload.Data != nil {
		return payload.Data, nil
	}
	return &payload.User, nil
}

// failAuth is the login failure path: any stored token is dropped, the
// session lands in anonymous with LastError set, and the error is handed
// back for the form.
func (s *SessionService) failAuth(ctx context.Context, err error) error {
	if cerr := s.tokens.Clear(ctx); cerr != nil {
		s.log.Error().Err(cerr).Msg("failed to clear token after auth failure")
	}
	s.mu.Lock()
	s.session = domain.Session{Status: domain.StatusAnonymous, LastError: err}
	s.mu.Unlock()
	return err
}

// recordError keeps the current status but surfaces the failure, for
// register attempts that fail without touching an existing session.
func (s *SessionService) recordError(err error) error {
	s.mu.Lock()
	if s.session.Status == domain.StatusInitializing {
		s.session.Status = domain.StatusAnonymous
	}
	s.session.LastError = err
	s.mu.Unlock()
	return err
}

func (s *SessionService) setAuthenticated(identity domain.Identity) {
	s.mu.Lock()
	s.session = domain.Session{Status: domain.StatusAuthenticated, Identity: &identity}
	s.mu.Unlock()
}

func (s *SessionService) setAnonymous(err error) {
	s.mu.Lock()
	s.session = domain.Session{Status: domain.StatusAnonymous, LastError: err}
	s.mu.Unlock()
}
