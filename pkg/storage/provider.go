package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	// DefaultSessionName prefixes the cookie sessions holding the visitor lists.
	DefaultSessionName = "supernav"

	// DefaultVisitorCookie is the cookie holding the visitor id.
	DefaultVisitorCookie = "supernav_visitor"

	visitorMaxAge = 86400 * 365
)

// SessionStore is a Store over cookie sessions, one session per key so each
// list is bound by its own cookie size limit. Values are saved to the
// response on every Set, so Set must happen before the body is written.
type SessionStore struct {
	store sessions.Store
	name  string
	w     http.ResponseWriter
	r     *http.Request
}

// SessionName returns the session holding key.
func (s *SessionStore) SessionName(key string) string {
	return s.name + "." + key
}

// session returns the session holding key. A session that fails to decode
// is replaced with a fresh one.
func (s *SessionStore) session(key string) (*sessions.Session, error) {
	name := s.SessionName(key)
	session, err := s.store.Get(s.r, name)
	if session == nil {
		if err == nil {
			err = ErrNoStore
		}
		return nil, fmt.Errorf("get session %s: %w", name, err)
	}
	if err != nil {
		slog.Debug("discarding unreadable session", "name", name, "error", err)
	}
	return session, nil
}

// Get returns the value stored under key.
func (s *SessionStore) Get(_ context.Context, key string) ([]byte, error) {
	session, err := s.session(key)
	if err != nil {
		return nil, err
	}

	switch v := session.Values[key].(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unexpected session value type %T for %s", v, key)
	}
}

// Set stores value under key and saves its session.
func (s *SessionStore) Set(_ context.Context, key string, value []byte) error {
	session, err := s.session(key)
	if err != nil {
		return err
	}

	session.Values[key] = string(value)
	if err := session.Save(s.r, s.w); err != nil {
		return fmt.Errorf("save session %s: %w", s.SessionName(key), err)
	}
	return nil
}

// SessionProvider resolves stores from a gorilla sessions store.
type SessionProvider struct {
	store sessions.Store
	name  string
}

// NewSessionProvider creates a provider over store. Sessions are named after
// name and the stored key.
func NewSessionProvider(store sessions.Store, name string) *SessionProvider {
	if name == "" {
		name = DefaultSessionName
	}
	return &SessionProvider{store: store, name: name}
}

// NewCookieSessionStore creates a cookie store configured for visitor lists.
func NewCookieSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30) // 30 days
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// For returns the session backed store of the requesting visitor.
func (p *SessionProvider) For(w http.ResponseWriter, r *http.Request) (Store, error) {
	if p.store == nil {
		return nil, ErrNoStore
	}
	return &SessionStore{store: p.store, name: p.name, w: w, r: r}, nil
}

// VisitorProvider identifies visitors with a random id cookie and namespaces
// a shared backend store by that id.
type VisitorProvider struct {
	backend Store
	cookie  string
}

// NewVisitorProvider creates a provider over backend.
func NewVisitorProvider(backend Store, cookie string) *VisitorProvider {
	if cookie == "" {
		cookie = DefaultVisitorCookie
	}
	return &VisitorProvider{backend: backend, cookie: cookie}
}

// For returns the backend namespaced to the requesting visitor, issuing a
// new visitor id when the request carries none.
func (p *VisitorProvider) For(w http.ResponseWriter, r *http.Request) (Store, error) {
	if p.backend == nil {
		return nil, ErrNoStore
	}

	id := VisitorID(r, p.cookie)
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     p.cookie,
			Value:    id,
			Path:     "/",
			MaxAge:   visitorMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return Prefixed(p.backend, "visitor:"+id+":"), nil
}

// VisitorID returns the visitor id carried by r, or an empty string when the
// cookie is missing or does not hold a valid UUID.
func VisitorID(r *http.Request, cookie string) string {
	c, err := r.Cookie(cookie)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}
