package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/common"
	"github.com/dmitrijs2005/hbnbclient/internal/logging"
)

// DefaultTTL is how long a freshly issued token is kept.
const DefaultTTL = 7 * 24 * time.Hour

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Gateway owns the stored bearer token.
type Gateway struct {
	store Store
	log   logging.Logger
	now   func() time.Time
	ttl   time.Duration
	name  string
}

type Option func(*Gateway)

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func WithTTL(ttl time.Duration) Option {
	return func(g *Gateway) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

// WithCookieName overrides the credential name (common.TokenCookieName).
func WithCookieName(name string) Option {
	return func(g *Gateway) {
		if name != "" {
			g.name = name
		}
	}
}

func NewGateway(store Store, opts ...Option) *Gateway {
	g := &Gateway{
		store: store,
		log:   logging.Nop(),
		now:   time.Now,
		ttl:   DefaultTTL,
		name:  common.TokenCookieName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Token returns the stored token, or "" when there is none. Store failures
// are logged and treated as "no token".
func (g *Gateway) Token(ctx context.Context) string {
	c, err := g.store.Get(ctx, g.name)
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			g.log.Error(ctx, "failed to read credential", "error", err)
		}
		return ""
	}
	return c.Value
}

// IsAuthenticated reports whether a stored token exists and its exp claim
// lies in the future. It never fails; decode problems are logged.
func (g *Gateway) IsAuthenticated(ctx context.Context) bool {
	token := g.Token(ctx)
	if token == "" {
		return false
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		g.log.Warn(ctx, "token validation error", "error", err)
		return false
	}

	return exp > float64(g.now().Unix())
}

func (g *Gateway) State(ctx context.Context) State {
	if g.IsAuthenticated(ctx) {
		return StateAuthenticated
	}
	return StateUnauthenticated
}

// JSONHeaders returns the headers sent with anonymous requests.
func (g *Gateway) JSONHeaders() http.Header {
	h := http.Header{}
	h.Set(common.HeaderContentType, common.ContentTypeJSON)
	return h
}

// AuthHeaders returns the JSON content type plus a bearer Authorization
// header whenever a token is stored. Presence gates the header, not
// validity: an expired or malformed token is still sent.
func (g *Gateway) AuthHeaders(ctx context.Context) http.Header {
	h := g.JSONHeaders()
	if token := g.Token(ctx); token != "" {
		h.Set(common.HeaderAuthorization, common.BearerPrefix+token)
	}
	return h
}

// HeadersForSession sends AuthHeaders only while the session is valid.
func (g *Gateway) HeadersForSession(ctx context.Context) http.Header {
	if g.IsAuthenticated(ctx) {
		return g.AuthHeaders(ctx)
	}
	return g.JSONHeaders()
}

// Persist stores token for the configured TTL under the root path.
func (g *Gateway) Persist(ctx context.Context, token string) error {
	return g.store.Set(ctx, models.Credential{
		Name:      g.name,
		Value:     token,
		Path:      common.CookieRootPath,
		ExpiresAt: g.now().Add(g.ttl),
	})
}

// Logout deletes the stored credential unconditionally.
func (g *Gateway) Logout(ctx context.Context) error {
	if err := g.store.Delete(ctx, g.name); err != nil {
		g.log.Error(ctx, "failed to delete credential", "error", err)
		return err
	}
	g.log.Debug(ctx, "credential cleared")
	return nil
}
