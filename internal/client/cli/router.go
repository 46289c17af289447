package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/hbnbclient/internal/logging"
)

// MaxRedirects bounds how many page-to-page redirects one Dispatch follows.
const MaxRedirects = 8

var ErrTooManyRedirects = errors.New("too many redirects")

// PageFunc renders a page for the given query. A non-empty return value is
// the target to redirect to.
type PageFunc func(ctx context.Context, q url.Values) (string, error)

// Router resolves "name?query" targets to pages. Unknown names go to the
// fallback page.
type Router struct {
	routes   map[string]PageFunc
	fallback PageFunc
	log      logging.Logger

	current string
}

func NewRouter(routes map[string]PageFunc, fallback PageFunc, log logging.Logger) *Router {
	if log == nil {
		log = logging.Nop()
	}
	return &Router{routes: routes, fallback: fallback, log: log}
}

// ParseTarget splits "place.html?id=42" into its page name and query.
// Leading slashes are ignored.
func ParseTarget(target string) (string, url.Values, error) {
	name, rawQuery, _ := strings.Cut(strings.TrimSpace(target), "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", nil, fmt.Errorf("invalid target %q: %w", target, err)
	}
	return strings.TrimLeft(name, "/"), q, nil
}

func (r *Router) lookup(name string) PageFunc {
	if p, ok := r.routes[name]; ok {
		return p
	}
	return r.fallback
}

// Dispatch runs the page for target and follows redirects. It returns the
// target of the page it stopped on.
func (r *Router) Dispatch(ctx context.Context, target string) (string, error) {
	for hop := 0; hop <= MaxRedirects; hop++ {
		name, q, err := ParseTarget(target)
		if err != nil {
			return r.current, err
		}

		r.current = target
		r.log.Debug(ctx, "page", "target", target, "hop", hop)

		next, err := r.lookup(name)(ctx, q)
		if err != nil {
			return r.current, err
		}
		if next == "" {
			return r.current, nil
		}
		target = next
	}
	return r.current, fmt.Errorf("%w: stopped at %q", ErrTooManyRedirects, target)
}

// Current is the target of the last page rendered.
func (r *Router) Current() string {
	return r.current
}
