package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"

	"github.com/dmitrijs2005/hbnbclient/internal/client/client"
	"github.com/dmitrijs2005/hbnbclient/internal/client/config"
	"github.com/dmitrijs2005/hbnbclient/internal/client/render"
	"github.com/dmitrijs2005/hbnbclient/internal/client/services"
	"github.com/dmitrijs2005/hbnbclient/internal/client/session"
	"github.com/dmitrijs2005/hbnbclient/internal/client/storage"
	"github.com/dmitrijs2005/hbnbclient/internal/filex"
	"github.com/dmitrijs2005/hbnbclient/internal/logging"
)

// Page names.
const (
	PageLogin     = "login.html"
	PageIndex     = "index.html"
	PagePlace     = "place.html"
	PageAddReview = "add_review.html"
)

type App struct {
	authService   services.AuthService
	placeService  services.PlaceService
	reviewService services.ReviewService

	router *Router
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
	db     *sql.DB

	// last listing loaded by the index page and the active price filter
	cards    []render.PlaceCard
	maxPrice string
}

// NewApp wires the session store, API client and services described by c.
// An empty SessionDBPath keeps the credential in memory.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	var (
		store session.Store
		db    *sql.DB
		err   error
	)
	if c.SessionDBPath == "" {
		store = session.NewMemoryStore(nil)
	} else {
		if _, err := filex.EnsureParentDir(c.SessionDBPath); err != nil {
			return nil, err
		}
		db, err = storage.InitDatabase(ctx, c.SessionDBPath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.SessionDBPath, "error", err)
			return nil, err
		}
		store = session.NewSQLiteStore(db, c.CookiePath, nil)
	}

	gw := session.NewGateway(store,
		session.WithLogger(log),
		session.WithTTL(c.TokenTTL),
		session.WithCookieName(c.CookieName),
	)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, nil, log)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	a := newApp(
		services.NewAuthService(apiClient, gw, log),
		services.NewPlaceService(apiClient, gw, log),
		services.NewReviewService(apiClient, gw, log),
		in, out, log,
	)
	a.db = db
	return a, nil
}

func newApp(as services.AuthService, ps services.PlaceService, rs services.ReviewService, in io.Reader, out io.Writer, log logging.Logger) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		authService:   as,
		placeService:  ps,
		reviewService: rs,
		reader:        bufio.NewReader(in),
		out:           out,
		log:           log,
	}
	a.router = NewRouter(map[string]PageFunc{
		PageLogin:     a.loginPage,
		PageIndex:     a.indexPage,
		"":            a.indexPage,
		PagePlace:     a.placePage,
		PageAddReview: a.addReviewPage,
	}, a.defaultPage, log)
	return a
}

// Run shows the listings page and then blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to HBnB CLI (type 'help' for commands)")
	_ = a.Open(ctx, PageIndex)

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.out)
	return nil
}

// Close releases the session database, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

// getStatus is recomputed before every prompt, so an expired token shows up
// without any other action.
func (a *App) getStatus(ctx context.Context) string {
	state := session.StateUnauthenticated
	if a.isLoggedIn(ctx) {
		state = session.StateAuthenticated
	}
	if cur := a.router.Current(); cur != "" {
		return fmt.Sprintf("(%s %s)", state, cur)
	}
	return fmt.Sprintf("(%s)", state)
}

// Open dispatches target through the router. Errors are reported to the
// user and returned.
func (a *App) Open(ctx context.Context, target string) error {
	if _, err := a.router.Dispatch(ctx, target); err != nil {
		a.log.Error(ctx, "page failed", "target", target, "error", err)
		render.Error(a.out, services.MessageOf(err))
		return err
	}
	return nil
}

func (a *App) Login(ctx context.Context) error {
	return a.Open(ctx, PageLogin)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		render.Error(a.out, services.MsgUnexpected)
		return err
	}
	a.cards = nil
	fmt.Fprintln(a.out, "Logged out.")
	return a.Open(ctx, PageLogin)
}

func (a *App) Places(ctx context.Context) error {
	return a.Open(ctx, PageIndex)
}

func (a *App) Place(ctx context.Context, id string) error {
	return a.Open(ctx, PagePlace+"?id="+url.QueryEscape(id))
}

func (a *App) Review(ctx context.Context, id string) error {
	return a.Open(ctx, PageAddReview+"?id="+url.QueryEscape(id))
}

// Filter re-renders the last loaded listing with a new price ceiling. It
// never calls the API.
func (a *App) Filter(_ context.Context, maxPrice string) error {
	visible, err := render.FilterByPrice(a.cards, maxPrice)
	if err != nil {
		render.Error(a.out, fmt.Sprintf("Choose one of: %s", priceValues()))
		return err
	}
	a.maxPrice = maxPrice

	if a.cards == nil {
		fmt.Fprintln(a.out, "No places loaded yet. Run 'places' first.")
		return nil
	}
	render.PriceFilter(a.out, a.maxPrice)
	render.PlaceCards(a.out, visible)
	return nil
}

func priceValues() string {
	s := ""
	for i, o := range render.PriceOptions {
		if i > 0 {
			s += ", "
		}
		if o.Value == "" {
			s += "all"
			continue
		}
		s += o.Value
	}
	return s
}
