package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/dmitrijs2005/hbnbclient/internal/client/client"
	"github.com/dmitrijs2005/hbnbclient/internal/client/render"
	"github.com/dmitrijs2005/hbnbclient/internal/client/services"
	"github.com/dmitrijs2005/hbnbclient/internal/common"
)

// loginPage sends authenticated users straight to the listings. Otherwise
// it asks for credentials once; a failed attempt stays on the page.
func (a *App) loginPage(ctx context.Context, _ url.Values) (string, error) {
	if a.isLoggedIn(ctx) {
		return PageIndex, nil
	}

	fmt.Fprintln(a.out, "Login")
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", err
	}
	password, err := a.readPassword()
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, string(password)); err != nil {
		render.Error(a.out, services.MessageOf(err))
		return "", nil
	}

	render.Success(a.out, "Login successful! Redirecting...")
	return PageIndex, nil
}

// indexPage loads the listing only for authenticated users. A 401 clears
// the session and sends the user to the login page.
func (a *App) indexPage(ctx context.Context, _ url.Values) (string, error) {
	loggedIn := a.isLoggedIn(ctx)
	render.Navigation(a.out, loggedIn)
	if !loggedIn {
		fmt.Fprintln(a.out, "Log in to browse available places.")
		return "", nil
	}

	places, err := a.placeService.List(ctx)
	if err != nil {
		if errors.Is(err, services.ErrSessionExpired) {
			a.cards = nil
			return PageLogin, nil
		}
		render.Error(a.out, services.MessageOf(err))
		return "", nil
	}

	a.cards = render.NewPlaceCards(places)
	visible, err := render.FilterByPrice(a.cards, a.maxPrice)
	if err != nil {
		a.maxPrice = ""
		visible = a.cards
	}
	render.PriceFilter(a.out, a.maxPrice)
	render.PlaceCards(a.out, visible)
	return "", nil
}

func (a *App) placePage(ctx context.Context, q url.Values) (string, error) {
	placeID := q.Get("id")
	if placeID == "" {
		a.log.Warn(ctx, "no place id in target")
		return PageIndex, nil
	}

	loggedIn := a.isLoggedIn(ctx)
	render.Navigation(a.out, loggedIn)

	place, err := a.placeService.Get(ctx, placeID)
	if err != nil {
		if errors.Is(err, services.ErrSessionExpired) {
			return PageLogin, nil
		}
		render.Error(a.out, services.MessageOf(err))
		return "", nil
	}
	render.PlaceDetailView(a.out, render.NewPlaceDetail(*place))
	fmt.Fprintln(a.out)

	// failures are logged by the service and shown as "no reviews"
	reviews, _ := a.placeService.Reviews(ctx, placeID)
	render.Reviews(a.out, render.Summarize(reviews), render.NewReviewCards(reviews))
	fmt.Fprintln(a.out)

	if loggedIn {
		fmt.Fprintf(a.out, "Add a review: review %s\n", placeID)
	} else {
		fmt.Fprintln(a.out, "Log in to add a review.")
	}
	return "", nil
}

// addReviewPage requires a valid session and an existing place. On success
// it returns to the place page.
func (a *App) addReviewPage(ctx context.Context, q url.Values) (string, error) {
	if !a.isLoggedIn(ctx) {
		return PageIndex, nil
	}
	placeID := q.Get("id")
	if placeID == "" {
		return PageIndex, nil
	}

	render.Navigation(a.out, true)

	place, err := a.placeService.Get(ctx, placeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionExpired):
			return PageLogin, nil
		case errors.Is(err, client.ErrNotFound), services.KindOf(err) == services.KindNetwork:
			return PageIndex, nil
		}
		render.Error(a.out, services.MessageOf(err))
		return "", nil
	}

	d := render.NewPlaceDetail(*place)
	fmt.Fprintf(a.out, "Reviewing: %s\n", d.Title)
	if d.Host != "" {
		fmt.Fprintf(a.out, "Host: %s\n", d.Host)
	}
	fmt.Fprintf(a.out, "Price: $%s per night\n", d.Price)

	raw, err := getSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		return "", err
	}
	rating, _ := strconv.Atoi(raw)
	render.RatingPreview(a.out, rating)

	text, err := getMultiline(a.reader, "Your review", a.out)
	if err != nil {
		return "", err
	}

	if _, err := a.reviewService.Submit(ctx, placeID, rating, text); err != nil {
		if errors.Is(err, services.ErrSessionExpired) {
			return PageLogin, nil
		}
		render.Error(a.out, services.MessageOf(err))
		return "", nil
	}

	render.Success(a.out, services.MsgReviewSubmitted)
	return PagePlace + "?id=" + url.QueryEscape(placeID), nil
}

// defaultPage is shown for any unknown page name.
func (a *App) defaultPage(ctx context.Context, _ url.Values) (string, error) {
	render.Navigation(a.out, a.isLoggedIn(ctx))
	return "", nil
}

// readPassword hides input on a terminal and falls back to a plain line
// when stdin is piped.
func (a *App) readPassword() ([]byte, error) {
	if isTerminal(int(os.Stdin.Fd())) {
		return getPassword(a.out)
	}
	pw, err := getSimpleText(a.reader, "Enter password", a.out)
	if err != nil {
		return nil, err
	}
	return []byte(pw), nil
}
