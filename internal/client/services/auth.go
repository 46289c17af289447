// Package services contains the application flows of the HBnB client:
// signing in and out, loading listings and their reviews, and submitting
// reviews. Each flow talks to the API through client.Client and to the
// stored credential through session.Gateway, and reports failures as
// *Error values carrying the text to show the user.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/hbnbclient/internal/client/client"
	"github.com/dmitrijs2005/hbnbclient/internal/client/session"
	"github.com/dmitrijs2005/hbnbclient/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate input, exchange credentials for a token and persist it.
//   - Logout: drop the stored token.
//   - IsAuthenticated: report whether a non-expired token is stored.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type authService struct {
	client  client.Client
	gateway *session.Gateway
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// session gateway.
func NewAuthService(c client.Client, gw *session.Gateway, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, gateway: gw, log: log}
}

// Login trims both fields and refuses to call the API when either is empty.
// On success the token is stored for the gateway's TTL.
func (a *authService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return validationError(MsgMissingCredentials)
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", email, "error", err)
		if errors.Is(err, client.ErrUnavailable) {
			return &Error{Kind: KindNetwork, Message: MsgNetworkError, Err: err}
		}
		msg := client.ServerMessage(err)
		if msg == "" {
			msg = MsgLoginFailed
		}
		return &Error{Kind: KindAPI, Message: msg, Err: err}
	}

	if err := a.gateway.Persist(ctx, token); err != nil {
		return &Error{Kind: KindAPI, Message: MsgUnexpected, Err: err}
	}
	a.log.Info(ctx, "logged in", "email", email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.gateway.Logout(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.gateway.IsAuthenticated(ctx)
}
