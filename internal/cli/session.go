package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/washify/laundry-market/internal/core/domain"
)

var errNotLoggedIn = errors.New("not logged in, run `washify login` first")

// requireSession returns the active session or a friendly error.
func requireSession(ctx context.Context, a *app) (*domain.Session, error) {
	sess, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errNotLoggedIn
	}
	return sess, nil
}

// requireRole additionally checks which side of the marketplace may run the
// command, mirroring the route guards of the original screens.
func requireRole(ctx context.Context, a *app, role domain.Role) (*domain.Session, error) {
	sess, err := requireSession(ctx, a)
	if err != nil {
		return nil, err
	}
	if sess.Role != role {
		return nil, fmt.Errorf("this command is only available to %ss", role)
	}
	return sess, nil
}
