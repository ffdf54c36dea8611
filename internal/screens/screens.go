// Package screens holds the view-models of the admin catalogs: the list a
// screen shows, its modal form and the actions a signed-in operator can run
// on it. Rendering and input are left to the caller.
package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdg-garage/hotel-admin/internal/gateway"
	"github.com/gdg-garage/hotel-admin/internal/notifier"
	"github.com/sirupsen/logrus"
)

var (
	ErrForbidden   = errors.New("action requires the admin role")
	ErrModalClosed = errors.New("modal is not open")
	ErrNotFound    = errors.New("record not in list")
	ErrInvalidForm = errors.New("invalid form")
)

// Capabilities are the role-derived switches that gate screen actions.
type Capabilities struct {
	Admin bool
}

// RoleChecker is anything that can answer for the signed-in roles, such as
// *auth.Session.
type RoleChecker interface {
	HasRole(role string) bool
}

func CapabilitiesFor(rc RoleChecker, adminRole string) Capabilities {
	return Capabilities{Admin: rc != nil && rc.HasRole(adminRole)}
}

type Prompt struct {
	Title   string
	Text    string
	Confirm string
	Cancel  string
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

type ConfirmFunc func(ctx context.Context, p Prompt) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) (bool, error) { return f(ctx, p) }

// Deps are the collaborators every screen shares.
type Deps struct {
	Notifier  notifier.Notifier
	Confirmer Confirmer
	Caps      Capabilities
	Now       func() time.Time
	Log       *logrus.Entry
}

func (d Deps) forScreen(name string) Deps {
	if d.Notifier == nil {
		d.Notifier = notifier.Discard{}
	}
	if d.Confirmer == nil {
		d.Confirmer = ConfirmFunc(func(context.Context, Prompt) (bool, error) { return false, nil })
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	d.Log = d.Log.WithField("screen", name)
	return d
}

func (d Deps) notify(ctx context.Context, toast notifier.Toast) {
	if err := d.Notifier.Notify(ctx, toast); err != nil {
		d.Log.WithError(err).Warn("Failed to deliver notification")
	}
}

func (d Deps) succeed(ctx context.Context, title, text string) {
	d.notify(ctx, notifier.Success(title, text))
}

// fail logs err, shows the best message it carries and hands it back.
func (d Deps) fail(ctx context.Context, action, fallback string, err error) error {
	return d.failWith(ctx, action, gateway.UserMessage(err, fallback), err)
}

func (d Deps) failWith(ctx context.Context, action, message string, err error) error {
	d.Log.WithError(err).WithField("kind", gateway.Classify(err).String()).Errorf("%s failed", action)
	d.notify(ctx, notifier.Error("Error", message))
	return fmt.Errorf("%s: %w", action, err)
}

func (d Deps) confirm(ctx context.Context, p Prompt) (bool, error) {
	ok, err := d.Confirmer.Confirm(ctx, p)
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return ok, nil
}

func (d Deps) requireAdmin() error {
	if !d.Caps.Admin {
		return ErrForbidden
	}
	return nil
}
