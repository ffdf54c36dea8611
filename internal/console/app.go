// Package console is the terminal front-end of the admin screens:
// hotel-admin <resource> <action> [flags].
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gdg-garage/hotel-admin/internal/auth"
	"github.com/gdg-garage/hotel-admin/internal/config"
	"github.com/gdg-garage/hotel-admin/internal/gateway"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/gdg-garage/hotel-admin/internal/notifier"
	"github.com/gdg-garage/hotel-admin/internal/screens"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var ErrUsage = errors.New("usage")

const usage = `Uso: hotel-admin [--yes] <recurso> <acción> [opciones]

Recursos y acciones:
  login                                       obtiene un token de acceso
  habitaciones list|create|edit|delete
  huespedes    list|create|edit|delete
  reservas     list|create|check-in|check-out|cancel|delete
  usuarios     list|create|delete
`

// App wires the screens to the API for one command invocation.
type App struct {
	cfg      *config.Config
	out      io.Writer
	prompter *Prompter
	notifier notifier.Notifier
	http     *http.Client
	now      func() time.Time
	log      *logrus.Entry
}

func New(cfg *config.Config, in io.Reader, out io.Writer, n notifier.Notifier) *App {
	if n == nil {
		n = notifier.NewConsole(out)
	}
	return &App{
		cfg:      cfg,
		out:      out,
		prompter: NewPrompter(in, out),
		notifier: n,
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		now:      time.Now,
		log:      logrus.WithField("component", "console"),
	}
}

// Run executes one command. args excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	global := pflag.NewFlagSet("hotel-admin", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)
	yes := global.BoolP("yes", "y", false, "answer yes to every confirmation")
	if err := global.Parse(args); err != nil {
		return a.usageError(err.Error())
	}
	a.prompter.AssumeYes = *yes
	args = global.Args()

	if len(args) == 0 {
		return a.usageError("")
	}
	if args[0] == "login" {
		return a.runLogin(ctx, args[1:])
	}
	if len(args) < 2 {
		return a.usageError("falta la acción")
	}

	resource, action, rest := args[0], args[1], args[2:]
	cmd, ok := commands[resource][action]
	if !ok {
		return a.usageError(fmt.Sprintf("comando desconocido: %s %s", resource, action))
	}

	client, session, err := a.connect(ctx)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"user":     session.Username(),
		"resource": resource,
		"action":   action,
	}).Debug("Running command")

	fs := pflag.NewFlagSet(resource+" "+action, pflag.ContinueOnError)
	fs.SetOutput(a.out)
	return cmd(ctx, a, a.deps(session), client, fs, rest)
}

func (a *App) usageError(msg string) error {
	fmt.Fprint(a.out, usage)
	if msg == "" {
		return ErrUsage
	}
	return fmt.Errorf("%w: %s", ErrUsage, msg)
}

func (a *App) deps(session *auth.Session) screens.Deps {
	return screens.Deps{
		Notifier:  a.notifier,
		Confirmer: a.prompter,
		Caps:      screens.CapabilitiesFor(session, models.RoleAdmin),
		Now:       a.now,
		Log:       a.log,
	}
}

func (a *App) newClient(opts ...gateway.Option) (*gateway.Client, error) {
	return gateway.NewClient(a.cfg.APIURL, append([]gateway.Option{gateway.WithLogger(a.log)}, opts...)...)
}

// connect builds the session from API_TOKEN or, failing that, by signing in
// with API_USERNAME and API_PASSWORD.
func (a *App) connect(ctx context.Context) (*gateway.Client, *auth.Session, error) {
	token := a.cfg.APIToken
	if token == "" {
		if a.cfg.APIUsername == "" || a.cfg.APIPassword == "" {
			return nil, nil, errors.New("no credentials: set API_TOKEN, or API_USERNAME and API_PASSWORD")
		}
		res, err := a.login(ctx, a.cfg.APIUsername, a.cfg.APIPassword)
		if err != nil {
			return nil, nil, err
		}
		token = res.Token
	}

	session, err := auth.NewSession(token)
	if err != nil {
		return nil, nil, err
	}
	if session.Expired(a.now()) {
		return nil, nil, errors.New("the access token has expired, sign in again")
	}

	client, err := a.newClient(gateway.WithHTTPClient(gateway.AuthorizedHTTPClient(a.http, session.TokenSource())))
	if err != nil {
		return nil, nil, err
	}
	return client, session, nil
}

func (a *App) login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	client, err := a.newClient(gateway.WithHTTPClient(a.http))
	if err != nil {
		return models.LoginResponse{}, err
	}
	res, err := client.Auth().Login(ctx, username, password)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login failed: %s: %w", gateway.UserMessage(err, "no se pudo iniciar sesión"), err)
	}
	return res, nil
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	fs.SetOutput(a.out)
	username := fs.StringP("username", "u", a.cfg.APIUsername, "user name")
	password := fs.StringP("password", "p", a.cfg.APIPassword, "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("%w: --username y --password son obligatorios", ErrUsage)
	}

	res, err := a.login(ctx, *username, *password)
	if err != nil {
		return err
	}
	roles := lo.Map(res.Roles, func(r string, _ int) string { return models.Roles.Label(r) })
	fmt.Fprintf(a.out, "Sesión iniciada como %s (%s)\n", res.Username, strings.Join(roles, ", "))
	fmt.Fprintf(a.out, "API_TOKEN=%s\n", res.Token)
	return nil
}

// Describe turns err into the lines shown to the operator.
func Describe(err error) string {
	var fe *screens.FormError
	if errors.As(err, &fe) {
		fields := lo.Keys(fe.Fields)
		sort.Strings(fields)
		lines := lo.Map(fields, func(f string, _ int) string { return fmt.Sprintf("  %s: %s", f, fe.Fields[f]) })
		return "Formulario inválido:\n" + strings.Join(lines, "\n")
	}
	if errors.Is(err, screens.ErrForbidden) {
		return "Esta acción requiere el rol de administrador"
	}
	if errors.Is(err, screens.ErrNotFound) {
		return "Registro no encontrado"
	}
	return err.Error()
}
