// Command league is a terminal client for the league service. Every
// command maps to an application view; the navigation guard runs before a
// view renders, so commands land on the login view when the session does
// not allow them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sanleague/go-league-client/api"
	"github.com/sanleague/go-league-client/client"
	"github.com/sanleague/go-league-client/internal/config"
	"github.com/sanleague/go-league-client/nav"
	"github.com/sanleague/go-league-client/session"
)

type app struct {
	cfg   config.Config
	log   zerolog.Logger
	store *session.Store
	nav   *nav.Navigator
	api   *api.API
}

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "league: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.ZerologLevel()).
		With().Timestamp().Logger()

	repo, err := session.NewFileTokenRepo(cfg.TokenFile)
	if err != nil {
		return err
	}
	store := session.NewStore(repo)
	navigator := nav.NewNavigator(nav.Routes(), store)

	cl, err := client.New(client.Options{
		BaseURL: cfg.BaseURL,
		Tokens:  store,
		OnUnauthorized: func() {
			store.Logout()
			_, _ = navigator.Go(nav.PathLogin)
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	a := api.New(cl)
	store.Bind(a.Auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.Restore(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not restore persisted session")
	}

	application := &app{cfg: cfg, log: logger, store: store, nav: navigator, api: a}
	if len(args) == 0 {
		banner(cfg.AppName)
		usage()
		return nil
	}
	return application.dispatch(ctx, args[0], args[1:])
}

// dispatch routes a command through the navigation guard and runs the view
// that was actually allowed to render.
func (a *app) dispatch(ctx context.Context, name string, args []string) error {
	if name == "logout" {
		a.store.Logout()
		fmt.Println("logged out")
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		usage()
		return errors.Errorf("unknown command %q", name)
	}

	landed, err := a.nav.Go(cmd.route)
	if err != nil {
		return err
	}
	if landed.Path != cmd.route {
		fmt.Printf("redirected to %s\n", landed.Path)
		view, ok := viewFor(landed.Path)
		if !ok {
			return errors.Errorf("no view for %s", landed.Path)
		}
		return view(ctx, a, nil)
	}
	return cmd.view(ctx, a, args)
}

type command struct {
	route string
	view  func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":     {route: nav.PathLogin, view: loginView},
	"register":  {route: nav.PathRegister, view: registerView},
	"dashboard": {route: nav.PathRoot, view: dashboardView},
	"signup":    {route: nav.PathRoot, view: signupView},
	"me":        {route: nav.PathRoot, view: meView},
	"roster":    {route: nav.PathRoster, view: rosterView},
	"generals":  {route: nav.PathGenerals, view: generalsView},
	"treasures": {route: nav.PathTreasures, view: treasuresView},
	"clubs":     {route: nav.PathClubs, view: clubsView},
	"cities":    {route: nav.PathCities, view: citiesView},
	"rules":     {route: nav.PathRules, view: rulesView},
	"players":   {route: nav.PathPlayers, view: playersView},
	"draw":      {route: nav.PathDraw, view: drawView},
	"draft":     {route: nav.PathDraft, view: draftView},
	"trade":     {route: nav.PathTrade, view: tradeView},
	"policy":    {route: nav.PathPolicy, view: policyView},
	"auction":   {route: nav.PathAuction, view: auctionView},
	"admin":     {route: nav.PathAdmin, view: adminView},
}

// viewFor resolves the view rendered after a guard redirect. The guard
// only ever redirects to the login view or the dashboard.
func viewFor(path string) (func(ctx context.Context, a *app, args []string) error, bool) {
	switch path {
	case nav.PathLogin:
		return loginView, true
	case nav.PathRoot:
		return dashboardView, true
	default:
		return nil, false
	}
}

func banner(appName string) {
	figure.NewFigure(appName, "cybermedium", true).Print()
	fmt.Println()
}

func usage() {
	fmt.Println(`usage: league <command> [args]

commands:
  login -u <user> -p <pass>      log in and persist the session
  register -u <user> -p <pass>   create an account
  logout                         drop the session
  dashboard                      phase, statistics and profile
  signup                         register for the running season
  me [profile|set-nick|draws|drafts]
  roster | players | generals | treasures | clubs | cities | rules
  draw | draft | trade | policy | auction
  admin <subcommand>             administration (admin accounts only)`)
}
