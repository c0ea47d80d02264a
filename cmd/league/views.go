package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sanleague/go-league-client/api"
	"github.com/sanleague/go-league-client/phase"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func loginView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *pass == "" {
		fmt.Println("usage: league login -u <user> -p <pass>")
		return nil
	}
	profile, err := a.store.Login(ctx, api.Credentials{Username: *user, Password: *pass})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", profile.Nickname)
	return nil
}

func registerView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", "", "password")
	nick := fs.String("n", "", "nickname")
	invite := fs.String("invite", "", "invite code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *user == "" || *pass == "" {
		fmt.Println("usage: league register -u <user> -p <pass> [-n <nick>] [-invite <code>]")
		return nil
	}

	// Surface the invite requirement up front so a missing code fails
	// locally instead of with a server round trip.
	regCfg, err := a.api.Game.RegistrationConfig(ctx)
	if err == nil && regCfg.RequireInviteCode && *invite == "" {
		fmt.Println("this server requires an invite code (-invite)")
		return nil
	}
	if *invite != "" {
		check, err := a.api.Invites.Validate(ctx, *invite)
		if err != nil {
			return err
		}
		if !check.Valid {
			fmt.Printf("invite code rejected: %s\n", check.Reason)
			return nil
		}
	}

	profile, err := a.store.Register(ctx, api.Registration{
		Username:   *user,
		Password:   *pass,
		Nickname:   *nick,
		InviteCode: *invite,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered as %s\n", profile.Nickname)
	return nil
}

func signupView(ctx context.Context, a *app, _ []string) error {
	if err := a.api.Game.SignUp(ctx); err != nil {
		return err
	}
	if _, err := a.store.RefreshProfile(ctx); err != nil {
		return err
	}
	fmt.Println("signed up for the season")
	return nil
}

func meView(ctx context.Context, a *app, args []string) error {
	sub := "profile"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "profile":
		user, err := a.store.RefreshProfile(ctx)
		if err != nil {
			return err
		}
		if err := printJSON(user); err != nil {
			return err
		}
		if claims, err := a.store.Claims(); err == nil && claims.ExpiresAt != nil {
			fmt.Printf("session expires %s\n", claims.ExpiresAt.Time)
		}
		return nil
	case "set-nick":
		if len(args) == 0 {
			fmt.Println("usage: league me set-nick <nickname>")
			return nil
		}
		if err := a.api.Auth.UpdateProfile(ctx, api.ProfileUpdate{Nickname: args[0]}); err != nil {
			return err
		}
		_, err := a.store.RefreshProfile(ctx)
		return err
	case "draws":
		records, err := a.api.Auth.MyDrawRecords(ctx)
		if err != nil {
			return err
		}
		return printJSON(records)
	case "drafts":
		records, err := a.api.Auth.MyDraftRecords(ctx)
		if err != nil {
			return err
		}
		return printJSON(records)
	default:
		fmt.Println("usage: league me [profile|set-nick <nick>|draws|drafts]")
		return nil
	}
}

func dashboardView(ctx context.Context, a *app, _ []string) error {
	current, err := a.api.Game.Phase(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("phase: %s (round %d)\n", phase.Label(phase.Phase(current.CurrentPhase)), current.RoundNumber)

	stats, err := a.api.Game.Statistics(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("players: %d  generals: %d  treasures: %d  trades: %d\n",
		stats.PlayerCount, stats.GeneralCount, stats.TreasureCount, stats.TradeCount)

	if user := a.store.User(); user != nil {
		fmt.Printf("you: %s  space %d/%d (remaining %d)\n",
			user.Nickname, user.UsedSpace, user.Space, a.store.RemainingSpace())
	}
	return nil
}

func rosterView(ctx context.Context, a *app, _ []string) error {
	roster, err := a.api.Auth.MyRoster(ctx)
	if err != nil {
		return err
	}
	return printJSON(roster)
}

func generalsView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("generals", flag.ContinueOnError)
	id := fs.Uint("id", 0, "show one general")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id != 0 {
		general, err := a.api.Assets.General(ctx, uint(*id))
		if err != nil {
			return err
		}
		return printJSON(general)
	}
	generals, err := a.api.Assets.Generals(ctx)
	if err != nil {
		return err
	}
	return printJSON(generals)
}

func treasuresView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("treasures", flag.ContinueOnError)
	id := fs.Uint("id", 0, "show one treasure")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id != 0 {
		treasure, err := a.api.Assets.Treasure(ctx, uint(*id))
		if err != nil {
			return err
		}
		return printJSON(treasure)
	}
	treasures, err := a.api.Assets.Treasures(ctx)
	if err != nil {
		return err
	}
	return printJSON(treasures)
}

func clubsView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("clubs", flag.ContinueOnError)
	id := fs.Uint("id", 0, "show one club")
	detail := fs.Uint("detail", 0, "club id to show with its policy ladder")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *detail != 0 {
		club, err := a.api.Assets.ClubDetail(ctx, uint(*detail))
		if err != nil {
			return err
		}
		return printJSON(club)
	}
	if *id != 0 {
		club, err := a.api.Assets.Club(ctx, uint(*id))
		if err != nil {
			return err
		}
		return printJSON(club)
	}
	clubs, err := a.api.Assets.Clubs(ctx)
	if err != nil {
		return err
	}
	return printJSON(clubs)
}

func citiesView(ctx context.Context, a *app, _ []string) error {
	cities, err := a.api.Assets.Cities(ctx)
	if err != nil {
		return err
	}
	return printJSON(cities)
}

func rulesView(ctx context.Context, a *app, _ []string) error {
	rules, err := a.api.Assets.Rules(ctx)
	if err != nil {
		return err
	}
	return printJSON(rules)
}

func playersView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("players", flag.ContinueOnError)
	roster := fs.Uint("roster", 0, "player id to show the roster of")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *roster != 0 {
		r, err := a.api.Game.PlayerRoster(ctx, uint(*roster))
		if err != nil {
			return err
		}
		return printJSON(r)
	}
	players, err := a.api.Game.Players(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		fmt.Printf("%4d  %-20s space %d/%d\n", p.ID, p.Nickname, p.UsedSpace, p.Space)
	}
	return nil
}

func drawView(ctx context.Context, a *app, args []string) error {
	sub := "status"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "status":
		status, err := a.api.Draw.Status(ctx)
		if err != nil {
			return err
		}
		return printJSON(status)
	case "once":
		outcome, err := a.api.Draw.Draw(ctx)
		if err != nil {
			return err
		}
		return printJSON(outcome)
	case "results":
		results, err := a.api.Draw.Results(ctx)
		if err != nil {
			return err
		}
		return printJSON(results)
	case "guarantee":
		outcome, err := a.api.Draw.GuaranteeDraw(ctx)
		if err != nil {
			return err
		}
		return printJSON(outcome)
	case "normal":
		outcome, err := a.api.Draw.NormalDraw(ctx)
		if err != nil {
			return err
		}
		return printJSON(outcome)
	case "pool":
		if len(args) > 1 {
			generals, err := a.api.Draw.Pool(ctx, args[1])
			if err != nil {
				return err
			}
			return printJSON(generals)
		}
		pools, err := a.api.Draw.Pools(ctx)
		if err != nil {
			return err
		}
		return printJSON(pools)
	default:
		fmt.Println("usage: league draw [status|once|guarantee|normal|results|pool [type]]")
		return nil
	}
}

func draftView(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("draft", flag.ContinueOnError)
	pick := fs.Uint("pick", 0, "general id to pick")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pick != 0 {
		if err := a.api.Draft.Pick(ctx, uint(*pick)); err != nil {
			return err
		}
		fmt.Println("picked")
		return nil
	}
	pool, err := a.api.Draft.Pool(ctx)
	if err != nil {
		return err
	}
	return printJSON(pool)
}

func tradeView(ctx context.Context, a *app, args []string) error {
	sub := "pending"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "pending":
		trades, err := a.api.Trades.Pending(ctx)
		if err != nil {
			return err
		}
		return printJSON(trades)
	case "history":
		trades, err := a.api.Trades.History(ctx)
		if err != nil {
			return err
		}
		return printJSON(trades)
	case "propose":
		fs := flag.NewFlagSet("trade propose", flag.ContinueOnError)
		to := fs.Uint("to", 0, "receiving player id")
		offerGenerals := fs.String("offer-generals", "", "comma-separated general ids to give")
		offerTreasures := fs.String("offer-treasures", "", "comma-separated treasure ids to give")
		offerSpace := fs.Int("offer-space", 0, "space to give")
		requestGenerals := fs.String("request-generals", "", "comma-separated general ids to receive")
		requestTreasures := fs.String("request-treasures", "", "comma-separated treasure ids to receive")
		requestSpace := fs.Int("request-space", 0, "space to receive")
		message := fs.String("m", "", "message to the receiver")
		if err := fs.Parse(args); err != nil {
			return err
		}
		req := api.TradeRequest{
			ReceiverID:   uint(*to),
			OfferSpace:   *offerSpace,
			RequestSpace: *requestSpace,
			Message:      *message,
		}
		var err error
		if req.OfferGenerals, err = parseIDList(*offerGenerals); err != nil {
			return err
		}
		if req.OfferTreasures, err = parseIDList(*offerTreasures); err != nil {
			return err
		}
		if req.RequestGenerals, err = parseIDList(*requestGenerals); err != nil {
			return err
		}
		if req.RequestTreasures, err = parseIDList(*requestTreasures); err != nil {
			return err
		}
		created, err := a.api.Trades.Create(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(created)
	case "show", "accept", "reject", "cancel":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		switch sub {
		case "show":
			trade, err := a.api.Trades.Get(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(trade)
		case "accept":
			err = a.api.Trades.Accept(ctx, id)
		case "reject":
			err = a.api.Trades.Reject(ctx, id)
		case "cancel":
			err = a.api.Trades.Cancel(ctx, id)
		}
		if err != nil {
			return err
		}
		fmt.Printf("trade %d %sed\n", id, sub)
		return nil
	default:
		fmt.Println("usage: league trade [pending|history|propose ...|show <id>|accept <id>|reject <id>|cancel <id>]")
		return nil
	}
}

func policyView(ctx context.Context, a *app, args []string) error {
	sub := "status"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "status":
		status, err := a.api.Policy.Status(ctx)
		if err != nil {
			return err
		}
		return printJSON(status)
	case "my-bid":
		bid, err := a.api.Policy.MyBid(ctx)
		if err != nil {
			return err
		}
		return printJSON(bid)
	case "bid":
		amount, err := parseInt(args)
		if err != nil {
			return err
		}
		if err := a.api.Policy.PlaceBid(ctx, amount); err != nil {
			return err
		}
		fmt.Println("bid placed")
		return nil
	case "prefs":
		if len(args) == 0 {
			fmt.Println("usage: league policy prefs <club-id>[,<club-id>...]")
			return nil
		}
		clubIDs, err := parseIDList(args[0])
		if err != nil {
			return err
		}
		if err := a.api.Policy.SetPreferences(ctx, clubIDs); err != nil {
			return err
		}
		fmt.Println("preferences saved")
		return nil
	case "select":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := a.api.Policy.SelectClub(ctx, id); err != nil {
			return err
		}
		fmt.Println("club selected")
		return nil
	case "results":
		results, err := a.api.Policy.Results(ctx)
		if err != nil {
			return err
		}
		return printJSON(results)
	case "clubs":
		fs := flag.NewFlagSet("policy clubs", flag.ContinueOnError)
		league := fs.String("league", "", "filter by league")
		tag := fs.String("tag", "", "filter by tag")
		if err := fs.Parse(args); err != nil {
			return err
		}
		clubs, err := a.api.Policy.Clubs(ctx, *league, *tag)
		if err != nil {
			return err
		}
		return printJSON(clubs)
	case "filters":
		filters, err := a.api.Policy.Filters(ctx)
		if err != nil {
			return err
		}
		return printJSON(filters)
	default:
		fmt.Println("usage: league policy [status|my-bid|bid <amount>|prefs <ids>|select <club>|results|clubs|filters]")
		return nil
	}
}

func auctionView(ctx context.Context, a *app, args []string) error {
	sub := "stats"
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "pool":
		pool, err := a.api.Auctions.Pool(ctx)
		if err != nil {
			return err
		}
		return printJSON(pool)
	case "results":
		results, err := a.api.Auctions.Results(ctx)
		if err != nil {
			return err
		}
		return printJSON(results)
	case "stats":
		stats, err := a.api.Auctions.Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)
	default:
		fmt.Println("usage: league auction [pool|results|stats]")
		return nil
	}
}
