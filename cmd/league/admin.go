package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sanleague/go-league-client/api"
)

func parseID(args []string) (uint, error) {
	if len(args) == 0 {
		return 0, errors.New("an id argument is required")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", args[0])
	}
	return uint(id), nil
}

func parseInt(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("a numeric argument is required")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", args[0])
	}
	return n, nil
}

// parseIDList accepts "1,2,3"; empty input yields a nil slice.
func parseIDList(s string) ([]uint, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid id %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func adminView(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		adminUsage()
		return nil
	}
	sub := args[0]
	args = args[1:]
	switch sub {
	case "phase":
		return adminPhase(ctx, a, args)
	case "reset":
		if err := a.api.Admin.ResetSeason(ctx); err != nil {
			return err
		}
		fmt.Println("season reset")
		return nil
	case "trades":
		trades, err := a.api.Admin.Trades(ctx)
		if err != nil {
			return err
		}
		return printJSON(trades)
	case "import":
		return adminImport(ctx, a, args)
	case "invites":
		return adminInvites(ctx, a, args)
	case "draw":
		return adminDraw(ctx, a, args)
	case "auction":
		return adminAuction(ctx, a, args)
	case "policy":
		return adminPolicy(ctx, a, args)
	default:
		adminUsage()
		return errors.Errorf("unknown admin subcommand %q", sub)
	}
}

func adminPhase(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("admin phase", flag.ContinueOnError)
	round := fs.Int("round", 0, "round number")
	draftRound := fs.Int("draft-round", 0, "draft round")
	if len(args) == 0 {
		fmt.Println("usage: league admin phase <name> [-round n] [-draft-round n]")
		return nil
	}
	name := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	err := a.api.Admin.SetPhase(ctx, api.SetPhaseRequest{
		Phase:       name,
		RoundNumber: *round,
		DraftRound:  *draftRound,
	})
	if err != nil {
		return err
	}
	fmt.Printf("phase set to %s\n", name)
	return nil
}

func adminImport(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		fmt.Println("usage: league admin import <file>")
		return nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "open import file")
	}
	defer f.Close()
	summary, err := a.api.Admin.Import(ctx, f.Name(), f)
	if err != nil {
		return err
	}
	return printJSON(summary)
}

func adminInvites(ctx context.Context, a *app, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}
	switch sub {
	case "list":
		fs := flag.NewFlagSet("admin invites list", flag.ContinueOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", 20, "page size")
		if err := fs.Parse(args); err != nil {
			return err
		}
		codes, err := a.api.Admin.InviteCodes(ctx, api.Page{Number: *page, Size: *size})
		if err != nil {
			return err
		}
		return printJSON(codes)
	case "new":
		fs := flag.NewFlagSet("admin invites new", flag.ContinueOnError)
		count := fs.Int("count", 1, "number of codes")
		maxUses := fs.Int("max-uses", 1, "max uses per code")
		expire := fs.Int("expire-days", 0, "days until expiry, 0 for never")
		remark := fs.String("remark", "", "remark")
		if err := fs.Parse(args); err != nil {
			return err
		}
		codeType := 0
		if *maxUses > 1 {
			codeType = 1
		}
		generated, err := a.api.Admin.GenerateInviteCodes(ctx, api.GenerateInviteCodesRequest{
			Count:      *count,
			Type:       codeType,
			MaxUses:    *maxUses,
			ExpireDays: *expire,
			Remark:     *remark,
		})
		if err != nil {
			return err
		}
		for _, code := range generated.CodeStrings {
			fmt.Println(code)
		}
		return nil
	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if err := a.api.Admin.DeleteInviteCode(ctx, id); err != nil {
			return err
		}
		fmt.Printf("invite code %d deleted\n", id)
		return nil
	case "usages":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		usages, err := a.api.Admin.InviteCodeUsages(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(usages)
	case "stats":
		stats, err := a.api.Admin.InviteCodeStats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)
	default:
		fmt.Println("usage: league admin invites [list|new|delete <id>|usages <id>|stats]")
		return nil
	}
}

func adminDraw(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		fmt.Println("usage: league admin draw [reset <user>|reset-all|run <user>|run-all]")
		return nil
	}
	switch args[0] {
	case "reset":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		if err := a.api.Admin.ResetUserDraw(ctx, id); err != nil {
			return err
		}
		fmt.Printf("draws reset for user %d\n", id)
		return nil
	case "reset-all":
		result, err := a.api.Admin.ResetAllDraws(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("draws reset for %d users\n", result.ResetCount)
		return nil
	case "run":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		result, err := a.api.Admin.DrawForUser(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(result)
	case "run-all":
		result, err := a.api.Admin.DrawForAll(ctx)
		if err != nil {
			return err
		}
		return printJSON(result)
	default:
		fmt.Println("usage: league admin draw [reset <user>|reset-all|run <user>|run-all]")
		return nil
	}
}

func adminAuction(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		fmt.Println("usage: league admin auction [assign|reset <general>]")
		return nil
	}
	switch args[0] {
	case "assign":
		fs := flag.NewFlagSet("admin auction assign", flag.ContinueOnError)
		general := fs.Uint("general", 0, "general id")
		winner := fs.Uint("winner", 0, "winning user id, 0 for unsold")
		price := fs.Int("price", 0, "winning price")
		remark := fs.String("remark", "", "remark")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		req := api.AssignAuctionRequest{
			GeneralID: uint(*general),
			Price:     *price,
			Remark:    *remark,
		}
		if *winner != 0 {
			id := uint(*winner)
			req.UserID = &id
		}
		assigned, err := a.api.Admin.AssignAuction(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(assigned)
	case "reset":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		if err := a.api.Admin.ResetAuction(ctx, id); err != nil {
			return err
		}
		fmt.Printf("auction record for general %d reset\n", id)
		return nil
	default:
		fmt.Println("usage: league admin auction [assign|reset <general>]")
		return nil
	}
}

func adminPolicy(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		fmt.Println("usage: league admin policy [close|start|bids|reset|reset-user <id>|select-for <user> <club>|timeout|next]")
		return nil
	}
	switch args[0] {
	case "close":
		if err := a.api.Admin.ClosePolicyBidding(ctx); err != nil {
			return err
		}
		fmt.Println("bidding closed")
		return nil
	case "start":
		fs := flag.NewFlagSet("admin policy start", flag.ContinueOnError)
		start := fs.String("start", "", "start time, RFC 3339; empty for now")
		timeout := fs.Int("timeout", 30, "minutes per selection turn")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		err := a.api.Admin.StartPolicySelection(ctx, api.StartPolicySelectionRequest{
			StartTime:      *start,
			TimeoutMinutes: *timeout,
		})
		if err != nil {
			return err
		}
		fmt.Println("selection started")
		return nil
	case "bids":
		bids, err := a.api.Admin.PolicyBids(ctx)
		if err != nil {
			return err
		}
		return printJSON(bids)
	case "reset":
		if err := a.api.Admin.ResetPolicyPhase(ctx); err != nil {
			return err
		}
		fmt.Println("policy phase reset")
		return nil
	case "reset-user":
		id, err := parseID(args[1:])
		if err != nil {
			return err
		}
		if err := a.api.Admin.ResetUserPolicySelection(ctx, id); err != nil {
			return err
		}
		fmt.Printf("policy selection reset for user %d\n", id)
		return nil
	case "select-for":
		if len(args) < 3 {
			fmt.Println("usage: league admin policy select-for <user> <club>")
			return nil
		}
		userID, err := parseID(args[1:2])
		if err != nil {
			return err
		}
		clubID, err := parseID(args[2:3])
		if err != nil {
			return err
		}
		if err := a.api.Admin.SelectClubForUser(ctx, userID, clubID); err != nil {
			return err
		}
		fmt.Printf("club %d selected for user %d\n", clubID, userID)
		return nil
	case "timeout":
		result, err := a.api.Admin.CheckPolicyTimeout(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("timeout handled: %v\n", result.TimeoutHandled)
		return nil
	case "next":
		if err := a.api.Admin.ForceNextSelector(ctx); err != nil {
			return err
		}
		fmt.Println("moved to next selector")
		return nil
	default:
		fmt.Println("usage: league admin policy [close|start|bids|reset|reset-user <id>|select-for <user> <club>|timeout|next]")
		return nil
	}
}

func adminUsage() {
	fmt.Println(`usage: league admin <subcommand>

subcommands:
  phase <name>    move the season to another phase
  reset           reset the season
  trades          list every trade
  import <file>   bulk-import spreadsheet data
  invites ...     invite-code lifecycle
  draw ...        draw administration
  auction ...     auction administration
  policy ...      policy-bidding administration`)
}
