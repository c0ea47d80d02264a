package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sanleague/go-league-client/api"
	"github.com/sanleague/go-league-client/client"
)

// recorder captures the last request and serves a canned JSON response.
type recorder struct {
	method string
	path   string
	query  string
	body   []byte

	status  int
	payload string
	hits    int
}

func newAPI(t *testing.T, rec *recorder) *api.API {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.hits++
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body, _ = io.ReadAll(r.Body)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		payload := rec.payload
		if payload == "" {
			payload = "{}"
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(client.Options{BaseURL: srv.URL, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return api.New(c)
}

func TestTradeCreateSendsTypedBody(t *testing.T) {
	rec := &recorder{payload: `{"message": "trade proposed", "trade": {"id": 4}}`}
	a := newAPI(t, rec)

	created, err := a.Trades.Create(context.Background(), api.TradeRequest{
		ReceiverID:      9,
		OfferGenerals:   []uint{1, 2},
		RequestGenerals: []uint{3},
	})
	require.NoError(t, err)
	require.Equal(t, uint(4), created.Trade.ID)
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/trades", rec.path)

	var sent api.TradeRequest
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	require.Equal(t, uint(9), sent.ReceiverID)
	require.Equal(t, []uint{1, 2}, sent.OfferGenerals)
}

func TestTradeLifecyclePathsCarryID(t *testing.T) {
	rec := &recorder{}
	a := newAPI(t, rec)
	ctx := context.Background()

	require.NoError(t, a.Trades.Accept(ctx, 17))
	require.Equal(t, "/trades/17/accept", rec.path)

	require.NoError(t, a.Trades.Reject(ctx, 17))
	require.Equal(t, "/trades/17/reject", rec.path)

	require.NoError(t, a.Trades.Cancel(ctx, 17))
	require.Equal(t, "/trades/17/cancel", rec.path)
}

func TestMissingIDRejectedBeforeTransmission(t *testing.T) {
	rec := &recorder{}
	a := newAPI(t, rec)
	ctx := context.Background()

	var vErr *client.ValidationError
	require.ErrorAs(t, a.Trades.Accept(ctx, 0), &vErr)

	_, err := a.Trades.Create(ctx, api.TradeRequest{})
	require.ErrorAs(t, err, &vErr)

	_, err = a.Draw.Pool(ctx, "")
	require.ErrorAs(t, err, &vErr)

	require.Zero(t, rec.hits, "validation failures must not reach the wire")
}

func TestDrawPoolQueryEncodesType(t *testing.T) {
	rec := &recorder{payload: `[]`}
	a := newAPI(t, rec)

	_, err := a.Draw.Pool(context.Background(), api.PoolInitialGuarantee)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, rec.method)
	require.Equal(t, "/draw/pool", rec.path)
	require.Equal(t, "type=initial_guarantee", rec.query)
}

func TestDrawEndpointsAreDistinct(t *testing.T) {
	rec := &recorder{payload: `{"general": {"id": 1, "name": "Zhao Yun"}}`}
	a := newAPI(t, rec)
	ctx := context.Background()

	out, err := a.Draw.Draw(ctx)
	require.NoError(t, err)
	require.Equal(t, "Zhao Yun", out.General.Name)
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/draw", rec.path)

	_, err = a.Draw.GuaranteeDraw(ctx)
	require.NoError(t, err)
	require.Equal(t, "/draw/guarantee", rec.path)

	_, err = a.Draw.NormalDraw(ctx)
	require.NoError(t, err)
	require.Equal(t, "/draw/normal", rec.path)
}

func TestAdminInviteCodePaging(t *testing.T) {
	rec := &recorder{payload: `{"codes": [], "total": 0, "page": 2, "page_size": 50}`}
	a := newAPI(t, rec)

	list, err := a.Admin.InviteCodes(context.Background(), api.Page{Number: 2, Size: 50})
	require.NoError(t, err)
	require.Equal(t, 2, list.Page)
	require.Equal(t, "/admin/invite-codes", rec.path)
	require.Contains(t, rec.query, "page=2")
	require.Contains(t, rec.query, "page_size=50")

	_, err = a.Admin.InviteCodes(context.Background(), api.Page{})
	require.NoError(t, err)
	require.Empty(t, rec.query, "zero page falls back to server defaults")
}

func TestAdminImportUploadsMultipartFile(t *testing.T) {
	rec := &recorder{payload: `{"generals": 120, "treasures": 30}`}
	a := newAPI(t, rec)

	summary, err := a.Admin.Import(context.Background(), "season.xlsx", strings.NewReader("cells"))
	require.NoError(t, err)
	require.Equal(t, 120, summary.Generals)
	require.Equal(t, "/admin/import", rec.path)
	require.Contains(t, string(rec.body), `filename="season.xlsx"`)
	require.Contains(t, string(rec.body), "cells")
}

func TestAdminSelectClubForUserBodyAndPath(t *testing.T) {
	rec := &recorder{}
	a := newAPI(t, rec)

	require.NoError(t, a.Admin.SelectClubForUser(context.Background(), 5, 12))
	require.Equal(t, "/admin/policy/select-for/5", rec.path)

	var sel api.ClubSelection
	require.NoError(t, json.Unmarshal(rec.body, &sel))
	require.Equal(t, uint(12), sel.ClubID)
}

func TestPolicyBidSubmission(t *testing.T) {
	rec := &recorder{}
	a := newAPI(t, rec)

	require.NoError(t, a.Policy.PlaceBid(context.Background(), 320))
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/policy/bid", rec.path)

	var bid api.PolicyBidRequest
	require.NoError(t, json.Unmarshal(rec.body, &bid))
	require.Equal(t, 320, bid.BidAmount)
}

func TestDomainErrorCarriesServerDetail(t *testing.T) {
	rec := &recorder{status: http.StatusConflict, payload: `{"error": "draw already performed"}`}
	a := newAPI(t, rec)

	_, err := a.Draw.Draw(context.Background())
	var dErr *client.DomainError
	require.ErrorAs(t, err, &dErr)
	require.Equal(t, http.StatusConflict, dErr.Status)
	require.Equal(t, "draw already performed", dErr.Detail)
}

func TestGeneralListDecodes(t *testing.T) {
	rec := &recorder{payload: `[{"id": 1, "name": "Zhang Fei", "cost": 30}, {"id": 2, "name": "Ma Chao", "cost": 28}]`}
	a := newAPI(t, rec)

	generals, err := a.Assets.Generals(context.Background())
	require.NoError(t, err)
	require.Len(t, generals, 2)
	require.Equal(t, "Ma Chao", generals[1].Name)
	require.Equal(t, "/generals", rec.path)
}
