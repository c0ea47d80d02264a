package client_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sanleague/go-league-client/client"
)

// mutableTokens is a TokenSource whose token can change between requests,
// like the credential store does across login/logout.
type mutableTokens struct {
	mu    sync.Mutex
	token string
}

func (m *mutableTokens) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *mutableTokens) set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

type fixture struct {
	server  *httptest.Server
	tokens  *mutableTokens
	client  *client.Client
	torn    atomic.Int64
	lastReq struct {
		mu     sync.Mutex
		header http.Header
	}
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	f := &fixture{tokens: &mutableTokens{}}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lastReq.mu.Lock()
		f.lastReq.header = r.Header.Clone()
		f.lastReq.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(f.server.Close)

	c, err := client.New(client.Options{
		BaseURL: f.server.URL,
		Tokens:  f.tokens,
		OnUnauthorized: func() {
			f.torn.Add(1)
		},
	})
	require.NoError(t, err)
	f.client = c
	return f
}

func (f *fixture) header(key string) string {
	f.lastReq.mu.Lock()
	defer f.lastReq.mu.Unlock()
	return f.lastReq.header.Get(key)
}

func okJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestOutboundStageInjectsHeldToken(t *testing.T) {
	f := newFixture(t, okJSON(`{}`))
	f.tokens.set("token-1")

	require.NoError(t, f.client.Get(context.Background(), "/me", nil, nil))
	require.Equal(t, "Bearer token-1", f.header("Authorization"))
}

func TestOutboundStageAnonymousWithoutToken(t *testing.T) {
	f := newFixture(t, okJSON(`{}`))

	require.NoError(t, f.client.Get(context.Background(), "/phase", nil, nil))
	require.Empty(t, f.header("Authorization"))
}

func TestOutboundStageReadsTokenAtDispatchTime(t *testing.T) {
	f := newFixture(t, okJSON(`{}`))
	ctx := context.Background()

	f.tokens.set("before")
	require.NoError(t, f.client.Get(ctx, "/a", nil, nil))
	require.Equal(t, "Bearer before", f.header("Authorization"))

	f.tokens.set("")
	require.NoError(t, f.client.Get(ctx, "/b", nil, nil))
	require.Empty(t, f.header("Authorization"))
}

func TestRequestIDAttached(t *testing.T) {
	f := newFixture(t, okJSON(`{}`))

	require.NoError(t, f.client.Get(context.Background(), "/phase", nil, nil))
	require.NotEmpty(t, f.header("X-Request-ID"))
}

func TestUnauthorizedTearsDownOncePerResponse(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "token expired"}`))
	})
	f.tokens.set("stale")

	err := f.client.Get(context.Background(), "/me", nil, nil)

	var authErr *client.AuthorizationError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "token expired", authErr.Detail)
	require.Equal(t, int64(1), f.torn.Load())
}

func TestUnauthorizedBurstTearsDownPerResponseAndAllCallersFail(t *testing.T) {
	const concurrent = 16

	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "revoked"}`))
	})
	f.tokens.set("revoked")

	errs := make(chan error, concurrent)
	var wg sync.WaitGroup
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.client.Get(context.Background(), "/me", nil, nil)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		var authErr *client.AuthorizationError
		require.ErrorAs(t, err, &authErr)
	}
	// One teardown per distinct 401 response; idempotency of the
	// teardown itself is the session store's contract.
	require.Equal(t, int64(concurrent), f.torn.Load())
}

func TestForbiddenIsDomainErrorNotAuthorization(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "admin access required"}`))
	})
	f.tokens.set("player-token")

	err := f.client.Post(context.Background(), "/admin/reset", nil, nil)

	var domainErr *client.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, http.StatusForbidden, domainErr.Status)
	require.Equal(t, "admin access required", domainErr.Detail)
	require.Zero(t, f.torn.Load())
}

func TestDomainErrorKeepsRawDetailWhenBodyNotJSON(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	err := f.client.Get(context.Background(), "/phase", nil, nil)

	var domainErr *client.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "upstream down", domainErr.Detail)
}

func TestTimeoutSurfacesAsTransportError(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	var torn atomic.Int64
	c, err := client.New(client.Options{
		BaseURL:        server.URL,
		HTTPClient:     &http.Client{Timeout: 20 * time.Millisecond},
		OnUnauthorized: func() { torn.Add(1) },
	})
	require.NoError(t, err)

	err = c.Get(context.Background(), "/slow", nil, nil)

	var transportErr *client.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Zero(t, torn.Load(), "a timeout must not tear the session down")
}

func TestSuccessDecodesPayload(t *testing.T) {
	f := newFixture(t, okJSON(`{"current_phase": "draft", "round_number": 2}`))

	var out struct {
		CurrentPhase string `json:"current_phase"`
		RoundNumber  int    `json:"round_number"`
	}
	require.NoError(t, f.client.Get(context.Background(), "/phase", nil, &out))
	require.Equal(t, "draft", out.CurrentPhase)
	require.Equal(t, 2, out.RoundNumber)
}

func TestQueryParametersEncoded(t *testing.T) {
	var gotQuery string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	query := map[string][]string{"type": {"initial_guarantee"}}
	require.NoError(t, f.client.Get(context.Background(), "/draw/pool", query, nil))
	require.Equal(t, "type=initial_guarantee", gotQuery)
}

func TestPostMultipartSendsFormFile(t *testing.T) {
	var gotFile string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	})
	f.tokens.set("admin-token")

	err := f.client.PostMultipart(context.Background(), "/admin/import", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", "season.xlsx")
		if err != nil {
			return err
		}
		_, err = part.Write([]byte("cell data"))
		return err
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "season.xlsx", gotFile)
	require.Equal(t, "Bearer admin-token", f.header("Authorization"))
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	_, err := client.New(client.Options{})
	require.Error(t, err)
}
