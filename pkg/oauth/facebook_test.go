package oauth_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fblogin/pkg/oauth"
)

func testConfig(tokenURL string) oauth.FacebookConfig {
	return oauth.FacebookConfig{
		AppID:       "app-id",
		AppSecret:   "app-secret",
		RedirectURL: "http://localhost:8080/api/facebook/oauth/callback",
		TokenURL:    tokenURL,
	}
}

// tokenServer starts a stub token endpoint and counts requests.
func tokenServer(t *testing.T, status int, contentType, body string) (*httptest.Server, *atomic.Int32, chan url.Values) {
	t.Helper()

	var calls atomic.Int32
	forms := make(chan url.Values, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = r.ParseForm()
		forms <- r.PostForm
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls, forms
}

func TestNewFacebookProvider(t *testing.T) {
	t.Parallel()

	valid := testConfig("")

	tests := []struct {
		name    string
		mutate  func(*oauth.FacebookConfig)
		wantErr error
	}{
		{"valid config", func(*oauth.FacebookConfig) {}, nil},
		{"missing app id", func(c *oauth.FacebookConfig) { c.AppID = "" }, oauth.ErrMissingClientID},
		{"missing app secret", func(c *oauth.FacebookConfig) { c.AppSecret = "" }, oauth.ErrMissingClientSecret},
		{"missing redirect", func(c *oauth.FacebookConfig) { c.RedirectURL = "" }, oauth.ErrMissingRedirectURL},
		{"relative dialog url", func(c *oauth.FacebookConfig) { c.DialogURL = "/dialog/oauth" }, oauth.ErrInvalidEndpoint},
		{"bad token scheme", func(c *oauth.FacebookConfig) { c.TokenURL = "ftp://graph.facebook.com/token" }, oauth.ErrInvalidEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)
			p, err := oauth.NewFacebookProvider(cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.Equal(t, oauth.FacebookProviderName, p.Name())
			require.Equal(t, oauth.FacebookTokenURL, p.TokenURL())
		})
	}
}

func TestFacebookProvider_AuthCodeURL(t *testing.T) {
	t.Parallel()

	p, err := oauth.NewFacebookProvider(testConfig(""))
	require.NoError(t, err)

	t.Run("with permissions", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse(p.AuthCodeURL("signed.state", []string{"email", "public_profile"}))
		require.NoError(t, err)
		require.Equal(t, "www.facebook.com", u.Host)
		require.Equal(t, "/v2.12/dialog/oauth", u.Path)

		q := u.Query()
		require.Equal(t, "app-id", q.Get("client_id"))
		require.Equal(t, "http://localhost:8080/api/facebook/oauth/callback", q.Get("redirect_uri"))
		require.Equal(t, "code", q.Get("response_type"))
		require.Equal(t, "signed.state", q.Get("state"))
		require.Equal(t, "email,public_profile", q.Get("scope"))
		require.False(t, q.Has("client_secret"))
	})

	t.Run("without permissions", func(t *testing.T) {
		t.Parallel()

		u, err := url.Parse(p.AuthCodeURL("s", nil))
		require.NoError(t, err)
		require.False(t, u.Query().Has("scope"))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		a := p.AuthCodeURL("s", []string{"email"})
		b := p.AuthCodeURL("s", []string{"email"})
		require.Equal(t, a, b)
	})
}

func TestFacebookProvider_Exchange(t *testing.T) {
	t.Parallel()

	t.Run("string expires_in", func(t *testing.T) {
		t.Parallel()

		srv, calls, forms := tokenServer(t, http.StatusOK, "application/json",
			`{"access_token":"AT1","token_type":"bearer","expires_in":"3600"}`)

		p, err := oauth.NewFacebookProvider(testConfig(srv.URL+"/oauth/access_token"),
			oauth.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		record, err := p.Exchange(context.Background(), "CODE1")
		require.NoError(t, err)
		require.Equal(t, &oauth.AccessTokenRecord{
			AccessToken: "AT1",
			TokenType:   "bearer",
			ExpiresIn:   "3600",
		}, record)
		require.Equal(t, int32(1), calls.Load())

		form := <-forms
		require.Equal(t, "CODE1", form.Get("code"))
		require.Equal(t, "app-id", form.Get("client_id"))
		require.Equal(t, "app-secret", form.Get("client_secret"))
		require.Equal(t, "http://localhost:8080/api/facebook/oauth/callback", form.Get("redirect_uri"))
	})

	t.Run("numeric expires_in", func(t *testing.T) {
		t.Parallel()

		srv, _, _ := tokenServer(t, http.StatusOK, "application/json",
			`{"access_token":"AT2","token_type":"bearer","expires_in":5183944}`)

		p, err := oauth.NewFacebookProvider(testConfig(srv.URL), oauth.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		record, err := p.Exchange(context.Background(), "CODE2")
		require.NoError(t, err)
		require.Equal(t, "5183944", record.ExpiresIn)
	})

	t.Run("form encoded response", func(t *testing.T) {
		t.Parallel()

		srv, _, _ := tokenServer(t, http.StatusOK, "text/plain",
			`access_token=AT3&token_type=bearer&expires_in=3600`)

		p, err := oauth.NewFacebookProvider(testConfig(srv.URL), oauth.WithHTTPClient(srv.Client()))
		require.NoError(t, err)

		record, err := p.Exchange(context.Background(), "CODE3")
		require.NoError(t, err)
		require.Equal(t, "AT3", record.AccessToken)
		require.Equal(t, "3600", record.ExpiresIn)
	})
}

func TestFacebookProvider_ExchangeFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantErrCode string
	}{
		{
			name:        "non-2xx status",
			status:      http.StatusBadRequest,
			body:        `{"error":{"message":"Invalid verification code format.","type":"OAuthException","code":100}}`,
			wantErrCode: "http_400",
		},
		{
			name:        "error payload with 200",
			status:      http.StatusOK,
			body:        `{"error":"invalid_grant","error_description":"code expired"}`,
			wantErrCode: "invalid_grant",
		},
		{
			name:   "missing access_token",
			status: http.StatusOK,
			body:   `{"token_type":"bearer","expires_in":"3600"}`,
		},
		{
			name:   "unparsable json",
			status: http.StatusOK,
			body:   `{"access_token":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls, _ := tokenServer(t, tt.status, "application/json", tt.body)
			p, err := oauth.NewFacebookProvider(testConfig(srv.URL), oauth.WithHTTPClient(srv.Client()))
			require.NoError(t, err)

			record, err := p.Exchange(context.Background(), "CODE1")
			require.ErrorIs(t, err, oauth.ErrExchangeFailed)
			require.Nil(t, record)
			require.Equal(t, int32(1), calls.Load(), "exactly one outbound call, no retry")
			if tt.wantErrCode != "" {
				require.Equal(t, tt.wantErrCode, oauth.ErrorCode(err))
			}
		})
	}
}

func TestFacebookProvider_ExchangeTimeout(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	p, err := oauth.NewFacebookProvider(testConfig(srv.URL),
		oauth.WithHTTPClient(srv.Client()),
		oauth.WithExchangeTimeout(50*time.Millisecond),
	)
	require.NoError(t, err)

	start := time.Now()
	_, err = p.Exchange(context.Background(), "CODE1")
	require.ErrorIs(t, err, oauth.ErrExchangeFailed)
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, int32(1), calls.Load())
}

func TestFacebookProvider_ExchangeTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	tokenURL := srv.URL
	srv.Close()

	p, err := oauth.NewFacebookProvider(testConfig(tokenURL))
	require.NoError(t, err)

	_, err = p.Exchange(context.Background(), "CODE1")
	require.ErrorIs(t, err, oauth.ErrExchangeFailed)
	require.Empty(t, oauth.ErrorCode(err))
}

func TestFacebookProvider_ExchangeMissingCode(t *testing.T) {
	t.Parallel()

	p, err := oauth.NewFacebookProvider(testConfig(""))
	require.NoError(t, err)

	_, err = p.Exchange(context.Background(), "")
	require.ErrorIs(t, err, oauth.ErrExchangeFailed)
	require.ErrorIs(t, err, oauth.ErrMissingCode)
}

func TestAccessTokenRecord_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("token", slog.Any("record", oauth.AccessTokenRecord{
		AccessToken: "EAAGm0PX4ZCpsBAsecret",
		TokenType:   "bearer",
		ExpiresIn:   "3600",
	}))

	out := buf.String()
	require.NotContains(t, out, "EAAGm0PX4ZCpsBAsecret")
	require.Contains(t, out, `"access_token":"EAAG****"`)
	require.Contains(t, out, `"expires_in":"3600"`)
}
