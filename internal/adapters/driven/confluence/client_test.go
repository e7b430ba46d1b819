package confluence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Whil-/confluence-reader/internal/core/domain"
)

// fakeCredentialStore implements driven.CredentialStore for testing.
type fakeCredentialStore struct {
	creds map[string]domain.Credential
}

func (f *fakeCredentialStore) Lookup(host string) (domain.Credential, error) {
	cred, ok := f.creds[host]
	if !ok {
		return domain.Credential{}, domain.ErrNoCredentials
	}
	return cred, nil
}

func (f *fakeCredentialStore) Store(host string, cred domain.Credential) error {
	if f.creds == nil {
		f.creds = make(map[string]domain.Credential)
	}
	f.creds[host] = cred
	return nil
}

func testStore() *fakeCredentialStore {
	return &fakeCredentialStore{creds: map[string]domain.Credential{
		"example.atlassian.net": {Username: "user@example.com", Secret: "api-token"},
	}}
}

// testClient points a client for example.atlassian.net at a local test server.
func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("example.atlassian.net", testStore(), server.Client())
	require.NoError(t, err)
	client.baseURL = server.URL
	return client, server
}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		want   string
	}{
		{
			name: "values percent-encoded, keys in input order",
			params: []Param{
				{Key: "cql", Value: `text ~ "foo bar"`},
				{Key: "limit", Value: "100"},
			},
			want: `?cql=text%20~%20%22foo%20bar%22&limit=100`,
		},
		{
			name:   "no params yields empty suffix",
			params: nil,
			want:   "",
		},
		{
			name:   "unreserved characters pass through",
			params: []Param{{Key: "q", Value: "a-b.c_d~e"}},
			want:   "?q=a-b.c_d~e",
		},
		{
			name:   "reserved characters are escaped",
			params: []Param{{Key: "q", Value: "a&b=c"}},
			want:   "?q=a%26b%3Dc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.params))
		})
	}
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("", testStore(), nil)
	assert.ErrorIs(t, err, domain.ErrNoHost)

	client, err := NewClient("example.atlassian.net", testStore(), nil)
	require.NoError(t, err)
	assert.Equal(t, "example.atlassian.net", client.Host())
}

func TestClient_Search(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{
			"results": [
				{
					"title": "Deploy @@@hl@@@runbook@@@endhl@@@",
					"content": {"id": "111"},
					"resultGlobalContainer": {"title": "Operations"},
					"friendlyLastModified": "Aug 12, 2026"
				},
				{
					"title": "Second page",
					"content": {"id": "222"},
					"resultGlobalContainer": {"title": "Docs"},
					"friendlyLastModified": "Jan 03, 2026"
				}
			]
		}`))
	}))

	results, err := client.Search(context.Background(), `text ~ "foo bar"`, 100)
	require.NoError(t, err)

	assert.Equal(t, "/wiki/rest/api/search", gotPath)
	assert.Equal(t, `cql=text%20~%20%22foo%20bar%22&limit=100`, gotQuery)
	assert.NotEmpty(t, gotAuth)
	assert.Contains(t, gotAuth, "Basic ")

	require.Len(t, results, 2)
	assert.Equal(t, domain.SearchResult{
		Title:        "Deploy runbook",
		SpaceTitle:   "Operations",
		LastModified: "Aug 12, 2026",
		PageID:       "111",
	}, results[0])
}

func TestClient_GetPage(t *testing.T) {
	var gotPath, gotQuery string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"id": "123456",
			"title": "Deploy runbook",
			"body": {"export_view": {"value": "<p>hello</p>"}},
			"_links": {"webui": "/spaces/DOC/pages/123456/Deploy+runbook"}
		}`))
	}))

	page, err := client.GetPage(context.Background(), "123456")
	require.NoError(t, err)

	assert.Equal(t, "/wiki/api/v2/pages/123456", gotPath)
	assert.Equal(t, "body-format=export_view", gotQuery)
	assert.Equal(t, &domain.Page{
		ID:       "123456",
		Title:    "Deploy runbook",
		HTMLBody: "<p>hello</p>",
		WebLink:  "/spaces/DOC/pages/123456/Deploy+runbook",
	}, page)
}

func TestClient_NonOKStatus(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))

	_, err := client.Search(context.Background(), "text", 10)
	apiErr, ok := domain.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "/wiki/rest/api/search", apiErr.Path)

	_, err = client.GetPage(context.Background(), "1")
	apiErr, ok = domain.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestClient_MissingCredential(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("other.atlassian.net", testStore(), server.Client())
	require.NoError(t, err)
	client.baseURL = server.URL

	_, err = client.Search(context.Background(), "text", 10)
	assert.ErrorIs(t, err, domain.ErrNoCredentials)
	assert.False(t, requested, "no request should be issued without a credential")
}

func TestClient_FetchImage(t *testing.T) {
	t.Run("relative source goes through the authenticated path", func(t *testing.T) {
		var gotPath, gotAuth string
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte("png-bytes"))
		}))

		data, err := client.FetchImage(context.Background(), "/wiki/download/attachments/1/diagram.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
		assert.Equal(t, "/wiki/download/attachments/1/diagram.png", gotPath)
		assert.NotEmpty(t, gotAuth)
	})

	t.Run("foreign host is fetched without credentials", func(t *testing.T) {
		var gotAuth string
		foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte("other-bytes"))
		}))
		t.Cleanup(foreign.Close)

		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		data, err := client.FetchImage(context.Background(), foreign.URL+"/logo.png")
		require.NoError(t, err)
		assert.Equal(t, []byte("other-bytes"), data)
		assert.Empty(t, gotAuth, "credential must not leave the configured host")
	})

	t.Run("empty source is invalid", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		_, err := client.FetchImage(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
