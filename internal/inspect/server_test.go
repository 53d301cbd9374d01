package inspect

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/charm/pkg/project"
	"github.com/vango-dev/charm/pkg/scope"
)

func newTestServer(t *testing.T) (*httptest.Server, *scope.Scope) {
	t.Helper()

	reg := scope.NewRegistry()
	p := project.New()
	require.NoError(t, p.Update(project.Configuration{Icons: map[string]string{"logo": "<svg>L</svg>"}}))

	promReg := prometheus.NewRegistry()
	metrics := scope.NewMetrics(scope.WithRegisterer(promReg))

	s, err := scope.CreateScope(
		scope.WithRegistry(reg),
		scope.WithProject(p),
		scope.WithMetrics(metrics),
		scope.WithBasePath("/static"),
	)
	require.NoError(t, err)
	s.RegisterComponent(scope.NewSpec("button"), scope.NewSpec("dialog"))
	require.NoError(t, s.UpdateOptions(scope.WithSuffix("app1")))

	srv := httptest.NewServer(New(reg, p, WithGatherer(promReg)))
	t.Cleanup(srv.Close)
	return srv, s
}

func get(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestListTags(t *testing.T) {
	srv, _ := newTestServer(t)

	var infos []TagInfo
	resp := get(t, srv.URL+"/tags", &infos)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tags := make([]string, 0, len(infos))
	for _, info := range infos {
		tags = append(tags, info.Tag)
	}
	assert.Equal(t, []string{"ch-button", "ch-button_app1", "ch-dialog", "ch-dialog_app1"}, tags)
	assert.Equal(t, "button", infos[1].BaseName)
	assert.NotEmpty(t, infos[1].DefinitionID)
}

func TestListTagsMatch(t *testing.T) {
	srv, _ := newTestServer(t)

	var infos []TagInfo
	get(t, srv.URL+"/tags?match=*_app1", &infos)
	require.Len(t, infos, 2)
	assert.Equal(t, "ch-button_app1", infos[0].Tag)

	resp := get(t, srv.URL+"/tags?match=[", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetTag(t *testing.T) {
	srv, _ := newTestServer(t)

	var info TagInfo
	resp := get(t, srv.URL+"/tags/ch-dialog_app1", &info)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dialog", info.BaseName)
	assert.Equal(t, "app1", info.Suffix)
	assert.Equal(t, "ch", info.Prefix)
	assert.Equal(t, "/static", info.BasePath)

	resp = get(t, srv.URL+"/tags/ch-nothing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetTagAfterSuffixChange(t *testing.T) {
	srv, s := newTestServer(t)
	require.NoError(t, s.UpdateOptions(scope.WithSuffix("app2"), scope.WithBasePath("/v2")))

	tests := []struct {
		tag, suffix, basePath string
	}{
		{"ch-button", "", "/static"},
		{"ch-button_app1", "app1", "/static"},
		{"ch-button_app2", "app2", "/v2"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			var info TagInfo
			resp := get(t, srv.URL+"/tags/"+tt.tag, &info)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.tag, info.Tag)
			assert.Equal(t, "button", info.BaseName)
			assert.Equal(t, "ch", info.Prefix)
			assert.Equal(t, tt.suffix, info.Suffix)
			assert.Equal(t, tt.basePath, info.BasePath)
		})
	}
}

func TestSuffixesAndIcons(t *testing.T) {
	srv, _ := newTestServer(t)

	var suffixes []string
	get(t, srv.URL+"/suffixes", &suffixes)
	assert.Equal(t, []string{"app1"}, suffixes)

	var names []string
	get(t, srv.URL+"/icons", &names)
	assert.Contains(t, names, "logo")
	assert.Contains(t, names, "close")

	resp := get(t, srv.URL+"/icons/logo", nil)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "<svg>L</svg>", string(body))

	resp = get(t, srv.URL+"/icons/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := get(t, srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = get(t, srv.URL+"/metrics", nil)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `charm_registrations_total{result="defined"} 4`), string(body))
	assert.Contains(t, string(body), "charm_suffix_changes_total 1")
}
