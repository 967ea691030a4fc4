package backend_test

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stacky/internal/adapters/backend"
	"go.trai.ch/stacky/internal/adapters/cache"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var reactPrefs = domain.Preferences{
	"metaFramework":  "react",
	"language":       "typescript",
	"packageManager": "npm",
}

func TestProvider_CacheHitSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{content: validPlan})

	cached := &domain.Plan{Commands: []domain.Command{{Name: "Init", Command: "git init"}}}
	planCache := mocks.NewMockPlanCache(ctrl)
	planCache.EXPECT().Get(reactPrefs).Return(cached, true)

	p, err := backend.NewProvider(ollamaSettings(srv.URL), planCache, nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	got, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)
	assert.Same(t, cached, got)
	assert.Zero(t, fake.calls())
}

func TestProvider_CacheIdempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{content: validPlan})
	store := cache.NewStore(filepath.Join(t.TempDir(), "ai-responses.json"))

	p, err := backend.NewProvider(ollamaSettings(srv.URL), store, nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	first, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)
	second, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls())
	require.Len(t, second.Commands, 2)
	assert.Equal(t, "npx create-react-app my-app", second.Commands[0].Command)
}

func TestProvider_FencedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, srv := newFakeOllama(t, reply{content: "Here is your plan:\n```json\n" + validPlan + "\n```\nEnjoy!"})

	p, err := backend.NewProvider(ollamaSettings(srv.URL), missCache(ctrl), nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	plan, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)
	assert.Len(t, plan.Commands, 2)
	assert.Equal(t, "react", plan.Config["framework"])
}

func TestProvider_RetryFailFailSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t,
		reply{status: http.StatusInternalServerError, content: "model is loading"},
		reply{content: "this is not json"},
		reply{content: validPlan},
	)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	var warnings []string
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warnings = append(warnings, msg) }).Times(2)

	p, err := backend.NewProvider(ollamaSettings(srv.URL), missCache(ctrl), nil, log, testTracer)
	require.NoError(t, err)

	plan, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)
	assert.Len(t, plan.Commands, 2)
	assert.Equal(t, 3, fake.calls())

	require.Len(t, warnings, 2)
	assert.True(t, strings.HasPrefix(warnings[0], "attempt 1/3 failed: "), warnings[0])
	assert.True(t, strings.HasSuffix(warnings[0], "retrying in 1ms"), warnings[0])
	assert.True(t, strings.HasPrefix(warnings[1], "attempt 2/3 failed: "), warnings[1])
	assert.True(t, strings.HasSuffix(warnings[1], "retrying in 2ms"), warnings[1])
}

func TestProvider_RetryAlwaysFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{status: http.StatusBadGateway, content: "upstream down"})

	planCache := mocks.NewMockPlanCache(ctrl)
	planCache.EXPECT().Get(gomock.Any()).Return(nil, false)

	p, err := backend.NewProvider(ollamaSettings(srv.URL), planCache, nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	plan, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domain.ErrPlanFetchFailed)
	assert.ErrorIs(t, err, domain.ErrBackendRequestFailed)
	assert.Contains(t, err.Error(), "all 3 attempts failed")
	assert.Contains(t, err.Error(), "unexpected status 502")
	assert.Equal(t, 3, fake.calls())
}

func TestProvider_ShapeRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{
		content: `{"config":{},"commands":[{"name":"Broken","command":"echo [object Object] > .prettierrc"}]}`,
	})

	p, err := backend.NewProvider(ollamaSettings(srv.URL), missCache(ctrl), nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	_, err = p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.ErrorIs(t, err, domain.ErrPlanFetchFailed)
	assert.ErrorIs(t, err, domain.ErrPlanShapeInvalid)
	assert.Equal(t, 3, fake.calls())
}

func TestProvider_ContentRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, srv := newFakeOllama(t, reply{content: `{"config":{},"commands":[` +
		`{"name":"Prettier","content":"{\"semi\": false}","file":".prettierrc"},` +
		`{"name":"Ignore","command":"echo 'node_modules' > .gitignore"},` +
		`{"name":"Readme","command":"echo 'hello' > README.md"}]}`})

	p, err := backend.NewProvider(ollamaSettings(srv.URL), missCache(ctrl), nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	plan, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)

	require.Len(t, plan.Commands, 3)
	assert.Equal(t, domain.Command{Name: "Prettier", Command: "cat << 'EOF' > .prettierrc\n{\"semi\": false}\nEOF"}, plan.Commands[0])
	assert.Equal(t, "cat << 'EOF' > .gitignore\nnode_modules\nEOF", plan.Commands[1].Command)
	assert.Equal(t, "echo 'hello' > README.md", plan.Commands[2].Command)
}

func TestProvider_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, srv := newFakeOllama(t, reply{content: validPlan})

	planCache := mocks.NewMockPlanCache(ctrl)
	planCache.EXPECT().Get(gomock.Any()).Return(nil, false)
	planCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(domain.ErrCacheWriteFailed)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn("could not cache plan: " + domain.ErrCacheWriteFailed.Error())

	p, err := backend.NewProvider(ollamaSettings(srv.URL), planCache, nil, log, testTracer)
	require.NoError(t, err)

	plan, err := p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)
	assert.Len(t, plan.Commands, 2)
}

func TestProvider_ContextCancelStopsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{status: http.StatusServiceUnavailable, content: "busy"})

	settings := ollamaSettings(srv.URL)
	settings.Retry.BaseDelay = time.Hour

	p, err := backend.NewProvider(settings, missCache(ctrl), nil, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	go func() {
		for fake.calls() == 0 {
			time.Sleep(time.Millisecond)
		}
		cancel()
	}()

	_, err = p.GetScaffoldingPlan(ctx, reactPrefs)
	require.ErrorIs(t, err, domain.ErrPlanFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, fake.calls())
}

func TestProvider_RequestEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{content: validPlan})

	lookup := mocks.NewMockDocsLookup(ctrl)
	lookup.EXPECT().Lookup(gomock.Any(), "react").Return("# React\nUse Vite.", nil)

	prefs := domain.Preferences{
		"metaFramework": "react",
		"docker":        true,
		"dockerConfig":  map[string]any{"baseImage": "node:20-alpine", "port": "8080"},
	}

	p, err := backend.NewProvider(ollamaSettings(srv.URL), missCache(ctrl), lookup, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	_, err = p.GetScaffoldingPlan(t.Context(), prefs)
	require.NoError(t, err)

	req := fake.lastRequest()
	assert.Equal(t, "codellama", req.Model)
	assert.False(t, req.Stream)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Return ONLY a valid JSON object")
	assert.Equal(t, "user", req.Messages[1].Role)

	user := req.Messages[1].Content
	assert.True(t, strings.HasPrefix(user, "Generate a configuration JSON with 'config' and 'commands' arrays for: {"), user)
	assert.Contains(t, user, "# React\nUse Vite.")
	assert.Contains(t, user, "node:20-alpine")
	assert.Contains(t, user, "port 8080")
}

func TestProvider_DocsFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	fake, srv := newFakeOllama(t, reply{content: validPlan})

	lookup := mocks.NewMockDocsLookup(ctrl)
	lookup.EXPECT().Lookup(gomock.Any(), "vue").Return("", errors.New("no docs"))

	settings := ollamaSettings(srv.URL)
	settings.Docs.Framework = "vue"

	p, err := backend.NewProvider(settings, missCache(ctrl), lookup, quietLogger(ctrl), testTracer)
	require.NoError(t, err)

	_, err = p.GetScaffoldingPlan(t.Context(), reactPrefs)
	require.NoError(t, err)
	assert.NotContains(t, fake.lastRequest().Messages[1].Content, "framework reference")
}
