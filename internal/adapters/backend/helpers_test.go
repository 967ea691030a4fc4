package backend_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.trai.ch/stacky/internal/adapters/telemetry"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/stacky/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const validPlan = `{"config":{"framework":"react"},"commands":[` +
	`{"name":"Create app","command":"npx create-react-app my-app"},` +
	`{"name":"Install","command":"npm install"}]}`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// reply is one scripted response of a fake server. A zero status means 200.
type reply struct {
	status  int
	content string
}

// fakeOllama serves /api/chat from a script; the last reply repeats.
type fakeOllama struct {
	mu       sync.Mutex
	replies  []reply
	requests []chatRequest
	models   []string
	version  string
}

func newFakeOllama(t *testing.T, replies ...reply) (*fakeOllama, *httptest.Server) {
	t.Helper()
	f := &fakeOllama{replies: replies, models: []string{"codellama:latest"}, version: "0.5.7"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", f.chat)
	mux.HandleFunc("GET /api/ps", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		type model struct {
			Name string `json:"name"`
		}
		resp := struct {
			Models []model `json:"models"`
		}{Models: []model{}}
		for _, m := range f.models {
			resp.Models = append(resp.Models, model{Name: m})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"version": f.version})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeOllama) chat(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.requests = append(f.requests, req)

	rp := f.replies[min(len(f.requests), len(f.replies))-1]
	if rp.status != 0 && rp.status != http.StatusOK {
		http.Error(w, rp.content, rp.status)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"model":   req.Model,
		"message": chatMessage{Role: "assistant", Content: rp.content},
		"done":    true,
	})
}

func (f *fakeOllama) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeOllama) lastRequest() chatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func ollamaSettings(host string) domain.Settings {
	s := domain.DefaultSettings()
	s.UseOllama = true
	s.Ollama.Host = host
	s.Retry.BaseDelay = time.Millisecond
	return s
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func missCache(ctrl *gomock.Controller) *mocks.MockPlanCache {
	c := mocks.NewMockPlanCache(ctrl)
	c.EXPECT().Get(gomock.Any()).Return(nil, false).AnyTimes()
	c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return c
}

var testTracer = telemetry.NewOTelTracer("test")
