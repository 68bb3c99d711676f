package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 5000
	return cfg
}

func candidateResponse(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func TestGenerateText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "write a report", req.Contents[0].Parts[0].Text)
		assert.InDelta(t, 0.7, req.GenerationConfig.Temperature, 1e-9)

		fmt.Fprint(w, candidateResponse("Today the team advanced the program."))
	}))
	defer server.Close()

	gw := NewClient(testConfig(server.URL), nil)
	got, err := gw.GenerateText(context.Background(), "write a report")
	require.NoError(t, err)
	assert.Equal(t, "Today the team advanced the program.", got)
}

func TestGenerateText_EmptyResultReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse("  \n "))
	}))
	defer server.Close()

	gw := NewClient(testConfig(server.URL), nil)
	got, err := gw.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, EmptyResultSentinel, got)
}

func TestGenerateText_NoCandidatesReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	gw := NewClient(testConfig(server.URL), nil)
	got, err := gw.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, EmptyResultSentinel, got)
}

func TestGenerateText_MissingKeyFailsBeforeTransport(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, candidateResponse("never"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.APIKey = ""
	gw := NewClient(cfg, nil)

	_, err := gw.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.Equal(t, int32(0), calls.Load())
}

func TestGenerateText_ProviderErrorMessagePreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid"}}`)
	}))
	defer server.Close()

	gw := NewClient(testConfig(server.URL), nil)
	_, err := gw.GenerateText(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateText_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewClient(testConfig(server.URL), nil)
	_, err := gw.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestGenerateFromMedia_InlineDataPart(t *testing.T) {
	audio := []byte{0x52, 0x49, 0x46, 0x46}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, "transcribe", req.Contents[0].Parts[0].Text)

		inline := req.Contents[0].Parts[1].InlineData
		require.NotNil(t, inline)
		assert.Equal(t, "audio/wav", inline.MIMEType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(audio), inline.Data)

		fmt.Fprint(w, candidateResponse("minutes"))
	}))
	defer server.Close()

	gw := NewClient(testConfig(server.URL), nil)
	got, err := gw.GenerateFromMedia(context.Background(), "transcribe", audio, "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "minutes", got)
}

func TestObserver_ReceivesCallEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, candidateResponse("ok"))
	}))
	defer server.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	gw := NewClient(testConfig(server.URL), obs)
	_, err := gw.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)

	cfg := testConfig(server.URL)
	cfg.APIKey = ""
	gw = NewClient(cfg, obs)
	_, _ = gw.GenerateText(context.Background(), "prompt")

	require.Len(t, events, 2)
	assert.Equal(t, "text", events[0].Op)
	assert.True(t, events[0].Success)
	assert.False(t, events[1].Success)
	assert.Equal(t, "MISSING_KEY", events[1].ErrorCode)
}

func TestLogObserver_Format(t *testing.T) {
	var b strings.Builder
	NewLogObserver(&b).OnCallComplete(CallEvent{Op: "text", Model: "gemini-2.5-flash", LatencyMs: 12, Success: true})
	out := b.String()
	assert.Contains(t, out, "gemini_call op=text")
	assert.Contains(t, out, "status=ok")
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
