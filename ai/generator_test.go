package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerator_Fortune(t *testing.T) {
	req := require.New(t)

	var gotPath, gotAuth string
	var gotBody chatRequest
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "오늘은 좋은 일이 생길 거예요."}},
			},
		})
	}))
	defer stub.Close()

	generator := NewOpenAIGenerator(stub.URL, "sk-test", "gpt-test", 5*time.Second, slog.Default())

	answer, err := generator.Fortune(context.Background(), "u1", "오늘 운세 어때?")
	req.NoError(err)
	req.Equal("오늘은 좋은 일이 생길 거예요.", answer)
	req.Equal("/chat/completions", gotPath)
	req.Equal("Bearer sk-test", gotAuth)
	req.Equal("gpt-test", gotBody.Model)
	req.Len(gotBody.Messages, 2)
	req.Equal("user", gotBody.Messages[1].Role)
}

func TestOpenAIGenerator_Fortune_Upstream_Error(t *testing.T) {
	req := require.New(t)

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer stub.Close()

	generator := NewOpenAIGenerator(stub.URL, "sk-test", "gpt-test", 5*time.Second, slog.Default())

	_, err := generator.Fortune(context.Background(), "u1", "오늘 운세 어때?")
	req.Error(err)
	req.Contains(err.Error(), "503")
}

func TestOpenAIGenerator_Fortune_Empty_Choices(t *testing.T) {
	req := require.New(t)

	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer stub.Close()

	generator := NewOpenAIGenerator(stub.URL, "sk-test", "gpt-test", 5*time.Second, slog.Default())

	_, err := generator.Fortune(context.Background(), "u1", "오늘 운세 어때?")
	req.Error(err)
}
