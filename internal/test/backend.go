package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Backend 模拟后端 REST API，记录每个接口被调用的次数
type Backend struct {
	*httptest.Server
	mux *http.ServeMux

	mu    sync.Mutex
	calls map[string]int
}

func NewBackend() *Backend {
	b := &Backend{
		mux:   http.NewServeMux(),
		calls: make(map[string]int),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	b.mu.Lock()
	b.calls[key]++
	mux := b.mux
	b.mu.Unlock()
	mux.ServeHTTP(w, r)
}

// Handle pattern 使用 http.ServeMux 的写法，例如 "POST /api/jobs/job/{id}/approve/"
func (b *Backend) Handle(pattern string, hdl http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mux.HandleFunc(pattern, hdl)
}

// Calls 某个接口被调用的次数
func (b *Backend) Calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, cnt := range b.calls {
		total += cnt
	}
	return total
}

func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = make(map[string]int)
	b.mux = http.NewServeMux()
}

// WriteData 成功的响应
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
		"error":   nil,
	})
}

// WriteError 失败的响应
func WriteError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"data":    nil,
		"error": map[string]any{
			"message": msg,
			"code":    code,
		},
	})
}

// WritePage 分页响应
func WritePage[T any](w http.ResponseWriter, count int, results []T) {
	if results == nil {
		results = []T{}
	}
	WriteData(w, http.StatusOK, map[string]any{
		"count":    count,
		"next":     nil,
		"previous": nil,
		"results":  results,
	})
}

func writeJSON(w http.ResponseWriter, status int, val any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(val)
}

// DecodeBody 解析请求体
func DecodeBody[T any](r *http.Request) T {
	var t T
	_ = json.NewDecoder(r.Body).Decode(&t)
	return t
}
