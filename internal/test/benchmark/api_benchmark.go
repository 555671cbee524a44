//go:build benchmark

package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Load 对运行中的 AmdaOps 服务发起并发请求
type Load struct {
	BaseURL     string
	Concurrency int
	Requests    int
	client      *http.Client
}

// Result 一轮压测的统计结果
type Result struct {
	Method    string
	Target    string
	Elapsed   time.Duration
	Status    map[int]int
	Errors    []string
	latencies []time.Duration
}

// NewLoad 创建压测实例
func NewLoad(baseURL string, concurrency, requests int) *Load {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Load{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Concurrency: concurrency,
		Requests:    requests,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Get 压测 GET 接口
func (l *Load) Get(path string) *Result {
	return l.run(http.MethodGet, path, nil)
}

// Post 压测 POST 接口，payload 以 JSON 发送
func (l *Load) Post(path string, payload interface{}) *Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Result{Method: http.MethodPost, Target: path, Errors: []string{err.Error()}}
	}
	return l.run(http.MethodPost, path, body)
}

func (l *Load) run(method, path string, body []byte) *Result {
	res := &Result{Method: method, Target: l.BaseURL + path, Status: make(map[int]int)}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(l.Concurrency)

	start := time.Now()
	for i := 0; i < l.Requests; i++ {
		g.Go(func() error {
			status, took, err := l.once(method, res.Target, body)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Errors = append(res.Errors, err.Error())
				return nil
			}
			res.Status[status]++
			res.latencies = append(res.latencies, took)
			return nil
		})
	}
	_ = g.Wait()
	res.Elapsed = time.Since(start)

	sort.Slice(res.latencies, func(i, j int) bool { return res.latencies[i] < res.latencies[j] })
	return res
}

func (l *Load) once(method, url string, body []byte) (int, time.Duration, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode, time.Since(start), nil
}

// Failures 统计传输错误与非 2xx 响应
func (r *Result) Failures() int {
	n := len(r.Errors)
	for status, count := range r.Status {
		if status < 200 || status >= 300 {
			n += count
		}
	}
	return n
}

// Percentile 返回成功完成请求的延迟分位数，p 取值 0..1
func (r *Result) Percentile(p float64) time.Duration {
	if len(r.latencies) == 0 {
		return 0
	}
	idx := int(p * float64(len(r.latencies)-1))
	return r.latencies[idx]
}

// Summary 单行输出压测结果
func (r *Result) Summary() string {
	rps := 0.0
	if r.Elapsed > 0 {
		rps = float64(len(r.latencies)+len(r.Errors)) / r.Elapsed.Seconds()
	}
	s := fmt.Sprintf("%s %s: %.1f req/s, p50=%s p95=%s max=%s, status=%v, failures=%d",
		r.Method, r.Target, rps, r.Percentile(0.5), r.Percentile(0.95), r.Percentile(1), r.Status, r.Failures())
	if len(r.Errors) > 0 {
		s += ", first error: " + r.Errors[0]
	}
	return s
}
