package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计每个页面接口的响应时间和次数
type MetricsBuilder struct {
	Namespace string
	Subsystem string

	once       sync.Once
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	inflight   prometheus.Gauge
}

func NewMetricsBuilder(namespace, subsystem string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace: namespace,
		Subsystem: subsystem,
	}
}

func (a *MetricsBuilder) init() {
	labels := []string{"method", "pattern", "status_code"}
	a.summaryVec = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: a.Namespace,
		Subsystem: a.Subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "页面接口响应时间",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	a.counterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: a.Namespace,
		Subsystem: a.Subsystem,
		Name:      "http_requests_total",
		Help:      "页面接口请求次数",
	}, labels)
	a.inflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: a.Namespace,
		Subsystem: a.Subsystem,
		Name:      "http_requests_inflight",
		Help:      "正在处理的请求数",
	})
	prometheus.MustRegister(a.summaryVec, a.counterVec, a.inflight)
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	a.once.Do(a.init)
	return func(ctx *gin.Context) {
		start := time.Now()
		a.inflight.Inc()
		defer a.inflight.Dec()

		ctx.Next()

		// 没有匹配到路由的统一记为 unknown，避免标签爆炸
		pattern := ctx.FullPath()
		if pattern == "" {
			pattern = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(ctx.Request.Method, pattern, status).
			Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(ctx.Request.Method, pattern, status).Inc()
	}
}
