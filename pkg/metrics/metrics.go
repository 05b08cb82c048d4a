// Package metrics 后台服务的Prometheus指标
//
// 指标在包初始化时创建，InitMetrics把它们注册到默认Registry（只注册一次），
// /metrics端点由promhttp.Handler()暴露。
//
// 命名约定：
//   - HTTP层：http_*（method/path/status标签，path使用路由模板避免基数爆炸）
//   - 交易：orders_*、books_sold_total、revenue_total
//   - 基础设施：cache_*、messages_*、circuit_breaker_*
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var registerOnce sync.Once

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "被限流拒绝的请求数",
		},
	)

	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "交易创建成功总数",
		},
	)

	// reason: validation | not_found | insufficient_stock | internal
	OrdersFailedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "交易创建失败总数",
		},
		[]string{"reason"},
	)

	OrderCreationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_creation_duration_seconds",
			Help:    "交易创建耗时（秒）",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	BooksSoldTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "books_sold_total",
			Help: "售出图书总册数",
		},
	)

	RevenueTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "revenue_total",
			Help: "销售总额（最小货币单位）",
		},
	)

	// result: hit | miss | error
	CacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "缓存访问次数",
		},
		[]string{"cache", "result"},
	)

	// result: success | failure | rejected
	MessagesPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"routing_key", "result"},
	)

	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)
)

// InitMetrics 注册所有指标到默认Registry，重复调用无副作用
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			HTTPRequestsInProgress,
			RateLimitedTotal,
			OrdersCreatedTotal,
			OrdersFailedTotal,
			OrderCreationDuration,
			BooksSoldTotal,
			RevenueTotal,
			CacheRequestsTotal,
			MessagesPublishedTotal,
			CircuitBreakerState,
		)
	})
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RecordOrderCreated 记录一笔成功的交易
func RecordOrderCreated(units, revenue int64, elapsed time.Duration) {
	OrdersCreatedTotal.Inc()
	BooksSoldTotal.Add(float64(units))
	RevenueTotal.Add(float64(revenue))
	OrderCreationDuration.Observe(elapsed.Seconds())
}

// RecordOrderFailed 记录一笔失败的交易
func RecordOrderFailed(reason string, elapsed time.Duration) {
	OrdersFailedTotal.WithLabelValues(reason).Inc()
	OrderCreationDuration.Observe(elapsed.Seconds())
}

// RecordCacheResult 记录缓存命中情况
func RecordCacheResult(cache, result string) {
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// RecordPublish 记录消息发布结果
func RecordPublish(routingKey, result string) {
	MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// SetCircuitBreakerState 更新熔断器状态
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
