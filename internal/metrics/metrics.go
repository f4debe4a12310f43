// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// activity.Recorderとmiddleware.HTTPMetricsRecorderを実装する。
type Collector struct {
	signupSuccess   *prometheus.CounterVec
	signupFail      *prometheus.CounterVec
	removalSuccess  *prometheus.CounterVec
	removalFail     *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signupSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_signup_success_total",
			Help: "活動登録成功の合計数",
		}, []string{"activity"}),
		signupFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_signup_fail_total",
			Help: "活動登録失敗の合計数（理由別）",
		}, []string{"reason"}),
		removalSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_removal_success_total",
			Help: "活動登録解除成功の合計数",
		}, []string{"activity"}),
		removalFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_removal_fail_total",
			Help: "活動登録解除失敗の合計数（理由別）",
		}, []string{"reason"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "activities_http_request_duration_seconds",
			Help:    "HTTPリクエストの処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.signupSuccess,
		c.signupFail,
		c.removalSuccess,
		c.removalFail,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

// RecordSignupSuccess は活動登録成功を記録する。
func (c *Collector) RecordSignupSuccess(activityName string) {
	c.signupSuccess.WithLabelValues(activityName).Inc()
}

// RecordSignupFailure は活動登録失敗を理由付きで記録する。
func (c *Collector) RecordSignupFailure(reason string) {
	c.signupFail.WithLabelValues(reason).Inc()
}

// RecordRemovalSuccess は登録解除成功を記録する。
func (c *Collector) RecordRemovalSuccess(activityName string) {
	c.removalSuccess.WithLabelValues(activityName).Inc()
}

// RecordRemovalFailure は登録解除失敗を理由付きで記録する。
func (c *Collector) RecordRemovalFailure(reason string) {
	c.removalFail.WithLabelValues(reason).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエストの処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
