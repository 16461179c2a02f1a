// Package metrics Prometheus 지표
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 메뉴 매칭
	MenuMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_match_total",
			Help: "Total number of menu text matches by match type",
		},
		[]string{"match_type"},
	)

	// 추천 계산
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "menu_recommendation_duration_seconds",
			Help:    "Duration of recommendation scoring in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "menu_recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 3, 5, 8, 10, 13},
		},
	)

	// 추천어 캐시
	SuggestionCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_suggestion_cache_total",
			Help: "Suggestion cache lookups by result",
		},
		[]string{"result"},
	)

	// 피드백
	FeedbackSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_feedback_total",
			Help: "Total number of feedback submissions by action",
		},
		[]string{"action"},
	)

	// HTTP
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordMatch 매칭 결과 유형 기록
func RecordMatch(matchType string) {
	MenuMatches.WithLabelValues(matchType).Inc()
}

// RecordRecommendation 추천 소요 시간과 개수 기록
func RecordRecommendation(duration time.Duration, count int) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationsReturned.Observe(float64(count))
}

// RecordSuggestionCache hit 여부 기록
func RecordSuggestionCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	SuggestionCache.WithLabelValues(result).Inc()
}

// RecordFeedback 피드백 행동 기록
func RecordFeedback(action string) {
	FeedbackSubmitted.WithLabelValues(action).Inc()
}

// RecordHTTPRequest 요청 수와 지연 기록. route는 등록된 경로 패턴
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
