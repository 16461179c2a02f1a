package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordMatch(t *testing.T) {
	before := testutil.ToFloat64(MenuMatches.WithLabelValues("alias"))
	RecordMatch("alias")
	RecordMatch("alias")
	assert.Equal(t, before+2, testutil.ToFloat64(MenuMatches.WithLabelValues("alias")))
}

func TestRecordSuggestionCache(t *testing.T) {
	hits := testutil.ToFloat64(SuggestionCache.WithLabelValues("hit"))
	misses := testutil.ToFloat64(SuggestionCache.WithLabelValues("miss"))

	RecordSuggestionCache(true)
	RecordSuggestionCache(false)
	RecordSuggestionCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(SuggestionCache.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(SuggestionCache.WithLabelValues("miss")))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequests.WithLabelValues("GET", "/api/v1/menus", "200")
	before := testutil.ToFloat64(counter)

	RecordHTTPRequest("GET", "/api/v1/menus", 200, 3*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Positive(t, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordFeedbackAndRecommendation(t *testing.T) {
	before := testutil.ToFloat64(FeedbackSubmitted.WithLabelValues("reject"))
	RecordFeedback("reject")
	assert.Equal(t, before+1, testutil.ToFloat64(FeedbackSubmitted.WithLabelValues("reject")))

	RecordRecommendation(time.Millisecond, 13)
	assert.Equal(t, 1, testutil.CollectAndCount(RecommendationDuration))
}
