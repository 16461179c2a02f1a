package meal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mealService "menu-recommendation/internal/core/meal"
	"menu-recommendation/internal/pkg/common"
)

type recommendationQuery struct {
	MealType   string `form:"mealType"`
	ExcludeIDs string `form:"excludeIds"`
}

// Recommendations 추천 목록. 알 수 없는 mealType은 무시한다
func (h *Handler) Recommendations(c *gin.Context) {
	var q recommendationQuery
	if !bindQuery(c, &q) {
		return
	}

	recs, err := h.svc.Recommend(c.Request.Context(), mealService.RecommendInput{
		MealType:   q.MealType,
		ExcludeIDs: common.SplitCSV(q.ExcludeIDs),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

// CreateFeedback 추천 카드 반응 저장
func (h *Handler) CreateFeedback(c *gin.Context) {
	var req mealService.FeedbackInput
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.svc.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// Insights 최근 식사 요약
func (h *Handler) Insights(c *gin.Context) {
	summary, err := h.svc.Insights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// FillDemoData 데모 데이터로 초기화
func (h *Handler) FillDemoData(c *gin.Context) {
	if err := h.svc.FillDemoData(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Demo data filled successfully",
	})
}
