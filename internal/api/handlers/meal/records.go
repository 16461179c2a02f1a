package meal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mealService "menu-recommendation/internal/core/meal"
)

// ListRecords 최근 7일 기록
func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.svc.ListRecentRecords(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateRecord 기록 저장. 매칭 정보를 함께 돌려준다
func (h *Handler) CreateRecord(c *gin.Context) {
	var req mealService.LogMealInput
	if !bindJSON(c, &req) {
		return
	}

	logged, err := h.svc.LogMeal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, logged)
}

// DeleteRecord 기록 삭제
func (h *Handler) DeleteRecord(c *gin.Context) {
	if err := h.svc.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
