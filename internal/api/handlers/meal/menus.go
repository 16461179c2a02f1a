package meal

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type matchQuery struct {
	Q string `form:"q" binding:"required,max=100"`
}

type suggestionQuery struct {
	Q     string `form:"q" binding:"max=100"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

// ListMenus 전체 카탈로그
func (h *Handler) ListMenus(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Catalog().Menus())
}

// MatchMenu 입력 하나의 최선 매칭
func (h *Handler) MatchMenu(c *gin.Context) {
	var q matchQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, h.svc.MatchMenuText(c.Request.Context(), q.Q))
}

// Suggestions 자동완성. q가 비면 빈 배열
func (h *Handler) Suggestions(c *gin.Context) {
	var q suggestionQuery
	if !bindQuery(c, &q) {
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultSuggestionLimit
	}
	c.JSON(http.StatusOK, h.svc.SuggestMenus(c.Request.Context(), q.Q, q.Limit))
}

// Candidates 온보딩용 요리 분류별 후보
func (h *Handler) Candidates(c *gin.Context) {
	candidates, err := h.svc.Candidates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
