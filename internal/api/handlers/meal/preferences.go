package meal

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-recommendation/internal/core/menu"
)

// GetPreferences 현재 선호도
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.svc.Preferences(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences 선호도 전체 교체
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req menu.UserPreferences
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.svc.UpdatePreferences(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}
