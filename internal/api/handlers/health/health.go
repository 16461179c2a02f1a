package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"menu-recommendation/internal/infrastructure/config"
	"menu-recommendation/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger 준비 상태 확인 대상
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse 헬스 체크 응답
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Version     string                 `json:"version"`
	Storage     string                 `json:"storage"`
	CatalogSize int                    `json:"catalog_size"`
	Runtime     map[string]interface{} `json:"runtime"`
}

// Handler 헬스 체크 핸들러
type Handler struct {
	cfg         *config.Config
	store       Pinger
	catalogSize int
	pingTimeout time.Duration
}

// NewHandler 새 헬스 체크 핸들러
func NewHandler(cfg *config.Config, store Pinger, catalogSize int) *Handler {
	return &Handler{
		cfg:         cfg,
		store:       store,
		catalogSize: catalogSize,
		pingTimeout: 2 * time.Second,
	}
}

// HealthCheck 버전과 런타임 정보
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now(),
		Version:     h.cfg.App.Version,
		Storage:     h.cfg.Storage.Driver,
		CatalogSize: h.catalogSize,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 저장소 연결 확인
func (h *Handler) ReadinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		common.LogWarn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, common.ErrorResponse{
			Code:    common.ErrServiceUnavailable.Code,
			Message: common.ErrServiceUnavailable.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 프로세스 응답 여부
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
