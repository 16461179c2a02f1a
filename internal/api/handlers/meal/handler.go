package meal

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	mealService "menu-recommendation/internal/core/meal"
	"menu-recommendation/internal/pkg/common"
)

// defaultSuggestionLimit 자동완성 기본 개수
const defaultSuggestionLimit = 8

var registerTagNameOnce sync.Once

// useJSONFieldNames 검증 오류에 JSON 필드명을 쓰게 한다
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// Handler 식사 기록, 메뉴, 추천 API
type Handler struct {
	svc *mealService.Service
}

// NewHandler 새 핸들러
func NewHandler(svc *mealService.Service) *Handler {
	useJSONFieldNames()
	return &Handler{svc: svc}
}

// Register 라우트 등록
func (h *Handler) Register(api *gin.RouterGroup) {
	records := api.Group("/meal-records")
	{
		records.GET("", h.ListRecords)
		records.POST("", h.CreateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}

	menus := api.Group("/menus")
	{
		menus.GET("", h.ListMenus)
		menus.GET("/match", h.MatchMenu)
	}
	api.GET("/menu-suggestions", h.Suggestions)
	api.GET("/menu-candidates", h.Candidates)

	api.GET("/preferences", h.GetPreferences)
	api.PUT("/preferences", h.UpdatePreferences)

	api.GET("/recommendations", h.Recommendations)
	api.POST("/feedback", h.CreateFeedback)
	api.GET("/insights", h.Insights)

	api.POST("/demo/fill-data", h.FillDemoData)
}

// bindJSON 실패하면 400/413 응답을 쓰고 false
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, v any) bool {
	if err := c.ShouldBindQuery(v); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func respondBindError(c *gin.Context, err error) {
	requestID := requestid.Get(c)

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		common.LogWarn("요청 본문 초과", zap.Int64("limit", maxBytes.Limit), zap.String("request_id", requestID))
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.ErrorResponse{
			Code:    common.ErrTooLarge.Code,
			Message: common.ErrTooLarge.Message,
		})
		return
	}

	common.LogWarn("요청 형식 오류", zap.Error(err), zap.String("request_id", requestID))

	resp := common.ErrorResponse{
		Code:    common.ErrInvalidRequest.Code,
		Message: common.ErrInvalidRequest.Message,
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		resp.Details = details
	} else {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// respondError 서비스 오류를 ErrorResponse로 바꾼다
func respondError(c *gin.Context, err error) {
	var ce *common.CustomError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		ce = common.ErrRequestTimeout.Wrap(err)
	case errors.Is(err, context.Canceled):
		ce = common.ErrRequestTimeout.Wrap(err)
	default:
		ce = common.AsCustomError(err)
	}

	fields := []zap.Field{
		zap.Error(err),
		zap.String("code", ce.Code),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestid.Get(c)),
	}
	if ce.Status >= http.StatusInternalServerError {
		common.LogError("요청 처리 실패", fields...)
	} else {
		common.LogWarn("요청 처리 실패", fields...)
	}

	c.AbortWithStatusJSON(ce.Status, common.ErrorResponse{
		Code:    ce.Code,
		Message: ce.Message,
	})
}
