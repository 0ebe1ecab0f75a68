package handler

import (
	"net/http"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/service"

	"github.com/gin-gonic/gin"
)

// InterviewHandler Pro 方案的夢境訪談
type InterviewHandler struct {
	service service.InterviewService
}

func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

func (h *InterviewHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/users/:user_id/dreams/:uuid/interview")
	{
		router.POST("", h.Start)
		router.GET("", h.Get)
		router.POST("answers", h.Answer)
	}
}

func (h *InterviewHandler) Start(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	status, err := h.service.StartInterview(c, userID, dreamID)
	if err != nil {
		handleError(c, err, "StartInterview")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *InterviewHandler) Get(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	status, err := h.service.GetInterview(c, userID, dreamID)
	if err != nil {
		handleError(c, err, "GetInterview")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *InterviewHandler) Answer(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	var req model.AnswerInterviewRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	status, err := h.service.AnswerQuestion(c, userID, dreamID, req)
	if err != nil {
		handleError(c, err, "AnswerQuestion")
		return
	}
	c.JSON(http.StatusOK, status)
}
