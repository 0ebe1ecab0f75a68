package handler

import (
	"net/http"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/service"

	"github.com/gin-gonic/gin"
)

type DreamHandler struct {
	service    service.DreamService
	generation service.GenerationService
	// 生圖路由的限流 middleware，nil 表示不限流
	limiter gin.HandlerFunc
}

func NewDreamHandler(service service.DreamService, generation service.GenerationService, limiter gin.HandlerFunc) *DreamHandler {
	return &DreamHandler{service: service, generation: generation, limiter: limiter}
}

func (h *DreamHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("styles", h.ListStyles)
		router.GET("users/:user_id/dreams", h.List)
		router.POST("users/:user_id/dreams", h.Create)
		router.GET("users/:user_id/dreams/:uuid", h.Get)
		router.PUT("users/:user_id/dreams/:uuid", h.Update)
		router.DELETE("users/:user_id/dreams/:uuid", h.Delete)
	}

	images := r.Group("/api/v1/users/:user_id/dreams/:uuid/images")
	if h.limiter != nil {
		images.Use(h.limiter)
	}
	{
		images.POST("", h.GenerateImage)
		images.POST("jobs", h.RequestImage)
	}
}

// ListStylesQuery tier 省略時視為 free
type ListStylesQuery struct {
	Tier model.PlanTier `form:"tier"`
}

type ListStylesResponse struct {
	Tier   model.PlanTier     `json:"tier"`
	Styles []model.ImageStyle `json:"styles"`
}

func (h *DreamHandler) ListStyles(c *gin.Context) {
	var query ListStylesQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	tier := query.Tier
	if tier == "" {
		tier = model.PlanTierFree
	}
	if tier != model.PlanTierFree && tier != model.PlanTierPro {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tier"})
		return
	}
	c.JSON(http.StatusOK, ListStylesResponse{Tier: tier, Styles: h.generation.AvailableStyles(tier)})
}

func (h *DreamHandler) List(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreams, err := h.service.ListDreams(c, userID)
	if err != nil {
		handleError(c, err, "ListDreams")
		return
	}
	c.JSON(http.StatusOK, dreams)
}

func (h *DreamHandler) Get(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	dream, err := h.service.GetDream(c, userID, dreamID)
	if err != nil {
		handleError(c, err, "GetDream")
		return
	}
	c.JSON(http.StatusOK, dream)
}

func (h *DreamHandler) Create(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	var req model.CreateDreamRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	dream, err := h.service.CreateDream(c, userID, req)
	if err != nil {
		handleError(c, err, "CreateDream")
		return
	}
	c.JSON(http.StatusCreated, dream)
}

func (h *DreamHandler) Update(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	var req model.UpdateDreamRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	dream, err := h.service.UpdateDream(c, userID, dreamID, req)
	if err != nil {
		handleError(c, err, "UpdateDream")
		return
	}
	c.JSON(http.StatusOK, dream)
}

func (h *DreamHandler) Delete(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteDream(c, userID, dreamID); err != nil {
		handleError(c, err, "DeleteDream")
		return
	}
	c.Status(http.StatusNoContent)
}

// bindGenerationOptions body 可省略，省略時使用預設風格
func bindGenerationOptions(c *gin.Context) (model.GenerationOptions, bool) {
	var opts model.GenerationOptions
	if c.Request.ContentLength == 0 {
		return opts, true
	}
	if err := BindJson(c, &opts); err != nil {
		return opts, false
	}
	return opts, true
}

func (h *DreamHandler) GenerateImage(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	opts, ok := bindGenerationOptions(c)
	if !ok {
		return
	}
	image, err := h.service.GenerateImage(c, userID, dreamID, opts)
	if err != nil {
		handleError(c, err, "GenerateImage")
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *DreamHandler) RequestImage(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	dreamID, ok := DreamID(c)
	if !ok {
		return
	}
	opts, ok := bindGenerationOptions(c)
	if !ok {
		return
	}
	job, err := h.service.RequestImage(c, userID, dreamID, opts)
	if err != nil {
		handleError(c, err, "RequestImage")
		return
	}
	c.JSON(http.StatusAccepted, job)
}
