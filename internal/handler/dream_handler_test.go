package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dream-diary-api/config"
	"dream-diary-api/internal/handler"
	"dream-diary-api/internal/middleware"
	"dream-diary-api/internal/model"
	serviceMocks "dream-diary-api/internal/service/mocks"
	apperrors "dream-diary-api/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupDreamTestRouter(t *testing.T, limiter gin.HandlerFunc) (*gin.Engine, *serviceMocks.MockDreamService, *serviceMocks.MockGenerationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dreams := serviceMocks.NewMockDreamService(t)
	generation := serviceMocks.NewMockGenerationService(t)

	router := gin.New()
	handler.NewDreamHandler(dreams, generation, limiter).RegisterRoutes(router)
	return router, dreams, generation
}

func imagesURL(userID string, dreamID uuid.UUID) string {
	return fmt.Sprintf("/api/v1/users/%s/dreams/%s/images", userID, dreamID)
}

func TestDreamHandler_ListStyles(t *testing.T) {
	t.Run("Default free tier", func(t *testing.T) {
		router, _, generation := setupDreamTestRouter(t, nil)
		generation.EXPECT().AvailableStyles(model.PlanTierFree).Return(model.AvailableStyles(model.PlanTierFree)).Once()

		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/styles", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.ListStylesResponse
		decode(t, w, &resp)
		assert.Equal(t, model.PlanTierFree, resp.Tier)
		assert.Len(t, resp.Styles, 2)
	})

	t.Run("Pro tier", func(t *testing.T) {
		router, _, generation := setupDreamTestRouter(t, nil)
		generation.EXPECT().AvailableStyles(model.PlanTierPro).Return(model.AvailableStyles(model.PlanTierPro)).Once()

		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/styles?tier=pro", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handler.ListStylesResponse
		decode(t, w, &resp)
		assert.Len(t, resp.Styles, 6)
	})

	t.Run("Invalid tier", func(t *testing.T) {
		router, _, _ := setupDreamTestRouter(t, nil)

		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/styles?tier=gold", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDreamHandler_CRUD(t *testing.T) {
	dreamID := uuid.New()
	dream := &model.Dream{DreamID: dreamID, UserID: "u1", Title: "flying", Content: "over the sea"}

	t.Run("Create", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		req := model.CreateDreamRequest{Title: "flying", Content: "over the sea"}
		dreams.EXPECT().CreateDream(mock.Anything, "u1", req).Return(dream, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users/u1/dreams", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.Dream
		decode(t, w, &got)
		assert.Equal(t, dreamID, got.DreamID)
	})

	t.Run("Create BindingError", func(t *testing.T) {
		router, _, _ := setupDreamTestRouter(t, nil)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users/u1/dreams", InvalidJSON))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create missing content", func(t *testing.T) {
		router, _, _ := setupDreamTestRouter(t, nil)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users/u1/dreams", map[string]string{"title": "only title"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		dreams.EXPECT().ListDreams(mock.Anything, "u1").Return([]*model.Dream{dream}, nil).Once()

		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/dreams", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got []model.Dream
		decode(t, w, &got)
		assert.Len(t, got, 1)
	})

	t.Run("Get not found", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		dreams.EXPECT().GetDream(mock.Anything, "u1", dreamID).Return(nil, apperrors.ErrDreamNotFound).Once()

		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/dreams/"+dreamID.String(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Get invalid uuid", func(t *testing.T) {
		router, _, _ := setupDreamTestRouter(t, nil)

		w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/dreams/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Update", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		dreams.EXPECT().UpdateDream(mock.Anything, "u1", dreamID, mock.AnythingOfType("model.UpdateDreamRequest")).Return(dream, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPut, "/api/v1/users/u1/dreams/"+dreamID.String(), map[string]string{"title": "flying"}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		dreams.EXPECT().DeleteDream(mock.Anything, "u1", dreamID).Return(nil).Once()

		w := serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/users/u1/dreams/"+dreamID.String(), nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestDreamHandler_GenerateImage(t *testing.T) {
	dreamID := uuid.New()

	t.Run("Success with default style", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		image := &model.GeneratedImage{ImageID: uuid.New(), URL: "https://img", Style: model.ImageStyleRealistic, Quality: model.ImageQualityStandard}
		dreams.EXPECT().GenerateImage(mock.Anything, "u1", dreamID, model.GenerationOptions{}).Return(image, nil).Once()

		w := serve(router, httptest.NewRequest(http.MethodPost, imagesURL("u1", dreamID), nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.GeneratedImage
		decode(t, w, &got)
		assert.Equal(t, image.ImageID, got.ImageID)
	})

	errorCases := []struct {
		name string
		err  error
		code int
	}{
		{"Failed - insufficient credits", apperrors.ErrInsufficientCredits, http.StatusPaymentRequired},
		{"Failed - style not available", apperrors.ErrStyleNotAvailable, http.StatusForbidden},
		{"Failed - dream not found", apperrors.ErrDreamNotFound, http.StatusNotFound},
		{"Failed - provider failure", fmt.Errorf("%w: %w", apperrors.ErrProviderFailure, errors.New("timeout")), http.StatusBadGateway},
		{"Failed - storage failure", apperrors.ErrStorageFailure, http.StatusServiceUnavailable},
		{"Failed - unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			router, dreams, _ := setupDreamTestRouter(t, nil)
			opts := model.GenerationOptions{Style: model.ImageStyleWatercolor}
			dreams.EXPECT().GenerateImage(mock.Anything, "u1", dreamID, opts).Return(nil, tc.err).Once()

			w := serve(router, createJSONHTTPRequest(http.MethodPost, imagesURL("u1", dreamID), opts))
			assert.Equal(t, tc.code, w.Code)
		})
	}

	t.Run("Failed - BindingError", func(t *testing.T) {
		router, _, _ := setupDreamTestRouter(t, nil)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, imagesURL("u1", dreamID), InvalidJSON))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDreamHandler_RequestImage(t *testing.T) {
	dreamID := uuid.New()

	t.Run("Accepted", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		job := &model.GenerationJob{JobID: "job_1", DreamID: dreamID, Style: model.ImageStyleAnime}
		dreams.EXPECT().RequestImage(mock.Anything, "u1", dreamID, model.GenerationOptions{Style: model.ImageStyleAnime}).Return(job, nil).Once()

		w := serve(router, createJSONHTTPRequest(http.MethodPost, imagesURL("u1", dreamID)+"/jobs", model.GenerationOptions{Style: model.ImageStyleAnime}))

		assert.Equal(t, http.StatusAccepted, w.Code)
		var got model.GenerationJob
		decode(t, w, &got)
		assert.Equal(t, "job_1", got.JobID)
	})

	t.Run("Failed - insufficient credits", func(t *testing.T) {
		router, dreams, _ := setupDreamTestRouter(t, nil)
		dreams.EXPECT().RequestImage(mock.Anything, "u1", dreamID, model.GenerationOptions{}).Return(nil, apperrors.ErrInsufficientCredits).Once()

		w := serve(router, httptest.NewRequest(http.MethodPost, imagesURL("u1", dreamID)+"/jobs", nil))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)
	})
}

func TestDreamHandler_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{GenerationsPerSecond: 0.001, GenerationBurst: 1})
	router, dreams, _ := setupDreamTestRouter(t, limiter.PerUser("user_id"))
	dreamID := uuid.New()

	dreams.EXPECT().GenerateImage(mock.Anything, mock.Anything, dreamID, model.GenerationOptions{}).Return(&model.GeneratedImage{ImageID: uuid.New()}, nil).Twice()

	w := serve(router, httptest.NewRequest(http.MethodPost, imagesURL("u1", dreamID), nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodPost, imagesURL("u1", dreamID), nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// 其他使用者不受影響
	w = serve(router, httptest.NewRequest(http.MethodPost, imagesURL("u2", dreamID), nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
