package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dream-diary-api/internal/handler"
	"dream-diary-api/internal/model"
	providerMocks "dream-diary-api/internal/provider/mocks"
	"dream-diary-api/internal/repository"
	"dream-diary-api/internal/service"
	"dream-diary-api/internal/storage"
	"dream-diary-api/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func setupTicketTestRouter(t *testing.T) (*gin.Engine, *providerMocks.MockAdProvider, service.TicketService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tickets := service.NewTicketService(repository.NewLedgerRepository(storage.NewMemoryStore()), clock.NewFake(testNow))
	ads := providerMocks.NewMockAdProvider(t)
	rewards := service.NewRewardService(tickets, ads)

	router := gin.New()
	handler.NewTicketHandler(tickets, rewards).RegisterRoutes(router)
	return router, ads, tickets
}

func TestTicketHandler_ListPackages(t *testing.T) {
	router, _, _ := setupTicketTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/packages", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var packages []model.TicketPackage
	decode(t, w, &packages)
	assert.Len(t, packages, 3)
}

func TestTicketHandler_Status(t *testing.T) {
	router, _, _ := setupTicketTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/tickets/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var status model.UserTicketStatus
	decode(t, w, &status)
	assert.Equal(t, 0, status.AvailableTickets)
	assert.True(t, status.CanWatchAd)
}

func TestTicketHandler_AdReward(t *testing.T) {
	t.Run("Success then cooldown", func(t *testing.T) {
		router, ads, _ := setupTicketTestRouter(t)

		ads.EXPECT().IsAdReady(mock.Anything).Return(true, nil).Once()
		ads.EXPECT().ShowRewardedAd(mock.Anything).Return(true, nil).Once()

		w := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/tickets/ad-reward", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		var result model.AdRewardResult
		decode(t, w, &result)
		assert.True(t, result.Awarded)
		assert.Equal(t, 1, result.Status.AvailableTickets)

		w = serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/tickets/ad-reward", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("Ad not completed", func(t *testing.T) {
		router, ads, _ := setupTicketTestRouter(t)

		ads.EXPECT().IsAdReady(mock.Anything).Return(true, nil).Once()
		ads.EXPECT().ShowRewardedAd(mock.Anything).Return(false, nil).Once()

		w := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/tickets/ad-reward", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestTicketHandler_Purchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, _, _ := setupTicketTestRouter(t)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users/u1/tickets/purchase", handler.PurchaseTicketsRequest{PackageID: "basic"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp handler.PurchaseTicketsResponse
		decode(t, w, &resp)
		assert.Len(t, resp.Tickets, 10)
		assert.Equal(t, 10, resp.Status.TotalTicketsPurchased)
		assert.Equal(t, 10, resp.Status.AvailableTickets)
	})

	t.Run("Invalid package", func(t *testing.T) {
		router, _, _ := setupTicketTestRouter(t)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users/u1/tickets/purchase", handler.PurchaseTicketsRequest{PackageID: "mega"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("BindingError", func(t *testing.T) {
		router, _, _ := setupTicketTestRouter(t)

		w := serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/users/u1/tickets/purchase", InvalidJSON))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTicketHandler_Use(t *testing.T) {
	router, _, tickets := setupTicketTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/tickets/use", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.UseTicketResponse
	decode(t, w, &resp)
	assert.False(t, resp.Used)

	_, err := tickets.PurchaseTickets(t.Context(), "u1", "basic")
	assert.NoError(t, err)

	w = serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/tickets/use", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.True(t, resp.Used)
	assert.Equal(t, 9, resp.Status.AvailableTickets)
}

func TestTicketHandler_Cleanup(t *testing.T) {
	router, _, _ := setupTicketTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/tickets/cleanup", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":0}`, w.Body.String())
}
