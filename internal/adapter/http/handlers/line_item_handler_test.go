package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventpilot/internal/adapter/http/handlers/mocks"
	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLineItemHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("custom item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/documents/:id/items", h.Add)

		uc.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(usecase.AddLineItemInput{})).DoAndReturn(
			func(_ context.Context, input usecase.AddLineItemInput) (entities.LineItem, error) {
				if input.DocumentID != "doc-1" || input.Name != "Stage" || !input.IsCustom {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.LineItem{ID: "li-1", DocumentID: "doc-1", Name: "Stage", Quantity: 1, UnitPrice: 100}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/items",
			bytes.NewBufferString(`{"name":"Stage","quantity":1,"unit_price":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("catalog copy routes to the product flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/documents/:id/items", h.Add)

		uc.EXPECT().AddFromProduct(gomock.Any(), "doc-1", "p-1", 3, true).Return(entities.LineItem{
			ID: "li-1", ProductID: "p-1", Quantity: 3,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/items",
			bytes.NewBufferString(`{"product_id":"p-1","quantity":3,"at_head":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_AddServiceFee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate fee maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/documents/:id/items/service-fee", h.AddServiceFee)

		uc.EXPECT().AddServiceFee(gomock.Any(), "doc-1").Return(entities.LineItem{}, usecase.ErrDuplicateServiceFee)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/items/service-fee", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/documents/:id/items/service-fee", h.AddServiceFee)

		uc.EXPECT().AddServiceFee(gomock.Any(), "doc-1").Return(entities.LineItem{
			ID: "li-fee", Name: "Service Fee", Quantity: 1, UnitPrice: 0.88, IsServiceFee: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/documents/doc-1/items/service-fee", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILineItemUseCase(ctrl)
	h := NewLineItemHandler(uc)

	r := gin.New()
	r.DELETE("/v1/documents/:id/items/:item_id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), "doc-1", "li-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/documents/doc-1/items/li-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestLineItemHandler_Reorder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad permutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.PUT("/v1/documents/:id/items", h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), "doc-1", []string{"li-2"}).Return(nil, usecase.ErrInvalidReorder)

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/doc-1/items",
			bytes.NewBufferString(`{"item_ids":["li-2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns the new order with totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.PUT("/v1/documents/:id/items", h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), "doc-1", []string{"li-2", "li-1"}).Return([]entities.LineItem{
			{ID: "li-2", Quantity: 1, UnitPrice: 5, SortOrder: 0},
			{ID: "li-1", Quantity: 2, UnitPrice: 10, SortOrder: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/doc-1/items",
			bytes.NewBufferString(`{"item_ids":["li-2","li-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Items    []json.RawMessage `json:"items"`
			Subtotal float64           `json:"subtotal"`
			Total    float64           `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body.Items) != 2 || body.Subtotal != 25 || body.Total != 25 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
