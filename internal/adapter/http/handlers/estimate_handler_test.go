package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paintworks/internal/adapter/http/handlers/mocks"
	"paintworks/internal/domain/entities"
	"paintworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_SaveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.SaveEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.SaveEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"jobNumber":"01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().SaveEstimate(gomock.Any(), gomock.Any()).Return(entities.JobRecord{
			JobNumber:    "04",
			CustomerName: "Acme",
			Subtotal:     350,
			GstHst:       45.5,
			Total:        395.5,
		}, nil)

		r := gin.New()
		r.POST("/v1/estimates", h.SaveEstimate)

		body := `{"customerName":"Acme","rooms":[{"label":"8ft ceiling walls trim and doors"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["jobNumber"] != "04" || resp["total"] != 395.5 {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("string costs accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().SaveEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, rec entities.JobRecord) (entities.JobRecord, error) {
				if rec.Extras[0].Cost.Float() != 75.5 {
					t.Fatalf("string cost not coerced: %v", rec.Extras[0].Cost.Float())
				}
				return rec, nil
			},
		)

		r := gin.New()
		r.POST("/v1/estimates", h.SaveEstimate)

		body := `{"customerName":"Acme","extras":[{"label":"Closet","cost":"75.5","isCustomCost":true}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().GetByJobNumber(gomock.Any(), "99").Return(entities.JobRecord{}, usecase.ErrEstimateNotFound)

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().GetByJobNumber(gomock.Any(), "01").Return(entities.JobRecord{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/estimates/:id", h.GetEstimate)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/01", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().DeleteEstimate(gomock.Any(), 2).Return(nil)

		r := gin.New()
		r.DELETE("/v1/estimates/:id", h.DeleteEstimate)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_PromoteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	uc.EXPECT().PromoteToOpenJob(gomock.Any(), 0).Return(entities.JobRecord{JobNumber: "03"}, nil)

	r := gin.New()
	r.POST("/v1/estimates/:id/promote", h.PromoteEstimate)

	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/0/promote", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
