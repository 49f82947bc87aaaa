package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/22230902mani/Inventory-Management-System-sub000/models"

	"github.com/gin-gonic/gin"
)

func TestStatusForAction(t *testing.T) {
	cases := []struct {
		action  string
		want    string
		wantErr bool
	}{
		{"approve", models.OrderVerified, false},
		{"reject", models.OrderRejected, false},
		{"deliver", "", true},
		{"", "", true},
		{"Approve", "", true},
	}

	for _, tc := range cases {
		got, err := statusForAction(tc.action)
		if tc.wantErr {
			if err == nil {
				t.Errorf("statusForAction(%q): expected error", tc.action)
			}
			continue
		}
		if err != nil {
			t.Errorf("statusForAction(%q): unexpected error %v", tc.action, err)
			continue
		}
		if got != tc.want {
			t.Errorf("statusForAction(%q) = %q, want %q", tc.action, got, tc.want)
		}
	}
}

// The handlers below validate input before any storage access, so the bad
// input paths can be exercised without a database.

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrder_BadUTR(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		c.Set("userID", "u1")
		CreateOrder(c)
	})

	cases := []struct {
		name string
		body string
	}{
		{"short UTR", `{"items":[{"product_id":"p1","quantity":1}],"paymentUTR":"12345","shippingAddress":"addr"}`},
		{"non-numeric UTR", `{"items":[{"product_id":"p1","quantity":1}],"paymentUTR":"12345678901a","shippingAddress":"addr"}`},
		{"missing UTR", `{"items":[{"product_id":"p1","quantity":1}],"shippingAddress":"addr"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/orders", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", func(c *gin.Context) {
		c.Set("userID", "u1")
		CreateOrder(c)
	})

	w := postJSON(r, "/orders", `{"items":[],"paymentUTR":"123456789012","shippingAddress":"addr"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestVerifyPayment_UnknownAction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/verify-payment", VerifyPayment)

	w := postJSON(r, "/verify-payment", `{"orderId":"656f00000000000000000000","action":"cancel"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestVerifyPayment_BadOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/verify-payment", VerifyPayment)

	w := postJSON(r, "/verify-payment", `{"orderId":"nope","action":"approve"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestVerifyDelivery_BadOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:id/verify-delivery", VerifyDelivery)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/nope/verify-delivery", bytes.NewBufferString(`{"otp":"123456"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
