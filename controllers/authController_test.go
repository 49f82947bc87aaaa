package controllers

import (
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResetCodeStore(t *testing.T) {
	storeResetCode("a@example.com", "111111")

	if !checkResetCode("a@example.com", "111111") {
		t.Error("stored code rejected")
	}
	if checkResetCode("a@example.com", "222222") {
		t.Error("wrong code accepted")
	}
	if checkResetCode("b@example.com", "111111") {
		t.Error("code accepted for a different email")
	}

	clearResetCode("a@example.com")
	if checkResetCode("a@example.com", "111111") {
		t.Error("cleared code accepted")
	}
}

// Codes are stored and verified from concurrently running handlers; run with
// -race to check the store tolerates that.
func TestResetCodeStore_ConcurrentAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/verify-reset-code", VerifyResetCode)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			storeResetCode("race@example.com", "123456")
		}
	}()

	for i := 0; i < 200; i++ {
		w := postJSON(r, "/verify-reset-code", `{"email":"race@example.com","code":"000000"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for wrong code, got %d", w.Code)
		}
	}

	wg.Wait()
	clearResetCode("race@example.com")
}

func TestVerifyResetCode_Unknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/verify-reset-code", VerifyResetCode)

	w := postJSON(r, "/verify-reset-code", `{"email":"nobody@example.com","code":"123456"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
