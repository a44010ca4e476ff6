package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Greendayy/Ali-Express/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeAddressRepo struct {
	createCalled int
	lastAddress  *models.Address
	createErr    error
}

func (f *fakeAddressRepo) Create(ctx context.Context, address *models.Address) error {
	f.createCalled++
	f.lastAddress = address
	return f.createErr
}

func newAddressRouter(repo *fakeAddressRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := &AddressController{Repo: repo, Logger: zap.NewNop(), Timeout: time.Second}
	r := gin.New()
	r.POST("/addresses", controller.CreateAddress)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const validAddressBody = `{
	"userId": "6f1b9b2a-9f6d-4c62-b0f7-0f3a7a3f77aa",
	"name": "Jane Doe",
	"address": "1 Main Street",
	"zipCode": "10001",
	"city": "New York",
	"country": "USA"
}`

func TestCreateAddressSuccess(t *testing.T) {
	repo := &fakeAddressRepo{}
	rec := postJSON(newAddressRouter(repo), "/addresses", validAddressBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusOK, rec.Code, rec.Body.String())
	}
	if repo.createCalled != 1 {
		t.Fatalf("expected one persistence call, got %d", repo.createCalled)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	for field, want := range map[string]string{
		"userId":  "6f1b9b2a-9f6d-4c62-b0f7-0f3a7a3f77aa",
		"name":    "Jane Doe",
		"address": "1 Main Street",
		"zipCode": "10001",
		"city":    "New York",
		"country": "USA",
	} {
		if got[field] != want {
			t.Fatalf("field %q = %v, want %q", field, got[field], want)
		}
	}
	if id, ok := got["id"].(string); !ok || id == "" {
		t.Fatalf("expected a generated id, got %v", got["id"])
	}
}

func TestCreateAddressMissingFieldSkipsPersistence(t *testing.T) {
	bodies := map[string]string{
		"missing country":  `{"userId":"6f1b9b2a-9f6d-4c62-b0f7-0f3a7a3f77aa","name":"Jane","address":"1 Main St","zipCode":"10001","city":"NYC"}`,
		"missing userId":   `{"name":"Jane","address":"1 Main St","zipCode":"10001","city":"NYC","country":"USA"}`,
		"malformed userId": `{"userId":"not-a-uuid","name":"Jane","address":"1 Main St","zipCode":"10001","city":"NYC","country":"USA"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			repo := &fakeAddressRepo{}
			rec := postJSON(newAddressRouter(repo), "/addresses", body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
			if repo.createCalled != 0 {
				t.Fatalf("expected no persistence call, got %d", repo.createCalled)
			}
		})
	}
}

func TestCreateAddressGatewayFailure(t *testing.T) {
	repo := &fakeAddressRepo{createErr: errors.New("constraint violation")}
	rec := postJSON(newAddressRouter(repo), "/addresses", validAddressBody)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("error response is not JSON: %v", err)
	}
	if got["message"] != "Failed to save address" {
		t.Fatalf("unexpected message %v", got["message"])
	}
}

func TestCreateAddressGatewayTimeout(t *testing.T) {
	repo := &fakeAddressRepo{createErr: context.DeadlineExceeded}
	rec := postJSON(newAddressRouter(repo), "/addresses", validAddressBody)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected status %d, got %d", http.StatusGatewayTimeout, rec.Code)
	}
}
