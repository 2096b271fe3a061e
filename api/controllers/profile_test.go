package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopwave/shopwave-backend/internal/profile"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

func testProfile(t *testing.T) *profile.Service {
	t.Helper()
	return profile.NewService(profile.NewRepository(testStore(t)), silentNotifier{}, nil)
}

func TestProfileFetchDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp := httptest.NewRecorder()
	ProfileFetch(testProfile(t))(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	got := decodeEnvelope[types.UserProfile](t, resp.Body.Bytes())
	if got.Name != "Alex Johnson" || got.Address.City != "San Francisco" {
		t.Fatalf("unexpected default profile: %+v", got)
	}
}

func TestProfileUpdate(t *testing.T) {
	t.Parallel()

	svc := testProfile(t)
	body := `{"name":"Jordan Lee","email":"jordan@example.com","phone":"","address":{"street":"9 Pine St","city":"Oakland","state":"CA","zip":"94607","country":"USA"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	resp := httptest.NewRecorder()
	ProfileUpdate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	got := decodeEnvelope[types.UserProfile](t, resp.Body.Bytes())
	if got.Name != "Jordan Lee" || got.Address.Street != "9 Pine St" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestProfileUpdateRejectsBadEmail(t *testing.T) {
	t.Parallel()

	body := `{"name":"Jordan Lee","email":"not-an-email","address":{}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(body))
	resp := httptest.NewRecorder()
	ProfileUpdate(testProfile(t), testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
