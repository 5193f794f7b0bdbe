package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/vaxicare-api/internal/middleware"
	"github.com/harentsoaR/vaxicare-api/internal/services"
	"github.com/harentsoaR/vaxicare-api/internal/utils"
)

type memClaimStore struct {
	claims   map[string]map[string]interface{}
	setCalls int
}

func (m *memClaimStore) GetClaims(ctx context.Context, uid string) (map[string]interface{}, error) {
	if c, ok := m.claims[uid]; ok {
		out := map[string]interface{}{}
		for k, v := range c {
			out[k] = v
		}
		return out, nil
	}
	return map[string]interface{}{}, nil
}

func (m *memClaimStore) SetClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	m.setCalls++
	m.claims[uid] = claims
	return nil
}

type memProfileStore struct {
	adminFlags map[string]bool
	mergeErr   error
	mergeCalls int
}

func (m *memProfileStore) MergeAdminFlag(ctx context.Context, uid string, admin bool) error {
	m.mergeCalls++
	if m.mergeErr != nil {
		return m.mergeErr
	}
	m.adminFlags[uid] = admin
	return nil
}

func newClaimRouter(t *testing.T, claims *memClaimStore, profiles *memProfileStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &Handler{ClaimSvc: services.NewAdminClaimService(claims, profiles)}

	r := gin.New()
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.POST("/claims", h.SetAdminClaim)
	return r
}

func callClaims(t *testing.T, r *gin.Engine, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/admin/claims", &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetAdminClaimEndToEnd(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	adminUID := primitive.NewObjectID().Hex()
	targetUID := primitive.NewObjectID().Hex()

	claims := &memClaimStore{claims: map[string]map[string]interface{}{
		adminUID: {"admin": true},
	}}
	profiles := &memProfileStore{adminFlags: map[string]bool{adminUID: true}}
	r := newClaimRouter(t, claims, profiles)

	adminToken, err := utils.GenerateJWT(adminUID, "normal", true)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	targetToken, err := utils.GenerateJWT(targetUID, "normal", false)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	// The non-admin tries to grant itself admin.
	w := callClaims(t, r, targetToken, gin.H{"uid": targetUID, "admin": true})
	if w.Code != http.StatusForbidden {
		t.Fatalf("self-grant status = %d, want 403", w.Code)
	}
	if claims.setCalls != 0 || profiles.mergeCalls != 0 {
		t.Fatalf("self-grant mutated stores: setCalls=%d mergeCalls=%d", claims.setCalls, profiles.mergeCalls)
	}

	// The admin grants the target.
	w = callClaims(t, r, adminToken, gin.H{"uid": targetUID, "admin": true})
	if w.Code != http.StatusOK {
		t.Fatalf("grant status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		OK    bool   `json:"ok"`
		UID   string `json:"uid"`
		Admin bool   `json:"admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.OK || resp.UID != targetUID || !resp.Admin {
		t.Fatalf("response = %+v", resp)
	}
	if got := claims.claims[targetUID]["admin"]; got != true {
		t.Errorf("claim set admin = %v, want true", got)
	}
	if !profiles.adminFlags[targetUID] {
		t.Error("profile mirror isAdmin = false, want true")
	}

	// And revokes it again.
	w = callClaims(t, r, adminToken, gin.H{"uid": targetUID, "admin": false})
	if w.Code != http.StatusOK {
		t.Fatalf("revoke status = %d", w.Code)
	}
	if got := claims.claims[targetUID]["admin"]; got != false {
		t.Errorf("claim set admin = %v, want false", got)
	}
	if profiles.adminFlags[targetUID] {
		t.Error("profile mirror isAdmin = true, want false")
	}
}

func TestSetAdminClaimUnauthenticated(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := &memClaimStore{claims: map[string]map[string]interface{}{}}
	profiles := &memProfileStore{adminFlags: map[string]bool{}}
	r := newClaimRouter(t, claims, profiles)

	w := callClaims(t, r, "", gin.H{"uid": primitive.NewObjectID().Hex(), "admin": true})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if claims.setCalls != 0 || profiles.mergeCalls != 0 {
		t.Fatal("unauthenticated call mutated stores")
	}
}

func TestSetAdminClaimInvalidArguments(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := &memClaimStore{claims: map[string]map[string]interface{}{}}
	profiles := &memProfileStore{adminFlags: map[string]bool{}}
	r := newClaimRouter(t, claims, profiles)

	adminToken, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), "normal", true)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing uid", gin.H{"admin": true}},
		{"empty uid", gin.H{"uid": "", "admin": true}},
		{"missing admin", gin.H{"uid": primitive.NewObjectID().Hex()}},
		{"admin not boolean", gin.H{"uid": primitive.NewObjectID().Hex(), "admin": "yes"}},
		{"uid not an object id", gin.H{"uid": "not-a-uid", "admin": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := callClaims(t, r, adminToken, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
	if claims.setCalls != 0 || profiles.mergeCalls != 0 {
		t.Fatal("invalid requests mutated stores")
	}
}

func TestSetAdminClaimReportsMirrorDivergence(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := &memClaimStore{claims: map[string]map[string]interface{}{}}
	profiles := &memProfileStore{adminFlags: map[string]bool{}, mergeErr: errors.New("users collection unavailable")}
	r := newClaimRouter(t, claims, profiles)

	adminToken, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), "normal", true)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	targetUID := primitive.NewObjectID().Hex()
	w := callClaims(t, r, adminToken, gin.H{"uid": targetUID, "admin": true})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "claim-mirror-divergence" {
		t.Errorf("code = %q, want claim-mirror-divergence", resp.Code)
	}
	// The claim-set write already landed; only the mirror is stale.
	if got := claims.claims[targetUID]["admin"]; got != true {
		t.Errorf("claim set admin = %v, want true", got)
	}
}
