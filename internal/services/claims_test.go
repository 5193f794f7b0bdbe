package services

import (
	"context"
	"errors"
	"testing"
)

type fakeClaimStore struct {
	claims   map[string]map[string]interface{}
	getErr   error
	setErr   error
	setCalls int
}

func newFakeClaimStore() *fakeClaimStore {
	return &fakeClaimStore{claims: map[string]map[string]interface{}{}}
}

func (f *fakeClaimStore) GetClaims(ctx context.Context, uid string) (map[string]interface{}, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if c, ok := f.claims[uid]; ok {
		out := map[string]interface{}{}
		for k, v := range c {
			out[k] = v
		}
		return out, nil
	}
	return map[string]interface{}{}, nil
}

func (f *fakeClaimStore) SetClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.claims[uid] = claims
	return nil
}

type fakeProfileStore struct {
	adminFlags map[string]bool
	mergeErr   error
	mergeCalls int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{adminFlags: map[string]bool{}}
}

func (f *fakeProfileStore) MergeAdminFlag(ctx context.Context, uid string, admin bool) error {
	f.mergeCalls++
	if f.mergeErr != nil {
		return f.mergeErr
	}
	f.adminFlags[uid] = admin
	return nil
}

func TestSetAdminClaimUpdatesBothStores(t *testing.T) {
	claims := newFakeClaimStore()
	profiles := newFakeProfileStore()
	svc := NewAdminClaimService(claims, profiles)

	if err := svc.SetAdminClaim(context.Background(), "uid-1", true); err != nil {
		t.Fatalf("SetAdminClaim: %v", err)
	}

	if got := claims.claims["uid-1"]["admin"]; got != true {
		t.Errorf("claim set admin = %v, want true", got)
	}
	if !profiles.adminFlags["uid-1"] {
		t.Error("profile mirror isAdmin = false, want true")
	}
}

func TestSetAdminClaimRevoke(t *testing.T) {
	claims := newFakeClaimStore()
	claims.claims["uid-1"] = map[string]interface{}{"admin": true, "beta": true}
	profiles := newFakeProfileStore()
	profiles.adminFlags["uid-1"] = true
	svc := NewAdminClaimService(claims, profiles)

	if err := svc.SetAdminClaim(context.Background(), "uid-1", false); err != nil {
		t.Fatalf("SetAdminClaim: %v", err)
	}

	if got := claims.claims["uid-1"]["admin"]; got != false {
		t.Errorf("claim set admin = %v, want false", got)
	}
	// Unrelated claims survive the merge.
	if got := claims.claims["uid-1"]["beta"]; got != true {
		t.Errorf("claim set beta = %v, want true", got)
	}
	if profiles.adminFlags["uid-1"] {
		t.Error("profile mirror isAdmin = true, want false")
	}
}

func TestSetAdminClaimReadFailureWritesNothing(t *testing.T) {
	claims := newFakeClaimStore()
	claims.getErr = errors.New("store down")
	profiles := newFakeProfileStore()
	svc := NewAdminClaimService(claims, profiles)

	if err := svc.SetAdminClaim(context.Background(), "uid-1", true); err == nil {
		t.Fatal("SetAdminClaim succeeded despite claim read failure")
	}
	if claims.setCalls != 0 {
		t.Errorf("claim set writes = %d, want 0", claims.setCalls)
	}
	if profiles.mergeCalls != 0 {
		t.Errorf("mirror writes = %d, want 0", profiles.mergeCalls)
	}
}

func TestSetAdminClaimMirrorFailureReportsDivergence(t *testing.T) {
	claims := newFakeClaimStore()
	profiles := newFakeProfileStore()
	profiles.mergeErr = errors.New("users collection unavailable")
	svc := NewAdminClaimService(claims, profiles)

	err := svc.SetAdminClaim(context.Background(), "uid-1", true)
	if !errors.Is(err, ErrClaimMirrorDivergence) {
		t.Fatalf("SetAdminClaim error = %v, want ErrClaimMirrorDivergence", err)
	}
	// The claim write already happened; the caller must learn the copies
	// disagree rather than see plain success or plain failure.
	if got := claims.claims["uid-1"]["admin"]; got != true {
		t.Errorf("claim set admin = %v, want true", got)
	}
}
