package storage

import (
	"context"
	"errors"
	"testing"
)

type fakeBlobIndex struct {
	names map[string]bool
	err   error
}

func (f *fakeBlobIndex) Exists(ctx context.Context, name string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.names[name], nil
}

func TestFolderForType(t *testing.T) {
	tests := []struct {
		ptype string
		want  string
	}{
		{"vaccine", "products"},
		{"vaccines", "products"},
		{"bundle", "bundles"},
		{"bundles", "bundles"},
		{"package", "packages"},
		{"packages", "packages"},
		{"foo", "foo"},
		{"", "general"},
	}
	for _, tt := range tests {
		if got := FolderForType(tt.ptype); got != tt.want {
			t.Errorf("FolderForType(%q) = %q, want %q", tt.ptype, got, tt.want)
		}
	}
}

func TestResolveImageURLSuccess(t *testing.T) {
	index := &fakeBlobIndex{names: map[string]bool{"products/mmr.png": true}}
	store := NewImageStore(index, "https://api.example.com")

	got := store.ResolveImageURL(context.Background(), "mmr.png", "vaccine")
	want := "https://api.example.com/images/products/mmr.png"
	if got != want {
		t.Errorf("ResolveImageURL = %q, want %q", got, want)
	}
}

func TestResolveImageURLStripsPathComponents(t *testing.T) {
	index := &fakeBlobIndex{names: map[string]bool{"bundles/infant.png": true}}
	store := NewImageStore(index, "")

	got := store.ResolveImageURL(context.Background(), "../../uploads/infant.png", "bundle")
	if got != "/images/bundles/infant.png" {
		t.Errorf("ResolveImageURL = %q, want /images/bundles/infant.png", got)
	}
}

func TestResolveImageURLFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		ptype    string
		index    *fakeBlobIndex
		want     string
	}{
		{"empty file name", "", "vaccine", &fakeBlobIndex{names: map[string]bool{}}, "💉"},
		{"missing blob", "nope.png", "bundle", &fakeBlobIndex{names: map[string]bool{}}, "📦"},
		{"store error", "mmr.png", "package", &fakeBlobIndex{err: errors.New("down")}, "🎁"},
		{"unknown type missing", "x.png", "", &fakeBlobIndex{names: map[string]bool{}}, "🏥"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewImageStore(tt.index, "https://api.example.com")
			got := store.ResolveImageURL(context.Background(), tt.fileName, tt.ptype)
			if got != tt.want {
				t.Errorf("ResolveImageURL = %q, want %q", got, tt.want)
			}
		})
	}
}
