package storage

import (
	"context"
	"path"
	"strings"
)

// BlobIndex answers whether a stored object exists. The GridFS bucket is the
// production implementation; tests plug in fakes.
type BlobIndex interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// FolderForType maps a product-type discriminator to its storage folder.
func FolderForType(ptype string) string {
	switch strings.ToLower(ptype) {
	case "vaccine", "vaccines":
		return "products"
	case "bundle", "bundles":
		return "bundles"
	case "package", "packages":
		return "packages"
	case "":
		return "general"
	default:
		return strings.ToLower(ptype)
	}
}

// FallbackForType returns the placeholder shown when an image cannot be
// resolved.
func FallbackForType(ptype string) string {
	switch strings.ToLower(ptype) {
	case "vaccine", "vaccines":
		return "💉"
	case "bundle", "bundles":
		return "📦"
	case "package", "packages":
		return "🎁"
	default:
		return "🏥"
	}
}

// ImageStore resolves stored bare filenames into public download URLs.
type ImageStore struct {
	index   BlobIndex
	baseURL string
}

func NewImageStore(index BlobIndex, baseURL string) *ImageStore {
	return &ImageStore{index: index, baseURL: strings.TrimRight(baseURL, "/")}
}

// ResolveImageURL maps (fileName, type) to a download URL. Any failure —
// empty name, missing object, store error — degrades to the type's fallback
// placeholder. It never returns an error.
func (s *ImageStore) ResolveImageURL(ctx context.Context, fileName, ptype string) string {
	if fileName == "" {
		return FallbackForType(ptype)
	}

	// Stored values are bare filenames; strip anything that looks like a path.
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return FallbackForType(ptype)
	}

	name := FolderForType(ptype) + "/" + base
	ok, err := s.index.Exists(ctx, name)
	if err != nil || !ok {
		return FallbackForType(ptype)
	}
	return s.baseURL + "/images/" + name
}
