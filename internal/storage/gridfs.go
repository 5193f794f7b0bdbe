package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSBlobs stores image blobs in a GridFS bucket named "images", with
// object names shaped <folder>/<basename>.
type GridFSBlobs struct {
	bucket *gridfs.Bucket
}

func NewGridFSBlobs(db *mongo.Database) (*GridFSBlobs, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("images"))
	if err != nil {
		return nil, err
	}
	return &GridFSBlobs{bucket: bucket}, nil
}

func (g *GridFSBlobs) Exists(ctx context.Context, name string) (bool, error) {
	cursor, err := g.bucket.FindContext(ctx, bson.M{"filename": name}, options.GridFSFind().SetLimit(1))
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)
	return cursor.Next(ctx), nil
}

// Upload stores the blob under folder with a uuid-prefixed basename and
// returns the bare stored filename (without the folder).
func (g *GridFSBlobs) Upload(ctx context.Context, folder, originalName string, r io.Reader) (string, error) {
	base := path.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "", fmt.Errorf("invalid file name %q", originalName)
	}
	stored := uuid.New().String() + "-" + base
	if _, err := g.bucket.UploadFromStream(folder+"/"+stored, r); err != nil {
		return "", err
	}
	return stored, nil
}

// Stream copies the named blob to w.
func (g *GridFSBlobs) Stream(ctx context.Context, name string, w io.Writer) error {
	_, err := g.bucket.DownloadToStreamByName(name, w)
	return err
}
