package upload

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/oklog/ulid/v2"
)

// Uploader stores one file stream and returns its durable retrieval URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename string) (string, error)
}

// Cloudinary uploads into a single folder with automatic resource-type
// detection, so PDFs and audio go through as safely as images.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(url, folder string) (*Cloudinary, error) {
	if url == "" {
		return nil, errors.New("CLOUDINARY_URL is not set")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       c.folder,
		ResourceType: "auto",
		PublicID:     publicID(filename),
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// publicID keys the object by a fresh ULID, keeping the original base
// name as a readable prefix.
func publicID(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "_" {
		return ulid.Make().String()
	}
	return base + "_" + ulid.Make().String()
}
