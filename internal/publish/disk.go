package publish

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

// DiskPublisher writes artifacts below a local directory.
//
// Each object is written atomically through a temporary file. Its content
// type is kept in a ".meta" sidecar so a static server can restore it.
type DiskPublisher struct {
	dir     string
	maxSize int64
}

type diskMeta struct {
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	PublishedAt time.Time `json:"published_at"`
}

// NewDiskPublisher creates a publisher writing below dir, creating it if
// needed. maxSize limits each object in bytes (0 = no limit).
func NewDiskPublisher(dir string, maxSize int64) (*DiskPublisher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskPublisher{dir: dir, maxSize: maxSize}, nil
}

// Dir returns the target directory.
func (p *DiskPublisher) Dir() string { return p.dir }

// Publish implements Publisher.
func (p *DiskPublisher) Publish(ctx context.Context, name, contentType string, body io.Reader) error {
	name, err := CleanName(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dest := filepath.Join(p.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".publish-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	var reader io.Reader = body
	if p.maxSize > 0 {
		reader = io.LimitReader(body, p.maxSize+1) // +1 to detect overflow
	}
	written, err := io.Copy(tmp, reader)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if p.maxSize > 0 && written > p.maxSize {
		return ErrTooLarge
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return err
	}
	return p.saveMeta(dest, &diskMeta{
		ContentType: contentType,
		Size:        written,
		PublishedAt: time.Now().UTC(),
	})
}

// ContentType returns the content type recorded for a published object.
func (p *DiskPublisher) ContentType(name string) (string, error) {
	name, err := CleanName(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(metaPath(filepath.Join(p.dir, filepath.FromSlash(name))))
	if err != nil {
		return "", err
	}
	var meta diskMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.ContentType, nil
}

func metaPath(dest string) string {
	return dest + ".meta"
}

func (p *DiskPublisher) saveMeta(dest string, meta *diskMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(metaPath(dest), data, 0o644)
}
