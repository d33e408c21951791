package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/controls/internal/errors"
	"github.com/vango-dev/controls/internal/gallery"
	"github.com/vango-dev/controls/internal/publish"
	"github.com/vango-dev/controls/pkg/assets"
)

const maxObjectSize = 8 << 20

func publishCmd(a *app) *cobra.Command {
	var (
		dir      string
		bucket   string
		prefix   string
		region   string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the rendered gallery",
		Long: `Render the gallery and upload index.html, a fingerprinted
controls.css and manifest.json to a directory or an S3 bucket. A
bucket wins over a directory.

S3 credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  vango-controls publish --dir=dist
  vango-controls publish --bucket=site --prefix=controls --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s3cfg := &a.cfg.Publish.S3
			if dir != "" {
				a.cfg.Publish.Dir = dir
			}
			if bucket != "" {
				s3cfg.Bucket = bucket
			}
			if prefix != "" {
				s3cfg.Prefix = prefix
			}
			if region != "" {
				s3cfg.Region = region
			}
			if endpoint != "" {
				s3cfg.Endpoint = endpoint
			}
			if err := a.validate(); err != nil {
				return err
			}

			p, target, err := newPublisher(a)
			if err != nil {
				return err
			}
			if err := runPublish(cmd.Context(), a, p); err != nil {
				return err
			}
			success("Published to %s", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from controls.yaml)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "S3 region")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")

	return cmd
}

// newPublisher picks the publish target of the configuration and describes
// it for the user.
func newPublisher(a *app) (publish.Publisher, string, error) {
	cfg := a.cfg.Publish
	switch {
	case cfg.S3.Bucket != "":
		client := publish.NewS3Client(publish.S3ClientOptions{
			Region:   cfg.S3.Region,
			Endpoint: cfg.S3.Endpoint,
		})
		target := "s3://" + cfg.S3.Bucket
		if p := strings.Trim(cfg.S3.Prefix, "/"); p != "" {
			target += "/" + p
		}
		return publish.NewS3Publisher(client, cfg.S3.Bucket, cfg.S3.Prefix, maxObjectSize), target, nil
	case cfg.Dir != "":
		p, err := publish.NewDiskPublisher(cfg.Dir, maxObjectSize)
		if err != nil {
			return nil, "", errors.New("P402").Wrap(err)
		}
		return p, p.Dir(), nil
	default:
		return nil, "", errors.New("P401")
	}
}

func runPublish(ctx context.Context, a *app, p publish.Publisher) error {
	manifest := assets.NewManifest()
	css := []byte(gallery.CSS)
	cssName := manifest.Fingerprint("controls.css", css)

	page, err := gallery.Render(ctx, a.cfg.Gallery.Title,
		assets.NewResolver(manifest, "").Asset("controls.css"))
	if err != nil {
		return errors.New("R201").Wrap(err)
	}

	var mf bytes.Buffer
	if _, err := manifest.WriteTo(&mf); err != nil {
		return errors.New("P402").Wrap(err)
	}

	objects := []publish.Object{
		{Name: cssName, ContentType: "text/css; charset=utf-8", Body: css},
		{Name: "manifest.json", ContentType: "application/json", Body: mf.Bytes()},
		{Name: "index.html", ContentType: "text/html; charset=utf-8", Body: page},
	}
	if err := publish.All(ctx, p, objects...); err != nil {
		return errors.New("P402").Wrap(err)
	}
	for _, o := range objects {
		a.logger.Info("published", "name", o.Name, "bytes", len(o.Body))
	}
	return nil
}
