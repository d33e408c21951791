// Package publish writes the rendered gallery to a local directory or an
// S3 bucket.
//
//	p, err := publish.NewDiskPublisher("dist", 0)
//	if err != nil {
//	    return err
//	}
//	err = publish.All(ctx, p, publish.Object{
//	    Name:        "index.html",
//	    ContentType: "text/html; charset=utf-8",
//	    Body:        html,
//	})
package publish
