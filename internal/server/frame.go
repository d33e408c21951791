package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vango-dev/controls/pkg/live"
	"github.com/vango-dev/controls/pkg/routepath"
	"github.com/vango-dev/controls/pkg/vango"
)

// Frame types sent by the client.
const (
	FrameClick    = "click"
	FrameMeasure  = "measure"
	FrameNavigate = "navigate"
)

// Frame types sent by the server.
const (
	FrameHTML  = "html"
	FrameError = "error"
)

// Event is a client frame.
type Event struct {
	Type   string `json:"type"`
	HID    string `json:"hid,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Path   string `json:"path,omitempty"`
}

// Reply is a server frame.
type Reply struct {
	Type  string `json:"type"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

func errorReply(err error) Reply {
	return Reply{Type: FrameError, Error: err.Error()}
}

// apply decodes one client frame, applies it to sess and returns the reply.
func apply(ctx context.Context, sess *live.Session, data []byte) Reply {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return errorReply(fmt.Errorf("server: bad frame: %w", err))
	}

	var err error
	switch ev.Type {
	case FrameClick:
		err = sess.Click(ctx, ev.HID, vango.MouseEvent{})
	case FrameMeasure:
		err = sess.Measure(ctx, ev.HID, ev.Width, ev.Height)
	case FrameNavigate:
		var path string
		if path, err = routepath.Nav(ev.Path); err != nil {
			err = fmt.Errorf("server: navigate %q: %w", ev.Path, err)
			break
		}
		err = sess.Navigate(ctx, path)
	default:
		err = fmt.Errorf("server: unknown frame type %q", ev.Type)
	}
	if err != nil {
		return errorReply(err)
	}
	return Reply{Type: FrameHTML, HTML: sess.HTML()}
}
