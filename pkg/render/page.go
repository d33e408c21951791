package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/controls/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Styles contains inline CSS styles
	Styles []string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Scripts contains script tags rendered at the end of the body
	Scripts []ScriptTag

	// SessionID identifies the live session the page is bound to.
	// Empty for static pages.
	SessionID string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := r.renderDocumentStart(w, page); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	return r.renderDocumentEnd(w, page)
}

func (r *Renderer) renderDocumentStart(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	_, err := io.WriteString(w, "<body>\n")
	return err
}

func (r *Renderer) renderDocumentEnd(w io.Writer, page PageData) error {
	if page.SessionID != "" {
		if _, err := fmt.Fprintf(w, "\n  <script>window.__VANGO_SESSION__=\"%s\";</script>\n",
			escapeAttr(page.SessionID)); err != nil {
			return err
		}
	}
	for _, script := range page.Scripts {
		if err := r.renderScriptTag(w, script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n"+
		`  <meta charset="utf-8">`+"\n"+
		`  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

func (r *Renderer) renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "  <script"); err != nil {
		return err
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, escapeAttr(script.Src)); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, ">%s</script>\n", script.Inline); err != nil {
		return err
	}
	return nil
}
