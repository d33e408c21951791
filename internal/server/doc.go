// Package server serves the gallery as a live page.
//
// Every GET of a page starts a live.Session and renders it into the
// response. The page's client script then opens a websocket on the
// configured path and forwards clicks, scroll-size measurements and
// navigations as JSON frames:
//
//	{"type":"click","hid":"h12"}
//	{"type":"measure","hid":"h40","width":320,"height":96}
//	{"type":"navigate","path":"/docs/collapse"}
//
// Each frame is answered with the re-rendered HTML of the session root or
// with an error:
//
//	{"type":"html","html":"<main ...>"}
//	{"type":"error","error":"live: node not found: h99"}
//
// A session lives as long as its socket. Sessions whose page never
// connects are closed after a timeout.
package server
