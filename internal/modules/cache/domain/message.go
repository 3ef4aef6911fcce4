package domain

import (
	"net/http"
	"net/url"
)

type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// Key is the cache key of the request: its URL without the fragment.
func (r Request) Key() string {
	return KeyOf(r.URL)
}

func KeyOf(u *url.URL) string {
	if u == nil {
		return ""
	}
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Clone copies the response so a stored copy and a returned copy never share
// header maps or body bytes.
func (r Response) Clone() Response {
	out := Response{Status: r.Status, Header: r.Header.Clone()}
	if r.Body != nil {
		out.Body = append([]byte(nil), r.Body...)
	}
	if out.Header == nil {
		out.Header = http.Header{}
	}
	return out
}

func textResponse(status int, contentType, body string) Response {
	h := http.Header{}
	h.Set("Content-Type", contentType)
	return Response{Status: status, Header: h, Body: []byte(body)}
}

// NotFound is served when a cache-first resource is neither cached nor
// reachable.
func NotFound() Response {
	return textResponse(http.StatusNotFound, "text/plain; charset=utf-8", "Not Found")
}

func BadGateway() Response {
	return textResponse(http.StatusBadGateway, "text/plain; charset=utf-8", "Bad Gateway")
}

const offlineHTML = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Offline</title></head>
<body><h1>You are offline</h1><p>Reconnect to continue studying.</p></body>
</html>
`

// OfflinePage is the built-in document used when neither the network, the
// exact cache entry, nor the cached offline document is available.
func OfflinePage() Response {
	return textResponse(http.StatusServiceUnavailable, "text/html; charset=utf-8", offlineHTML)
}
