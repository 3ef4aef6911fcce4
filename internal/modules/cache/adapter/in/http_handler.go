package in

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"examprep/internal/modules/cache/dto"
)

const (
	ControlPrefix   = "/_controller/"
	maxRequestBytes = 8 << 20
)

// HTTPHandler turns every inbound request into a controller event and
// writes back the single reply.
type HTTPHandler struct {
	events chan<- dto.Event
	origin *url.URL
	logger *zap.Logger
}

func NewHTTPHandler(events chan<- dto.Event, origin string, logger *zap.Logger) (*HTTPHandler, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse origin: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPHandler{events: events, origin: u, logger: logger}, nil
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	var (
		ev    dto.Event
		reply <-chan dto.Result
	)
	if strings.HasPrefix(r.URL.Path, ControlPrefix) && !r.URL.IsAbs() {
		kind := dto.EventKind(strings.TrimPrefix(r.URL.Path, ControlPrefix))
		switch kind {
		case dto.EventSync, dto.EventPush, dto.EventNotificationClick:
		default:
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ev, reply = dto.NewEvent(kind)
		ev.Tag = r.URL.Query().Get("tag")
		ev.Payload = body
	} else {
		ev, reply = dto.NewEvent(dto.EventFetch)
		ev.Request = dto.Request{
			Method: r.Method,
			URL:    h.targetURL(r),
			Header: r.Header.Clone(),
			Body:   body,
		}
	}

	select {
	case h.events <- ev:
	case <-r.Context().Done():
		return
	}
	select {
	case res := <-reply:
		writeResponse(w, res.Response, h.logger)
	case <-r.Context().Done():
		h.logger.Debug("client went away before reply", zap.String("path", r.URL.Path))
	}
}

// targetURL keeps absolute-form requests as they are and resolves
// origin-form requests against the app origin.
func (h *HTTPHandler) targetURL(r *http.Request) string {
	if r.URL.IsAbs() {
		return r.URL.String()
	}
	ref := &url.URL{Path: r.URL.Path, RawPath: r.URL.RawPath, RawQuery: r.URL.RawQuery}
	return h.origin.ResolveReference(ref).String()
}

func writeResponse(w http.ResponseWriter, resp dto.Response, logger *zap.Logger) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(resp.Body) == 0 {
		return
	}
	if _, err := w.Write(resp.Body); err != nil {
		logger.Debug("write response failed", zap.Error(err))
	}
}
