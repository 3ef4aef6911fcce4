package domain_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"examprep/internal/modules/cache/domain"
	apperrors "examprep/internal/platform/errors"
)

func request(t *testing.T, raw string, header map[string]string) domain.Request {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %s: %v", raw, err)
	}
	h := http.Header{}
	for k, v := range header {
		h.Set(k, v)
	}
	return domain.Request{Method: http.MethodGet, URL: u, Header: h}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		url    string
		header map[string]string
		want   domain.Class
	}{
		{"image destination", "http://app.test/avatar", map[string]string{"Sec-Fetch-Dest": "image"}, domain.ClassImage},
		{"image extension", "http://app.test/icons/icon-192.PNG", nil, domain.ClassImage},
		{"navigation", "http://app.test/quiz", map[string]string{"Sec-Fetch-Mode": "navigate"}, domain.ClassDocument},
		{"document destination", "http://app.test/", map[string]string{"Sec-Fetch-Dest": "document"}, domain.ClassDocument},
		{"accept html", "http://app.test/stats", map[string]string{"Accept": "text/html,application/xhtml+xml;q=0.9"}, domain.ClassDocument},
		{"accept html from script", "http://app.test/partial", map[string]string{"Accept": "text/html", "Sec-Fetch-Dest": "script"}, domain.ClassOther},
		{"script", "http://app.test/app.js", map[string]string{"Sec-Fetch-Dest": "script"}, domain.ClassOther},
		{"json", "http://app.test/questions.json", map[string]string{"Accept": "application/json"}, domain.ClassOther},
	}
	for _, tc := range cases {
		if got := domain.Classify(request(t, tc.url, tc.header)); got != tc.want {
			t.Fatalf("%s: Classify = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestRequestKeyDropsFragment(t *testing.T) {
	t.Parallel()
	req := request(t, "http://app.test/index.html?q=1#top", nil)
	if got := req.Key(); got != "http://app.test/index.html?q=1" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNamespacesFor(t *testing.T) {
	t.Parallel()
	ns := domain.NamespacesFor("v3")
	want := []string{"examprep-static-v3", "examprep-runtime-v3", "examprep-image-v3"}
	if diff := cmp.Diff(want, ns.All()); diff != "" {
		t.Fatalf("namespaces mismatch (-want +got):\n%s", diff)
	}
	if !ns.Contains("examprep-image-v3") || ns.Contains("examprep-image-v2") {
		t.Fatalf("Contains should match exact current names only")
	}
}

func TestStateTransitions(t *testing.T) {
	t.Parallel()
	path := []domain.State{domain.StateInstalling, domain.StateInstalled, domain.StateActive, domain.StateSuperseded, domain.StateTerminated}
	s := domain.StateNew
	for _, to := range path {
		next, err := s.Next(to)
		if err != nil {
			t.Fatalf("%s -> %s: %v", s, to, err)
		}
		s = next
	}
	if _, err := domain.StateNew.Next(domain.StateActive); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if _, err := domain.StateTerminated.Next(domain.StateActive); !errors.Is(err, apperrors.ErrInvalidTransition) {
		t.Fatalf("terminated must be final, got %v", err)
	}
	if domain.StateInstalled.Controls() || !domain.StateActive.Controls() {
		t.Fatalf("only the active state controls requests")
	}
}

func TestParsePush(t *testing.T) {
	t.Parallel()
	cases := []struct {
		payload string
		want    domain.Notification
	}{
		{`{"title":"Daily quiz","body":"10 new questions"}`, domain.Notification{Title: "Daily quiz", Body: "10 new questions"}},
		{`{"body":"Streak at risk","url":"http://app.test/quiz"}`, domain.Notification{Title: domain.DefaultNotificationTitle, Body: "Streak at risk", URL: "http://app.test/quiz"}},
		{"plain text reminder", domain.Notification{Title: domain.DefaultNotificationTitle, Body: "plain text reminder"}},
		{"", domain.Notification{Title: domain.DefaultNotificationTitle}},
		{"{broken", domain.Notification{Title: domain.DefaultNotificationTitle, Body: "{broken"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, domain.ParsePush([]byte(tc.payload))); diff != "" {
			t.Fatalf("ParsePush(%q) mismatch (-want +got):\n%s", tc.payload, diff)
		}
	}
}

func TestResponseCloneIsIndependent(t *testing.T) {
	t.Parallel()
	orig := domain.Response{Status: 200, Header: http.Header{"X-A": {"1"}}, Body: []byte("abc")}
	c := orig.Clone()
	c.Body[0] = 'z'
	c.Header.Set("X-A", "2")
	if string(orig.Body) != "abc" || orig.Header.Get("X-A") != "1" {
		t.Fatalf("clone shares state with original: %+v", orig)
	}
}
