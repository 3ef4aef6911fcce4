package domain

import (
	"path"
	"strings"
)

type Class string

const (
	ClassImage    Class = "image"
	ClassDocument Class = "document"
	ClassOther    Class = "other"
)

var imageExt = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".svg": {}, ".webp": {}, ".ico": {}, ".avif": {},
}

// Classify decides the caching policy class from fetch metadata headers,
// falling back to the Accept header and the URL extension.
func Classify(req Request) Class {
	dest := strings.ToLower(req.Header.Get("Sec-Fetch-Dest"))
	mode := strings.ToLower(req.Header.Get("Sec-Fetch-Mode"))
	if dest == "image" {
		return ClassImage
	}
	if mode == "navigate" || dest == "document" {
		return ClassDocument
	}
	if req.URL != nil {
		if _, ok := imageExt[strings.ToLower(path.Ext(req.URL.Path))]; ok {
			return ClassImage
		}
	}
	if dest == "" && prefersHTML(req.Header.Get("Accept")) {
		return ClassDocument
	}
	return ClassOther
}

func prefersHTML(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mt := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if mt == "" {
			continue
		}
		return mt == "text/html" || mt == "application/xhtml+xml"
	}
	return false
}
