package domain

import "fmt"

type Kind string

const (
	KindStatic  Kind = "static"
	KindRuntime Kind = "runtime"
	KindImage   Kind = "image"
)

const NamePrefix = "examprep"

// NamespaceName derives the cache name for kind at version. Names are exact,
// so a stale namespace is any name not produced for the current version.
func NamespaceName(kind Kind, version string) string {
	return fmt.Sprintf("%s-%s-%s", NamePrefix, kind, version)
}

type Namespaces struct {
	Version string
	Static  string
	Runtime string
	Image   string
}

func NamespacesFor(version string) Namespaces {
	return Namespaces{
		Version: version,
		Static:  NamespaceName(KindStatic, version),
		Runtime: NamespaceName(KindRuntime, version),
		Image:   NamespaceName(KindImage, version),
	}
}

// All lists the namespaces in lookup order.
func (n Namespaces) All() []string {
	return []string{n.Static, n.Runtime, n.Image}
}

func (n Namespaces) Contains(name string) bool {
	for _, v := range n.All() {
		if v == name {
			return true
		}
	}
	return false
}
