package browse

import (
	"net/url"
	"strings"
)

// ListPath is the address of the list in its default state.
const ListPath = "/"

const detailPrefix = "/tag/"

// Page identifies which view an address selects.
type Page int

const (
	PageList Page = iota
	PageDetail
)

// Route is a parsed navigable address.
type Route struct {
	Page Page
	Key  string // tag name, detail routes only
}

// DetailPath returns the address of the detail view for name. The name is
// embedded as a single escaped path segment.
func DetailPath(name string) string {
	return detailPrefix + url.PathEscape(name)
}

// ParseRoute maps an address to a route. Addresses are untrusted: anything
// that is not a well-formed detail address selects the list.
func ParseRoute(path string) Route {
	rest, ok := strings.CutPrefix(strings.TrimSpace(path), detailPrefix)
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return Route{Page: PageList}
	}
	key, err := url.PathUnescape(rest)
	if err != nil || key == "" {
		return Route{Page: PageList}
	}
	return Route{Page: PageDetail, Key: key}
}

// Path renders the route back into an address.
func (r Route) Path() string {
	if r.Page == PageDetail {
		return DetailPath(r.Key)
	}
	return ListPath
}

// Navigator moves the application to another address.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string)

// NavigateTo calls f(path).
func (f NavigatorFunc) NavigateTo(path string) {
	f(path)
}
