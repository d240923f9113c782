package source

import "strings"

var registry = map[string]Source{}

func Register(s Source) {
	registry[strings.ToLower(s.Name())] = s
}

func Get(name string) (Source, bool) {
	s, ok := registry[strings.ToLower(name)]
	return s, ok
}

// Resolve picks a source for target: http(s) URLs open live, anything else
// is read as HTML.
func Resolve(target string) Source {
	lower := strings.ToLower(strings.TrimSpace(target))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		s, _ := Get("live")
		return s
	}
	s, _ := Get("html")
	return s
}

func init() {
	Register(&HTMLSource{})
	Register(&LiveSource{})
}
