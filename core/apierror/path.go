package apierror

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kochabx/formkit/form"
)

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// ParsePath splits a field path such as "detalles[0].cantidad" into segments.
// Bracket indices and all-digit segments become index segments.
func ParsePath(path string) []form.Segment {
	parts := strings.Split(bracketIndex.ReplaceAllString(path, ".$1"), ".")

	segs := make([]form.Segment, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if isDigits(part) {
			if i, err := strconv.Atoi(part); err == nil {
				segs = append(segs, form.Index(i))
				continue
			}
		}
		segs = append(segs, form.Name(part))
	}
	return segs
}

// FindControl resolves path under root. The empty path is the root itself;
// a path with no usable segments resolves to nothing.
func FindControl(root form.Control, path string) (form.Control, bool) {
	if root == nil {
		return nil, false
	}
	if path == "" {
		return root, true
	}
	segs := ParsePath(path)
	if len(segs) == 0 {
		return nil, false
	}
	return form.Get(root, segs...)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
