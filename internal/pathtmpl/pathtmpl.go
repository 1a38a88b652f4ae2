// Package pathtmpl scans format-string style templates used for URL paths
// and server URLs: literal text with {name} or {name:TypeName} placeholder
// runs. It does no type resolution; callers decide what a TypeName means.
package pathtmpl

import (
	"fmt"
	"strings"
)

// Param is one placeholder found in a template. TypeName is empty for bare
// {name} placeholders.
type Param struct {
	Name     string
	TypeName string
}

// Parse scans template and returns the normalized form (":TypeName"
// suffixes stripped, leaving bare {name} tokens) together with the
// placeholders in order of appearance.
func Parse(template string) (string, []Param, error) {
	var (
		out    strings.Builder
		params []Param
	)
	s := template
	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			if strings.IndexByte(s, '}') >= 0 {
				return "", nil, fmt.Errorf("unmatched '}' in %q", template)
			}
			out.WriteString(s)
			break
		}
		out.WriteString(s[:open])
		rest := s[open+1:]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", nil, fmt.Errorf("unclosed '{' in %q", template)
		}
		run := rest[:end]
		if strings.IndexByte(run, '{') >= 0 {
			return "", nil, fmt.Errorf("nested '{' in %q", template)
		}
		name, typeName := run, ""
		if i := strings.IndexByte(run, ':'); i >= 0 {
			name, typeName = run[:i], run[i+1:]
		}
		if name == "" {
			return "", nil, fmt.Errorf("empty placeholder name in %q", template)
		}
		params = append(params, Param{Name: name, TypeName: typeName})
		out.WriteString("{")
		out.WriteString(name)
		out.WriteString("}")
		s = rest[end+1:]
	}
	return out.String(), params, nil
}
