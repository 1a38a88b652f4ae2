package dsl

import (
	openapi3 "github.com/reoring/openapi3"
	"github.com/reoring/openapi3/i18n"
	"github.com/reoring/openapi3/internal/pathtmpl"
	"github.com/reoring/openapi3/spec"
)

// ServerVar declares one substitution variable of a server URL template.
type ServerVar struct {
	Name        string
	Default     string
	Description string
	Enum        []string
}

// Var is shorthand for a ServerVar with a name and default.
func Var(name, def string) ServerVar {
	return ServerVar{Name: name, Default: def}
}

// newServer builds a server entry, enforcing the variable bijection rule:
// the declared variable names must be exactly the set of {placeholder}
// names in the URL.
func newServer(url, description string, vars []ServerVar) (*spec.Server, error) {
	_, placeholders, err := pathtmpl.Parse(url)
	if err != nil {
		return nil, serverVarErr(url, map[string]any{"cause": err.Error()})
	}
	inURL := make(map[string]bool, len(placeholders))
	var urlNames []string
	for _, p := range placeholders {
		if p.TypeName != "" {
			return nil, serverVarErr(url, map[string]any{"placeholder": p.Name})
		}
		if !inURL[p.Name] {
			urlNames = append(urlNames, p.Name)
		}
		inURL[p.Name] = true
	}
	declared := make(map[string]bool, len(vars))
	for _, v := range vars {
		if !inURL[v.Name] {
			return nil, serverVarErr(url, map[string]any{"extra": v.Name})
		}
		declared[v.Name] = true
	}
	for _, name := range urlNames {
		if !declared[name] {
			return nil, serverVarErr(url, map[string]any{"missing": name})
		}
	}

	s := &spec.Server{URL: url, Description: description}
	if len(vars) > 0 {
		vm := spec.NewMap[*spec.ServerVariable]()
		for _, v := range vars {
			vm.Set(v.Name, &spec.ServerVariable{
				Default:     v.Default,
				Enum:        v.Enum,
				Description: v.Description,
			})
		}
		s.Variables = vm
	}
	return s, nil
}

func serverVarErr(url string, params map[string]any) error {
	return openapi3.Issues{{
		Path:    "/servers",
		Code:    openapi3.CodeServerVariableMismatch,
		Message: i18n.T(openapi3.CodeServerVariableMismatch, nil),
		Hint:    "declare exactly the variables that appear as {placeholders} in " + url,
		Params:  params,
	}}
}
