package rules

import (
	"errors"
	"fmt"
	"strings"
)

// Violation is one failed check, located by a dotted path.
type Violation struct {
	Path string
	Msg  string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Msg
}

// Violations collects the outcome of a schema check. Empty means ok.
type Violations []Violation

// Check records err under path when it is not nil.
func (vs *Violations) Check(path string, err error) {
	if err != nil {
		*vs = append(*vs, Violation{Path: path, Msg: err.Error()})
	}
}

// CheckValue records err under path together with the offending value.
func (vs *Violations) CheckValue(path string, value any, err error) {
	if err != nil {
		*vs = append(*vs, Violation{Path: path, Msg: fmt.Sprintf("%v, got %#v", err, value)})
	}
}

// Nest records the violations of a sub-schema under prefix.
func (vs *Violations) Nest(prefix string, sub Violations) {
	for _, v := range sub {
		path := prefix
		switch {
		case v.Path == "":
		case strings.HasPrefix(v.Path, "["):
			path += v.Path
		default:
			path += "." + v.Path
		}
		*vs = append(*vs, Violation{Path: path, Msg: v.Msg})
	}
}

// OK reports whether no violation was recorded.
func (vs Violations) OK() bool {
	return len(vs) == 0
}

// Err joins all violations into one error, or returns nil.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return errors.New(strings.Join(parts, "; "))
}
