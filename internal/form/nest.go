// Package form turns flat HTML form submissions into structured request
// objects. Field names use dots to denote nesting (residence.city).
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrKeyConflict is returned when one key addresses a node both as a leaf
// and as a parent (e.g. "residence" and "residence.city" both submitted).
var ErrKeyConflict = errors.New("conflicting form keys")

// Nest converts dotted form keys into nested maps: each dot-delimited
// segment becomes a nesting level, the final segment holds the value.
// Keys are processed independently and insertion order does not matter.
// For repeated keys the last submitted value wins.
func Nest(flat url.Values) (map[string]any, error) {
	nested := make(map[string]any)
	for key, vals := range flat {
		if len(vals) == 0 {
			continue
		}
		if err := insert(nested, key, vals[len(vals)-1]); err != nil {
			return nil, err
		}
	}
	return nested, nil
}

func insert(node map[string]any, key, value string) error {
	segs := strings.Split(key, ".")
	for i, seg := range segs {
		last := i == len(segs)-1
		existing, ok := node[seg]
		if last {
			if _, isMap := existing.(map[string]any); ok && isMap {
				return fmt.Errorf("%w: %q is already a parent", ErrKeyConflict, key)
			}
			node[seg] = value
			return nil
		}
		if !ok {
			child := make(map[string]any)
			node[seg] = child
			node = child
			continue
		}
		child, isMap := existing.(map[string]any)
		if !isMap {
			return fmt.Errorf("%w: %q is already a value", ErrKeyConflict, strings.Join(segs[:i+1], "."))
		}
		node = child
	}
	return nil
}

// Decode nests flat form data and decodes the result into out, matching
// segments against mapstructure tags.
func Decode(flat url.Values, out any) error {
	nested, err := Nest(flat)
	if err != nil {
		return err
	}
	return mapstructure.Decode(nested, out)
}
