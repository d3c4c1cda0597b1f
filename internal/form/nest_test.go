package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhr/crm-console/internal/model"
)

func TestNestDottedKeys(t *testing.T) {
	flat := url.Values{
		"residence.city":    {"Budapest"},
		"residence.zipCode": {"1000"},
		"firstName":         {"Adam"},
	}

	nested, err := Nest(flat)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"firstName": "Adam",
		"residence": map[string]any{
			"city":    "Budapest",
			"zipCode": "1000",
		},
	}, nested)
}

func TestNestDeepKeys(t *testing.T) {
	nested, err := Nest(url.Values{"a.b.c.d.e": {"v"}})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{
					"d": map[string]any{"e": "v"},
				},
			},
		},
	}, nested)
}

func TestNestRepeatedKeyLastWins(t *testing.T) {
	nested, err := Nest(url.Values{"firstName": {"Adam", "Eva"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"firstName": "Eva"}, nested)
}

func TestNestRejectsLeafParentConflict(t *testing.T) {
	// "residence" as a value and "residence.city" as a parent cannot
	// both hold, whichever order the keys are visited in.
	_, err := Nest(url.Values{
		"residence":      {"Budapest"},
		"residence.city": {"Budapest"},
	})
	require.ErrorIs(t, err, ErrKeyConflict)

	_, err = Nest(url.Values{
		"a.b.c": {"v"},
		"a.b":   {"v"},
	})
	require.ErrorIs(t, err, ErrKeyConflict)
}

// Nesting then flattening by the same dot convention reproduces the
// original key/value set for non-conflicting inputs.
func TestNestFlattenRoundtrip(t *testing.T) {
	flat := url.Values{
		"firstName":               {"Adam"},
		"lastName":                {"Kovács"},
		"residence.city":          {"Budapest"},
		"residence.streetAddress": {"Fő utca 1."},
	}

	nested, err := Nest(flat)
	require.NoError(t, err)

	got := map[string]string{}
	flatten("", nested, got)

	want := map[string]string{}
	for k, vals := range flat {
		want[k] = vals[0]
	}
	assert.Equal(t, want, got)
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		}
	}
}

func TestDecodeCustomerRegistration(t *testing.T) {
	flat := url.Values{
		"firstName":      {"Adam"},
		"nickname":       {"Adi"},
		"residence.city": {"Budapest"},
	}

	var req model.CustomerRegistrationRequest
	require.NoError(t, Decode(flat, &req))

	assert.Equal(t, "Adam", req.FirstName)
	assert.Equal(t, "Adi", req.Nickname)
	require.NotNil(t, req.Residence)
	assert.Equal(t, "Budapest", req.Residence.City)
}
