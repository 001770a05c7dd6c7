package graphqltemplate

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"github.com/dolmen-go/jsonmap"
	"github.com/pkg/errors"
)

// Variables holds the variables sent along with a query. The zero value is
// absent and encodes as JSON null; once present it encodes as an object whose
// keys keep their insertion order.
type Variables struct {
	values  jsonmap.Ordered
	present bool
}

// NoVariables returns absent variables.
func NoVariables() Variables {
	return Variables{}
}

// NewVariables returns present, empty variables. They encode as {}.
func NewVariables() Variables {
	return Variables{
		values: jsonmap.Ordered{
			Data:  make(map[string]interface{}),
			Order: []string{},
		},
		present: true,
	}
}

// VariablesFromMap copies m into present variables with keys in sorted
// order. A nil map gives absent variables.
func VariablesFromMap(m map[string]interface{}) Variables {
	if m == nil {
		return NoVariables()
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := NewVariables()
	for _, k := range keys {
		vars.Set(k, m[k])
	}
	return vars
}

// VariablesFromJSON decodes a JSON object, keeping the key order of the
// object and of every object nested in it. Numbers keep their literal form.
// JSON null gives absent variables.
func VariablesFromJSON(b []byte) (Variables, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	root, err := decodeValue(dec)
	if err != nil {
		return NoVariables(), NewError(err, ErrDecodeVariables)
	}
	if _, err := dec.Token(); err != io.EOF {
		return NoVariables(), NewError(errors.New("unexpected data after variables"), ErrDecodeVariables)
	}
	switch root := root.(type) {
	case nil:
		return NoVariables(), nil
	case *jsonmap.Ordered:
		return Variables{values: *root, present: true}, nil
	}
	return NoVariables(), NewError(errors.New("variables must be a JSON object"), ErrDecodeVariables)
}

// decodeValue reads one JSON value from dec. Objects become *jsonmap.Ordered
// and arrays []interface{}.
func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('{'):
		obj := &jsonmap.Ordered{
			Data:  make(map[string]interface{}),
			Order: []string{},
		}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key := keyTok.(string)
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, ok := obj.Data[key]; !ok {
				obj.Order = append(obj.Order, key)
			}
			obj.Data[key] = value
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case json.Delim('['):
		list := []interface{}{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return tok, nil
}

// Set sets a variable. Replacing an existing key keeps its position.
// Setting a variable on absent variables makes them present.
// Set never writes to storage shared with a copy of v.
func (v *Variables) Set(key string, value interface{}) {
	data := make(map[string]interface{}, len(v.values.Data)+1)
	for k, val := range v.values.Data {
		data[k] = val
	}
	order := make([]string, len(v.values.Order), len(v.values.Order)+1)
	copy(order, v.values.Order)
	if _, ok := data[key]; !ok {
		order = append(order, key)
	}
	data[key] = value

	v.values = jsonmap.Ordered{Data: data, Order: order}
	v.present = true
}

// Get returns the value set for key.
func (v Variables) Get(key string) (interface{}, bool) {
	value, ok := v.values.Data[key]
	return value, ok
}

// Present reports whether the variables encode as an object rather than null.
func (v Variables) Present() bool {
	return v.present
}

// Len returns the number of variables.
func (v Variables) Len() int {
	return len(v.values.Order)
}

// Keys returns the variable names in encoding order.
func (v Variables) Keys() []string {
	return append([]string(nil), v.values.Order...)
}

func (v Variables) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return v.values.MarshalJSON()
}
