package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// decodeWithExtra unmarshals data into known, a pointer to a struct, and
// returns the members none of its json tags name. Those members are kept
// verbatim so loosely shaped documents survive insert unchanged.
func decodeWithExtra(data []byte, known interface{}) (bson.M, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var members map[string]interface{}
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for _, name := range jsonNames(reflect.TypeOf(known).Elem()) {
		delete(members, name)
	}
	if len(members) == 0 {
		return nil, nil
	}
	return bson.M(members), nil
}

// encodeWithExtra marshals known and adds the extra members next to its fields.
func encodeWithExtra(known interface{}, extra bson.M) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, taken := merged[k]; taken {
			continue
		}
		raw, err := json.Marshal(plain(v))
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}

func jsonNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" || !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// plain turns nested documents read back from MongoDB into maps, which
// encode as JSON objects rather than key/value arrays.
func plain(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[k] = plain(e)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[k] = plain(e)
		}
		return m
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plain(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}
