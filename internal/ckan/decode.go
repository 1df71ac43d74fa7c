// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ckan

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// DecodeObjectList decodes a field that is supposed to be a JSON string
// containing a list of objects (the author/maintainer convention). It is
// deliberately forgiving and never fails:
//
//   - a missing field, a non-string field, or a string that is not valid
//     JSON yields an empty list;
//   - a JSON array yields its elements in order;
//   - a single JSON object yields a one-element list;
//   - any scalar (number, string, boolean, null) yields an empty list.
func DecodeObjectList(raw json.RawMessage) []gjson.Result {
	if len(raw) == 0 {
		return nil
	}

	// The field itself must be a JSON string; anything else is junk.
	var embedded string
	if err := json.Unmarshal(raw, &embedded); err != nil {
		return nil
	}
	if embedded == "" || !gjson.Valid(embedded) {
		return nil
	}

	parsed := gjson.Parse(embedded)
	switch {
	case parsed.IsArray():
		return parsed.Array()
	case parsed.IsObject():
		return []gjson.Result{parsed}
	default:
		return nil
	}
}
