package ads

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Growth-8020/free-scripts/internal/entity"
)

// Flatten turns one nested search result into a flat field-path record,
// e.g. {"campaign":{"name":"x"}} -> {"campaign.name":"x"}. Scalar values
// are kept as their wire string form so downstream parsing stays lenient.
func Flatten(result map[string]interface{}) entity.RawRecord {
	rec := make(entity.RawRecord)
	flattenInto(rec, "", result)
	return rec
}

func flattenInto(rec entity.RawRecord, prefix string, v interface{}) {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, child := range val {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			flattenInto(rec, path, child)
		}
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if _, nested := item.(map[string]interface{}); nested {
				continue
			}
			parts = append(parts, scalarString(item))
		}
		if len(parts) > 0 {
			rec[prefix] = strings.Join(parts, ", ")
		}
	case nil:
		// missing field, leave unset
	default:
		rec[prefix] = scalarString(val)
	}
}

func scalarString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(val)
	}
}
