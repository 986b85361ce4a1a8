package services

import "encoding/json"

// The ent schemas type every JSON column as a generic map or slice so the
// stored shape stays decoupled from the Go structs. These helpers round-trip
// between the two; they only fail on types that cannot marshal, which none
// of ours can.

func toJSONMap(v any) map[string]interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]interface{}{}
	}
	return m
}

func toJSONSlice(v any) []interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var s []interface{}
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	return s
}

func fromJSON(src any, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
