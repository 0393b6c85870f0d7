package quantum

import (
	"fmt"
	"reflect"

	"github.com/gophercloud/gophercloud/v2"
)

// envelope builds the single-field request body {"<key>": payload}.
func envelope(key string, payload any) map[string]any {
	return map[string]any{key: payload}
}

// unwrap selects the named field of a decoded response body into dst, which must point to a
// struct or a slice. It reports false when the field is present but null.
func unwrap(body map[string]any, key string, dst any) (bool, error) {
	field, ok := body[key]
	if !ok {
		return false, fmt.Errorf("response does not contain %q", key)
	}
	if field == nil {
		return false, nil
	}

	r := gophercloud.Result{Body: body}
	var err error
	if reflect.TypeOf(dst).Elem().Kind() == reflect.Slice {
		err = r.ExtractIntoSlicePtr(dst, key)
	} else {
		err = r.ExtractIntoStructPtr(dst, key)
	}
	if err != nil {
		return false, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}
