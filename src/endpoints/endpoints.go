// Package endpoints groups the API operations by resource. Every group is a
// thin parameter-marshaling wrapper holding a reference to the shared
// transport client; none of them keeps per-call state.
package endpoints

import (
	"net/url"
	"reflect"
	"time"

	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
)

var queryEncoder = newQueryEncoder()

func newQueryEncoder() *schema.Encoder {
	encoder := schema.NewEncoder()

	encoder.RegisterEncoder(time.Time{}, func(v reflect.Value) string {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return ""
		}

		return t.Format(time.RFC3339)
	})

	encoder.RegisterEncoder(decimal.Decimal{}, func(v reflect.Value) string {
		return v.Interface().(decimal.Decimal).String()
	})

	return encoder
}

// encodeQuery turns a request struct into query values. Zero-valued fields
// tagged omitempty are left out entirely so absent parameters never reach
// the wire as empty strings.
func encodeQuery(req interface{}) (url.Values, error) {
	query := url.Values{}
	if req == nil {
		return query, nil
	}

	if err := queryEncoder.Encode(req, query); err != nil {
		return nil, err
	}

	// schema leaves empty strings behind for custom-encoded zero values
	for key, values := range query {
		if len(values) == 1 && values[0] == "" {
			delete(query, key)
		}
	}

	return query, nil
}
