package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// apiErrorDTO is the API's error schema: {"code": 40410000, "message": "..."}.
type apiErrorDTO struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// decodeResponse maps the response onto exactly one of: a decoded value in
// out, an *APIError, an *UnclassifiedAPIError, or a *DecodingError. Unknown
// body fields are tolerated for forward compatibility; a shape mismatch on a
// 2xx body is a DecodingError and is never retried.
func decodeResponse(res *http.Response, out interface{}) error {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &DecodingError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out == nil || len(body) == 0 {
			// e.g. 204 from DELETE endpoints
			return nil
		}

		if err := json.Unmarshal(body, out); err != nil {
			return &DecodingError{Err: fmt.Errorf("failed to unmarshal response body %q: %w", truncate(body, 256), err)}
		}

		return nil
	}

	var dto apiErrorDTO
	if err := json.Unmarshal(body, &dto); err == nil && dto.Message != "" {
		return &APIError{
			StatusCode: res.StatusCode,
			Code:       dto.Code,
			Message:    dto.Message,
			RetryAfter: retryAfterHint(res.Header, time.Now()),
		}
	}

	return &UnclassifiedAPIError{
		StatusCode: res.StatusCode,
		Body:       string(truncate(body, 1024)),
	}
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}

	return b[:n]
}
