package upstream

import "encoding/json"

// UnwrapEnvelope returns the record inside an API response body. The
// external API is inconsistent about wrapping: some endpoints return the
// bare record, others {data: record}. The single rule applied everywhere:
// prefer the "data" field when it is present and object-shaped, else the
// body itself. A nil body stays nil.
func UnwrapEnvelope(body map[string]any) map[string]any {
	if body == nil {
		return nil
	}
	if data, ok := body["data"].(map[string]any); ok {
		return data
	}
	return body
}

// DecodeRecord decodes a single-record response into T, accepting both the
// bare record and the {data: record} envelope.
func DecodeRecord[T any](res *Response) (*T, error) {
	raw := []byte(res.Raw)

	if res.Body != nil {
		if _, ok := res.Body["data"].(map[string]any); ok {
			var wrapped struct {
				Data *T `json:"data"`
			}
			if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
				return wrapped.Data, nil
			}
		}
	}

	var bare T
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, &UpstreamError{Status: res.Status, Body: res.Raw, Message: "unexpected record shape"}
	}
	return &bare, nil
}

// DecodeList decodes a collection response into []T, accepting both the
// bare array and the {data: [...]} envelope.
func DecodeList[T any](res *Response) ([]T, error) {
	raw := []byte(res.Raw)

	if res.Body != nil {
		if _, ok := res.Body["data"]; ok {
			var wrapped struct {
				Data []T `json:"data"`
			}
			if err := json.Unmarshal(raw, &wrapped); err == nil {
				// An explicit null data field reads as an empty collection.
				return wrapped.Data, nil
			}
		}
	}

	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	return nil, &UpstreamError{Status: res.Status, Body: res.Raw, Message: "unexpected collection shape"}
}
