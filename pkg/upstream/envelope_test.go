package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want map[string]any
	}{
		{
			name: "wrapped record",
			body: map[string]any{"data": map[string]any{"id": float64(7)}},
			want: map[string]any{"id": float64(7)},
		},
		{
			name: "bare record",
			body: map[string]any{"id": float64(7), "title": "x"},
			want: map[string]any{"id": float64(7), "title": "x"},
		},
		{
			name: "data field not object-shaped",
			body: map[string]any{"data": "oops", "id": float64(1)},
			want: map[string]any{"data": "oops", "id": float64(1)},
		},
		{
			name: "nil body",
			body: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnwrapEnvelope(tt.body))
		})
	}
}

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodeRecord(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		res := &Response{
			Status: 200,
			Raw:    `{"data":{"id":7,"name":"seven"}}`,
			Body:   map[string]any{"data": map[string]any{"id": float64(7), "name": "seven"}},
		}
		got, err := DecodeRecord[record](res)
		require.NoError(t, err)
		assert.Equal(t, &record{ID: 7, Name: "seven"}, got)
	})

	t.Run("bare", func(t *testing.T) {
		res := &Response{
			Status: 200,
			Raw:    `{"id":3,"name":"three"}`,
			Body:   map[string]any{"id": float64(3), "name": "three"},
		}
		got, err := DecodeRecord[record](res)
		require.NoError(t, err)
		assert.Equal(t, &record{ID: 3, Name: "three"}, got)
	})

	t.Run("non-JSON body", func(t *testing.T) {
		res := &Response{Status: 200, Raw: "<html>not json</html>"}
		_, err := DecodeRecord[record](res)
		var upErr *UpstreamError
		require.ErrorAs(t, err, &upErr)
	})
}

func TestDecodeList(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		res := &Response{
			Status: 200,
			Raw:    `{"data":[{"id":1},{"id":2}]}`,
			Body:   map[string]any{"data": []any{}},
		}
		got, err := DecodeList[record](res)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 2, got[1].ID)
	})

	t.Run("null data reads as empty", func(t *testing.T) {
		res := &Response{
			Status: 200,
			Raw:    `{"data":null}`,
			Body:   map[string]any{"data": nil},
		}
		got, err := DecodeList[record](res)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("bare array", func(t *testing.T) {
		res := &Response{Status: 200, Raw: `[{"id":1}]`}
		got, err := DecodeList[record](res)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("neither shape", func(t *testing.T) {
		res := &Response{Status: 200, Raw: `"just a string"`}
		_, err := DecodeList[record](res)
		var upErr *UpstreamError
		require.ErrorAs(t, err, &upErr)
	})
}

func TestResponseMessage(t *testing.T) {
	res := &Response{Body: map[string]any{"message": "duplicate slug"}}
	assert.Equal(t, "duplicate slug", res.Message())

	assert.Empty(t, (&Response{}).Message())
	assert.Empty(t, (&Response{Body: map[string]any{"message": 42}}).Message())
}
