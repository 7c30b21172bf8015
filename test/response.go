package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"team-checkin-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// DecodeJSON 解码响应体到 target
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	require.NoError(t, json.NewDecoder(w.Body).Decode(target))
}

// ErrorEqual 断言响应是指定的预定义错误：状态码、code、error 文案全部一致
func ErrorEqual(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) {
	require.Equal(t, expected.Status, w.Code)
	var body response.ErrorBody
	DecodeJSON(t, w, &body)
	require.Equal(t, expected.Kind, body.Code)
	require.Equal(t, expected.Message, body.Error)
}
