// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_lms_progress/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method string
	Path   string
	Body   interface{}
	// Actor が nil の場合は認証ヘッダーを付けません
	Actor   *model.Actor
	Headers map[string]string
}

// newRequest はテスト用リクエストを組み立てます。Body が string の場合はそのまま送信します。
func newRequest(t *testing.T, details httpRequestDetails) *http.Request {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req := httptest.NewRequest(details.Method, details.Path, reqBodyReader)
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.Actor != nil {
		req.Header.Set("X-User-ID", details.Actor.ID.String())
		req.Header.Set("X-User-Role", string(details.Actor.Role))
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}
	return req
}

// sendRequest はルーターにリクエストを送り、ステータスコードを検証します
func sendRequest(t *testing.T, handler http.Handler, details httpRequestDetails, expectedCode int) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(t, details))
	assert.Equal(t, expectedCode, rr.Code, "Status code mismatch: body=%s", rr.Body.String())
	return rr
}

// verifyErrorResponse はエラーレスポンスのコードを検証し、詳細を返します
func verifyErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedErrorCode string) model.ErrorDetail {
	t.Helper()

	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "Error response body not valid JSON: %s", rr.Body.String())
	if expectedErrorCode != "" {
		assert.Equal(t, expectedErrorCode, errResp.Error.Code)
	}
	assert.NotEmpty(t, errResp.Error.Message)
	return errResp.Error
}

// decodeBody は成功レスポンスのボディをデコードします
func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "Response body not valid JSON: %s", rr.Body.String())
	return v
}

func newActor(role model.Role) *model.Actor {
	return &model.Actor{ID: uuid.New(), Role: role}
}
