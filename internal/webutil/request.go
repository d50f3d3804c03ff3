package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go_lms_progress/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドは拒否します。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// DecodeAndValidate はボディをデコードしてバリデーションします。返すエラーは AppError です。
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(r, dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", err)
	}
	return ValidateStruct(dst)
}

// DecodeOptionalAndValidate は省略可能なボディを扱います。
// ボディが空 (chunked で中身がない場合を含む) ならデコードせずにゼロ値のまま検証します。
func DecodeOptionalAndValidate(r *http.Request, dst interface{}) error {
	if r.Body != nil && r.Body != http.NoBody {
		defer r.Body.Close()

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		}
	}
	return ValidateStruct(dst)
}

// ValidateStruct はバリデーションを行い、最初のエラーを日本語に翻訳した AppError を返します
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}
	return model.NewAppError("VALIDATION_ERROR", "リクエストの検証に失敗しました。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
}

// URLParamUUID は chi の URL パラメータを UUID として取得します
func URLParamUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := chi.URLParam(r, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_URL_PARAM", key+"の形式が正しくありません。", key, model.ErrInvalidInput)
	}
	return id, nil
}
