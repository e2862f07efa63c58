// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternalServer   = errors.New("internal server error")
	ErrForbidden        = errors.New("forbidden")
	ErrConflict         = errors.New("resource conflict") // 重複エラー用
	ErrStoreUnavailable = errors.New("progress store unavailable")
	// ErrShapeMismatch は高速集計パスが想定外の形を返した場合の内部エラー。
	// クライアントには出さず、手動集計へのフォールバックのトリガーとしてのみ使う。
	ErrShapeMismatch = errors.New("aggregation shape mismatch")
)

// AppError はエラーコード・ユーザー向けメッセージ・対象フィールドを持つ
// アプリケーションエラーです。元のエラーをラップします。
type AppError struct {
	Code   string      `json:"code"`
	Detail ErrorDetail `json:"-"`
	err    error
}

// ErrorDetail はAPIエラーレスポンスに含める詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code: code,
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Message + ": " + e.err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
