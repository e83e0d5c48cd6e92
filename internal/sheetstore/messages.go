package sheetstore

import "lifeops-backend/internal/apperr"

// User-facing failure messages
const (
	MsgSpreadsheetNotFound = "스프레드시트를 찾을 수 없습니다"
	MsgLoadFailed          = "데이터를 읽는 중 오류가 발생했습니다"
	MsgAddFailed           = "데이터를 저장하는 중 오류가 발생했습니다"
	MsgUpdateFailed        = "데이터를 업데이트하는 중 오류가 발생했습니다"
	MsgDeleteFailed        = "데이터를 삭제하는 중 오류가 발생했습니다"
)

// NotFound reports an unknown id under a user-facing message; errors.Is still
// matches ErrNotFound
func NotFound(msg, id string) error {
	return apperr.Fail(msg, notFound(id))
}
