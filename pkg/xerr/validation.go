package xerr

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FromBindError 把 gin 绑定/校验错误转换为 400，消息取第一个失败字段。
// messages 的 key 可以是 "Field.tag" 或 "Field"，都没有命中时使用通用参数错误
func FromBindError(err error, messages map[string]string) *CodeError {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return New(BadRequest, msg)
		}
		if msg, ok := messages[fe.Field()]; ok {
			return New(BadRequest, msg)
		}
		return New(BadRequest, fe.Field()+" is invalid")
	}
	return ErrParam
}
