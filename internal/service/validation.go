package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/send-logistics/internal/constants"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			if label := field.Tag.Get("label"); label != "" {
				return label
			}
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
		_ = v.RegisterValidation("cnphone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("addrtype", func(fl validator.FieldLevel) bool {
			return constants.IsValidAddressType(fl.Field().String())
		})
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return constants.IsValidOrderStatus(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// IsValidPhone 判断是否为合法的大陆手机号
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// validateStruct 执行结构体校验，返回首个失败字段对应的 BadRequest 错误
func validateStruct(input interface{}) error {
	err := structValidator().Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return badRequest(fieldErrorMessage(fieldErrs[0]), err)
	}
	return badRequest("", err)
}

func fieldErrorMessage(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + "不能为空"
	case "min":
		return fmt.Sprintf("%s长度不能少于%s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s长度不能超过%s", label, fe.Param())
	case "cnphone":
		return label + "格式不正确"
	case "addrtype":
		return "地址类型只能是sender或receiver"
	case "orderstatus":
		return "订单状态无效"
	default:
		return label + "不合法"
	}
}
