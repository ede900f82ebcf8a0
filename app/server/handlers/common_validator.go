package handlers

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"slices"
)

// Validator 通过 echo 的 Validator 接口接入 go-playground/validator
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 分类名称里有空格，不能直接用 oneof
	for tag, allowed := range map[string][]string{
		"article_category": models.ArticleCategories,
		"forum_category":   models.ForumCategories,
		"product_category": models.ProductCategories,
	} {
		mustRegister(v, tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(allowed, fl.Field().String())
		})
	}
	mustRegister(v, "user_role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

// mustRegister 注册失败说明标签写错了，启动时直接 panic
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Errorf("register validation %q: %w", tag, err))
	}
}

func (cv *Validator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	return nil
}

// bind 绑定请求体并校验字段
func (a *App) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("bind request: %w: %v", errs.ErrValidation, err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}
