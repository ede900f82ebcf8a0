// Package repository 把 gorm 查询封装在小接口后面，会话校验与 handler 只依赖接口
package repository

import (
	"errors"
	"fmt"
	"gorm.io/gorm"
	"krishi-sathi/app/server/errs"
	"strings"
)

// Page 描述一次分页查询，All 为 true 时忽略 Offset 与 Limit
type Page struct {
	All    bool
	Offset int
	Limit  int
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.All {
		return db
	}
	return db.Limit(p.Limit).Offset(p.Offset)
}

// translate 把 gorm 的错误映射到统一的错误分类上
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", msg, errs.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", msg, errs.ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %v", msg, errs.ErrStore, err)
	}
}

// likePattern 生成大小写不敏感的包含匹配，并转义通配符
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
