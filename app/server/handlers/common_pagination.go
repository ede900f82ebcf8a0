package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/repository"
)

// pageQuery 读取 page 与 limit 查询参数，未出现的参数保持 nil
func pageQuery(c echo.Context) (page *uint, limit *uint, err error) {
	var p, l uint
	if err := echo.QueryParamsBinder(c).
		Uint("page", &p).
		Uint("limit", &l).
		BindError(); err != nil {
		return nil, nil, fmt.Errorf("bind pagination: %w", errs.ErrValidation)
	}
	if c.QueryParam("page") != "" {
		page = &p
	}
	if c.QueryParam("limit") != "" {
		limit = &l
	}
	return page, limit, nil
}

func (a *App) parsePagination(page *uint, limit *uint) (bool, int, int) {
	if page != nil && *page == 0 && limit != nil && *limit == 0 {
		// 特殊参数：展示全部
		return true, -1, -1
	}
	// 映射前：第几页，每页限制多少个
	// 映射后：页减一，限制不变
	var parsedPage, parsedLimit uint

	if page == nil || *page < 1 {
		parsedPage = 0
	} else {
		parsedPage = *page - 1
	}

	if limit == nil || *limit <= 0 {
		parsedLimit = constants.PageDefaultLimit
	} else if *limit > constants.PageMaxLimit {
		parsedLimit = constants.PageMaxLimit
	} else {
		parsedLimit = *limit
	}

	return false, int(parsedPage), int(parsedLimit)
}

// page 把查询参数转换成仓库层的分页描述
func (a *App) page(c echo.Context) (repository.Page, error) {
	page, limit, err := pageQuery(c)
	if err != nil {
		return repository.Page{}, err
	}

	showAll, p, l := a.parsePagination(page, limit)
	if showAll {
		return repository.Page{All: true}, nil
	}
	return repository.Page{Offset: p * l, Limit: l}, nil
}

func (a *App) calcMaxPage(count int64, showAll bool, limit int) int64 {
	if showAll {
		return 1
	} else {
		pageMax := count / int64(limit)
		if (count % int64(limit)) != 0 {
			pageMax++
		}
		return pageMax
	}
}

// listMeta 返回响应中的 limit 与 pageMax
func (a *App) listMeta(page repository.Page, count int64) (int, int64) {
	if page.All {
		return -1, a.calcMaxPage(count, true, 0)
	}
	return page.Limit, a.calcMaxPage(count, false, page.Limit)
}
