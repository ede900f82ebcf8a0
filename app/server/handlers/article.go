package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/repository"
	"krishi-sathi/app/server/types"
	"krishi-sathi/app/server/utils"
	"net/http"
)

const wordsPerMinute = 200

// readTime 按每分钟 200 词估算，至少 1 分钟
func readTime(content string) int {
	words := utils.CountWords(content)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func articleInfo(article *models.Article) types.ArticleInfo {
	return types.ArticleInfo{
		ID:         article.ID,
		Title:      article.Title,
		Category:   article.Category,
		Content:    article.Content,
		CoverImage: article.CoverImage,
		ReadTime:   article.ReadTime,
		Views:      article.Views,
		Author:     userBrief(&article.Author),
		CreatedAt:  article.CreatedAt,
		UpdatedAt:  article.UpdatedAt,
	}
}

func (a *App) articleMapFields(req *types.ArticleUpdateRequest, article *models.Article) {
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Content != nil {
		article.Content = *req.Content
		article.ReadTime = readTime(article.Content)
	}
	if req.CoverImage != nil {
		article.CoverImage = *req.CoverImage
	}
}

func (a *App) ArticleCreate(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ArticleCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	article := models.Article{
		Title:      req.Title,
		Category:   req.Category,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		ReadTime:   readTime(req.Content),
		AuthorID:   user.ID,
		Author:     *user,
	}
	if err := a.stores.Articles.Create(rctx, &article); err != nil {
		return a.er(c, err)
	}

	info := articleInfo(&article)
	return c.JSON(http.StatusCreated, &types.ArticleResponse{
		Success: true,
		Message: "Article created successfully",
		Article: &info,
	})
}

func (a *App) listArticles(c echo.Context, filter repository.ArticleFilter) error {
	rctx := c.Request().Context()

	page, err := a.page(c)
	if err != nil {
		return a.er(c, err)
	}

	articles, count, err := a.stores.Articles.List(rctx, filter, page)
	if err != nil {
		return a.er(c, err)
	}

	resArticles := []types.ArticleInfo{}
	for i := range articles {
		resArticles = append(resArticles, articleInfo(&articles[i]))
	}

	limit, pageMax := a.listMeta(page, count)
	return c.JSON(http.StatusOK, &types.ArticleListResponse{
		Success:  true,
		Limit:    limit,
		PageMax:  pageMax,
		Articles: resArticles,
	})
}

func (a *App) ArticleList(c echo.Context) error {
	return a.listArticles(c, repository.ArticleFilter{
		Category: c.QueryParam("category"),
	})
}

func (a *App) ArticleListMine(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	return a.listArticles(c, repository.ArticleFilter{
		Category: c.QueryParam("category"),
		AuthorID: user.ID,
	})
}

func (a *App) ArticleGet(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return a.er(c, err)
	}

	article, err := a.stores.Articles.FindByID(c.Request().Context(), id)
	if err != nil {
		return a.er(c, err)
	}

	info := articleInfo(article)
	return c.JSON(http.StatusOK, &types.ArticleResponse{
		Success: true,
		Article: &info,
	})
}

// findOwnArticle 加载文章并检查修改权限：作者、管理员与版主
func (a *App) findOwnArticle(c echo.Context) (*models.Article, error) {
	user, err := a.currentUser(c)
	if err != nil {
		return nil, err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return nil, err
	}

	article, err := a.stores.Articles.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}

	if !canModify(user, article.AuthorID, models.RoleAdmin, models.RoleModerator) {
		return nil, fmt.Errorf("user %d modifying article %d: %w", user.ID, id, errs.ErrForbidden)
	}
	return article, nil
}

func (a *App) ArticleUpdate(c echo.Context) error {
	article, err := a.findOwnArticle(c)
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req types.ArticleUpdateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	a.articleMapFields(&req, article)

	if err := a.stores.Articles.Update(c.Request().Context(), article); err != nil {
		return a.er(c, err)
	}

	info := articleInfo(article)
	return c.JSON(http.StatusOK, &types.ArticleResponse{
		Success: true,
		Message: "Article updated",
		Article: &info,
	})
}

func (a *App) ArticleDelete(c echo.Context) error {
	article, err := a.findOwnArticle(c)
	if err != nil {
		return a.er(c, err)
	}

	if err := a.stores.Articles.Delete(c.Request().Context(), article.ID); err != nil {
		return a.er(c, err)
	}

	return c.JSON(http.StatusOK, &types.Response{
		Success: true,
		Message: "Article deleted",
	})
}
