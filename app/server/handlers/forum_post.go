package handlers

import (
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/repository"
	"krishi-sathi/app/server/types"
	"net/http"
)

// 论坛分类筛选里代表全部的取值
const forumCategoryAll = "All"

func replyInfo(reply *models.ForumReply) types.ReplyInfo {
	return types.ReplyInfo{
		ID:        reply.ID,
		PostID:    reply.PostID,
		Message:   reply.Message,
		User:      userBrief(&reply.User),
		CreatedAt: reply.CreatedAt,
	}
}

func postInfo(post *models.ForumPost) types.PostInfo {
	replies := []types.ReplyInfo{}
	for i := range post.Replies {
		replies = append(replies, replyInfo(&post.Replies[i]))
	}

	return types.PostInfo{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		Category:  post.Category,
		Views:     post.Views,
		User:      userBrief(&post.User),
		Replies:   replies,
		CreatedAt: post.CreatedAt,
	}
}

func (a *App) ForumPostList(c echo.Context) error {
	rctx := c.Request().Context()

	page, err := a.page(c)
	if err != nil {
		return a.er(c, err)
	}

	filter := repository.PostFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if filter.Category == forumCategoryAll {
		filter.Category = ""
	}

	posts, count, err := a.stores.Forum.ListPosts(rctx, filter, page)
	if err != nil {
		return a.er(c, err)
	}

	resPosts := []types.PostInfo{}
	for i := range posts {
		resPosts = append(resPosts, postInfo(&posts[i]))
	}

	limit, pageMax := a.listMeta(page, count)
	return c.JSON(http.StatusOK, &types.PostListResponse{
		Success: true,
		Limit:   limit,
		PageMax: pageMax,
		Posts:   resPosts,
	})
}

// ForumPostGet 每次查看都会增加浏览次数
func (a *App) ForumPostGet(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return a.er(c, err)
	}

	if err := a.stores.Forum.IncrementPostViews(rctx, id); err != nil {
		return a.er(c, err)
	}

	post, err := a.stores.Forum.FindPost(rctx, id)
	if err != nil {
		return a.er(c, err)
	}

	info := postInfo(post)
	return c.JSON(http.StatusOK, &types.PostResponse{
		Success: true,
		Post:    &info,
	})
}

func (a *App) ForumPostCreate(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req types.PostCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	post := models.ForumPost{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		UserID:   user.ID,
		User:     *user,
	}
	if err := a.stores.Forum.CreatePost(c.Request().Context(), &post); err != nil {
		return a.er(c, err)
	}

	info := postInfo(&post)
	return c.JSON(http.StatusCreated, &types.PostResponse{
		Success: true,
		Post:    &info,
	})
}
