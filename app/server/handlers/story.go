package handlers

import (
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"krishi-sathi/app/server/utils"
	"net/http"
)

func storyInfo(story *models.SuccessStory) types.StoryInfo {
	tags := []string(story.Tags)
	if tags == nil {
		tags = []string{}
	}

	return types.StoryInfo{
		ID:         story.ID,
		Title:      story.Title,
		FarmerName: story.FarmerName,
		Location:   story.Location,
		Content:    story.Content,
		Image:      story.Image,
		Tags:       tags,
		CreatedAt:  story.CreatedAt,
	}
}

func (a *App) StoryList(c echo.Context) error {
	page, err := a.page(c)
	if err != nil {
		return a.er(c, err)
	}

	stories, count, err := a.stores.Stories.List(c.Request().Context(), page)
	if err != nil {
		return a.er(c, err)
	}

	resStories := []types.StoryInfo{}
	for i := range stories {
		resStories = append(resStories, storyInfo(&stories[i]))
	}

	limit, pageMax := a.listMeta(page, count)
	return c.JSON(http.StatusOK, &types.StoryListResponse{
		Success: true,
		Limit:   limit,
		PageMax: pageMax,
		Stories: resStories,
	})
}

// StoryCreate 只对管理员和版主开放（由路由上的角色校验保证）
func (a *App) StoryCreate(c echo.Context) error {
	// 绑定请求体
	var req types.StoryCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	story := models.SuccessStory{
		Title:      req.Title,
		FarmerName: req.FarmerName,
		Location:   req.Location,
		Content:    req.Content,
		Image:      req.Image,
		Tags:       utils.NormalizeTags(req.Tags),
	}
	if err := a.stores.Stories.Create(c.Request().Context(), &story); err != nil {
		return a.er(c, err)
	}

	info := storyInfo(&story)
	return c.JSON(http.StatusCreated, &types.StoryResponse{
		Success: true,
		Story:   &info,
	})
}
