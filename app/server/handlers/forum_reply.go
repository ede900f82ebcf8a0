package handlers

import (
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/realtime"
	"krishi-sathi/app/server/types"
	"net/http"
)

// ForumReplyCreate 保存回复后通过实时频道广播 newReply
func (a *App) ForumReplyCreate(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ReplyCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	// 帖子必须存在
	if exists, err := a.stores.Forum.PostExists(rctx, req.PostID); err != nil {
		return a.er(c, err)
	} else if !exists {
		return a.er(c, fmt.Errorf("forum post %d: %w", req.PostID, errs.ErrNotFound))
	}

	reply := models.ForumReply{
		PostID:  req.PostID,
		Message: req.Message,
		UserID:  user.ID,
		User:    *user,
	}
	if err := a.stores.Forum.CreateReply(rctx, &reply); err != nil {
		return a.er(c, err)
	}

	info := replyInfo(&reply)

	// 广播失败不影响已经保存的回复
	if a.hub != nil {
		ctx, cancel := context.WithTimeout(rctx, a.timeout)
		if err := a.hub.PublishData(ctx, realtime.EventNewReply, &info); err != nil {
			a.l.Warn("failed to publish new reply", zap.Uint("replyId", reply.ID), zap.Error(err))
		}
		cancel()
	}

	return c.JSON(http.StatusCreated, &types.ReplyResponse{
		Success: true,
		Reply:   &info,
	})
}
