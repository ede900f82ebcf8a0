package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"krishi-sathi/app/server/constants"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/middlewares"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
	"net/http"
)

func (a *App) authRateLimiter() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(constants.AuthRateLimitEvery),
			Burst:     constants.AuthRateLimitBurst,
			ExpiresIn: constants.AuthRateLimitExpires,
		}),
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, types.Failure(errs.ErrForbidden.Error()))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, types.Failure(http.StatusText(http.StatusTooManyRequests)))
		},
	})
}

// RegisterHandlers 绑定全部路由，同时接管 echo 的校验与错误处理
func RegisterHandlers(e *echo.Echo, a *App) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = a.HTTPErrorHandler

	session := a.gate.Middleware()

	e.GET("/healthz", a.HealthCheck)
	e.GET("/ws", a.RealtimeConnect, session)

	api := e.Group("/api")

	// 认证
	auth := api.Group("/auth")
	limiter := a.authRateLimiter()
	auth.POST("/register", a.AuthRegister, limiter)
	auth.POST("/login", a.AuthLogin, limiter)
	auth.POST("/logout", a.AuthLogout)
	auth.GET("/isauth", a.AuthIsAuth, session)

	// 知识库文章
	article := api.Group("/article")
	article.GET("/get", a.ArticleList)
	article.GET("/get/:id", a.ArticleGet, session)
	article.GET("/my-articles", a.ArticleListMine, session)
	article.POST("/create", a.ArticleCreate, session)
	article.PUT("/update/:id", a.ArticleUpdate, session)
	article.DELETE("/delete/:id", a.ArticleDelete, session)

	// 论坛
	forum := api.Group("/forum", session)
	forum.GET("/posts", a.ForumPostList)
	forum.GET("/post/:id", a.ForumPostGet)
	forum.POST("/post", a.ForumPostCreate)
	forum.POST("/reply", a.ForumReplyCreate)

	// 市场
	product := api.Group("/product")
	product.GET("", a.ProductList)
	product.GET("/:id", a.ProductGet)
	product.POST("/addProduct", a.ProductCreate, session)
	product.PUT("/update/:id", a.ProductUpdate, session)
	product.DELETE("/delete/:id", a.ProductDelete, session)

	// 成功案例
	story := api.Group("/story")
	story.GET("", a.StoryList)
	story.POST("", a.StoryCreate, session, middlewares.RequireRole(models.RoleAdmin, models.RoleModerator))

	// 管理
	admin := api.Group("/admin", session, middlewares.RequireRole(models.RoleAdmin))
	admin.GET("/users", a.UserList)
	admin.PUT("/users/:id/role", a.UserRoleUpdate)

	// 聊天记录
	api.GET("/chat/recent", a.ChatRecent, session)
}
