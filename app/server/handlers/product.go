package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"krishi-sathi/app/server/errs"
	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/repository"
	"krishi-sathi/app/server/types"
	"net/http"
)

// 商品分类筛选里代表全部的取值
const productCategoryAll = "All Products"

func productInfo(product *models.Product) types.ProductInfo {
	return types.ProductInfo{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Unit:        product.Unit,
		Description: product.Description,
		Image:       product.Image,
		Rating:      product.Rating,
		Seller:      userBrief(&product.Seller),
		CreatedAt:   product.CreatedAt,
	}
}

func (a *App) productMapFields(req *types.ProductUpdateRequest, product *models.Product) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
}

func (a *App) ProductList(c echo.Context) error {
	rctx := c.Request().Context()

	page, err := a.page(c)
	if err != nil {
		return a.er(c, err)
	}

	filter := repository.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if filter.Category == productCategoryAll {
		filter.Category = ""
	}

	products, count, err := a.stores.Products.List(rctx, filter, page)
	if err != nil {
		return a.er(c, err)
	}

	resProducts := []types.ProductInfo{}
	for i := range products {
		resProducts = append(resProducts, productInfo(&products[i]))
	}

	limit, pageMax := a.listMeta(page, count)
	return c.JSON(http.StatusOK, &types.ProductListResponse{
		Success:  true,
		Limit:    limit,
		PageMax:  pageMax,
		Products: resProducts,
	})
}

func (a *App) ProductGet(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return a.er(c, err)
	}

	product, err := a.stores.Products.FindByID(c.Request().Context(), id)
	if err != nil {
		return a.er(c, err)
	}

	info := productInfo(product)
	return c.JSON(http.StatusOK, &types.ProductResponse{
		Success: true,
		Product: &info,
	})
}

func (a *App) ProductCreate(c echo.Context) error {
	user, err := a.currentUser(c)
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req types.ProductCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	product := models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		Description: req.Description,
		Image:       req.Image,
		Rating:      req.Rating,
		SellerID:    user.ID,
		Seller:      *user,
	}
	if err := a.stores.Products.Create(c.Request().Context(), &product); err != nil {
		return a.er(c, err)
	}

	info := productInfo(&product)
	return c.JSON(http.StatusCreated, &types.ProductResponse{
		Success: true,
		Message: "Product created",
		Product: &info,
	})
}

// findOwnProduct 加载商品并检查修改权限：卖家与管理员
func (a *App) findOwnProduct(c echo.Context) (*models.Product, error) {
	user, err := a.currentUser(c)
	if err != nil {
		return nil, err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return nil, err
	}

	product, err := a.stores.Products.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}

	if !canModify(user, product.SellerID, models.RoleAdmin) {
		return nil, fmt.Errorf("user %d modifying product %d: %w", user.ID, id, errs.ErrForbidden)
	}
	return product, nil
}

func (a *App) ProductUpdate(c echo.Context) error {
	product, err := a.findOwnProduct(c)
	if err != nil {
		return a.er(c, err)
	}

	// 绑定请求体
	var req types.ProductUpdateRequest
	if err := a.bind(c, &req); err != nil {
		return a.er(c, err)
	}

	a.productMapFields(&req, product)

	if err := a.stores.Products.Update(c.Request().Context(), product); err != nil {
		return a.er(c, err)
	}

	info := productInfo(product)
	return c.JSON(http.StatusOK, &types.ProductResponse{
		Success: true,
		Message: "Product updated",
		Product: &info,
	})
}

func (a *App) ProductDelete(c echo.Context) error {
	product, err := a.findOwnProduct(c)
	if err != nil {
		return a.er(c, err)
	}

	if err := a.stores.Products.Delete(c.Request().Context(), product.ID); err != nil {
		return a.er(c, err)
	}

	return c.JSON(http.StatusOK, &types.Response{
		Success: true,
		Message: "Product deleted",
	})
}
