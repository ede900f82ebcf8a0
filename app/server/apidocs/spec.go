package apidocs

import (
	"fmt"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"net/http"
	"sort"
	"strings"
)

// 只为这些前缀下的路由生成文档
var documentedPrefixes = []string{"/api/", "/ws", "/healthz"}

// FromRoutes 根据 echo 的路由表生成 OpenAPI 3 文档，路径参数 :id 转换为 {id}
func FromRoutes(title, version string, routes []*echo.Route) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
	}

	sorted := make([]*echo.Route, 0, len(routes))
	for _, r := range routes {
		if documented(r) {
			sorted = append(sorted, r)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path == sorted[j].Path {
			return sorted[i].Method < sorted[j].Method
		}
		return sorted[i].Path < sorted[j].Path
	})

	ids := map[string]int{}
	for _, r := range sorted {
		p, params := convertPath(r.Path)

		item := doc.Paths.Value(p)
		if item == nil {
			item = &openapi3.PathItem{}
			doc.Paths.Set(p, item)
		}

		op := openapi3.NewOperation()
		id := operationID(r.Name)
		if n := ids[id]; n > 0 {
			// 同一个 handler 挂在多个路由上
			op.OperationID = fmt.Sprintf("%s%d", id, n+1)
		} else {
			op.OperationID = id
		}
		ids[id]++
		op.Tags = []string{tag(r.Path)}
		for _, name := range params {
			op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewIntegerSchema().WithMin(1)))
		}
		op.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription("OK"))

		item.SetOperation(r.Method, op)
	}

	if doc.Paths.Len() == 0 {
		return nil, fmt.Errorf("no routes to document")
	}
	return doc, nil
}

// JSON 生成并编码文档
func JSON(title, version string, routes []*echo.Route) ([]byte, error) {
	doc, err := FromRoutes(title, version, routes)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

func documented(r *echo.Route) bool {
	if r.Method == echo.RouteNotFound || strings.Contains(r.Path, "*") {
		return false
	}
	for _, prefix := range documentedPrefixes {
		if strings.HasPrefix(r.Path, prefix) {
			return true
		}
	}
	return false
}

func convertPath(p string) (string, []string) {
	var params []string
	segments := strings.Split(p, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			name := strings.TrimPrefix(s, ":")
			params = append(params, name)
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/"), params
}

// 路由名形如 krishi-sathi/app/server/handlers.(*App).ArticleCreate-fm
func operationID(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func tag(p string) string {
	segments := strings.Split(strings.TrimPrefix(p, "/api"), "/")
	for _, s := range segments {
		if s != "" {
			return s
		}
	}
	return "default"
}
