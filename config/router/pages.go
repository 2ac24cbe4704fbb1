package router

import (
	"html/template"
	"net/http"

	"github.com/akeren/email-collector/pkg/ratelimit"
)

// PageResult is what page handlers return: a named template and its data.
type PageResult struct {
	StatusCode int
	Template   string
	Data       any
}

type PageFunction func(*RequestContext) *PageResult

func PageOK(templateName string, data any) *PageResult {
	return &PageResult{
		StatusCode: http.StatusOK,
		Template:   templateName,
		Data:       data,
	}
}

func PageWithStatus(statusCode int, templateName string, data any) *PageResult {
	return &PageResult{
		StatusCode: statusCode,
		Template:   templateName,
		Data:       data,
	}
}

func createPageHandler(handler PageFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil || result.Template == "" {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A page handler returned an undefined result. This typically indicates a bug in a handler's implementation.").ToJSON())
			return
		}

		c.HTML(result.StatusCode, result.Template, result.Data)
	}
}

// SetHTMLTemplate installs the templates page handlers render by name.
func (routerService *RouterService) SetHTMLTemplate(templates *template.Template) {
	routerService.engine.SetHTMLTemplate(templates)
	routerService.logger.Debug("HTML templates installed", "templates", templates.DefinedTemplates())
}

func (routerService *RouterService) AddPageGetHandler(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, handler PageFunction, middlewares ...MiddlewareFunc) {
	routerService.handle(c, http.MethodGet, limiter, relativePath, createPageHandler(handler), middlewares)
}

func (routerService *RouterService) AddPagePostHandler(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, handler PageFunction, middlewares ...MiddlewareFunc) {
	routerService.handle(c, http.MethodPost, limiter, relativePath, createPageHandler(handler), middlewares)
}

// AddStaticFS serves fsys under relativePath. gin registers GET and HEAD on
// the wildcard route, so both are bound for rate limiting.
func (routerService *RouterService) AddStaticFS(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, fsys http.FileSystem) {
	prefix := c.route(relativePath)
	wildcard := prefix + "/*filepath"

	for _, method := range []string{http.MethodGet, http.MethodHead} {
		routerService.bind(c, method, wildcard, limiter)
	}
	c.handlerCount++

	routerService.engine.StaticFS(prefix, fsys)
	routerService.logger.Debug("Static files registered", "controller", c.name, "path", wildcard)
}
