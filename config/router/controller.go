package router

import (
	"fmt"
	"net/http"
	"path"

	"github.com/akeren/email-collector/pkg/ratelimit"
)

// NewRESTController describes a group of routes under mountPoint. prepare
// runs when the controller is mounted and registers the handlers.
func NewRESTController(name, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	return &RESTController{
		name:       name,
		mountPoint: path.Clean("/" + mountPoint),
		prepare:    prepare,
	}
}

// RateLimitWith applies limiter to every handler of the controller that has
// no limiter of its own.
func (controller *RESTController) RateLimitWith(routerService *RouterService, limiter ratelimit.RateLimiter) *RESTController {
	routerService.bindOverrideRateLimiter(controller.mountPoint, limiter)
	return controller
}

func (controller *RESTController) route(relativePath string) string {
	if relativePath == "" {
		return controller.mountPoint
	}
	return path.Clean(controller.mountPoint + "/" + relativePath)
}

func (routerService *RouterService) keyForPathAndMethod(route, method string) string {
	return method + "-" + route
}

func (routerService *RouterService) bindOverrideRateLimiter(key string, limiter ratelimit.RateLimiter) {
	if limiter == nil {
		return
	}
	if _, taken := routerService.rateLimitOverrides[key]; taken {
		panic(fmt.Sprintf("A rate limiter is already registered for '%s'", key))
	}
	routerService.rateLimitOverrides[key] = limiter
}

// bind records which controller owns route and which limiter guards it. The
// rate limit middleware rejects any route without an owner.
func (routerService *RouterService) bind(controller *RESTController, method, route string, limiter ratelimit.RateLimiter) {
	key := routerService.keyForPathAndMethod(route, method)
	if other, taken := routerService.handlerToControllerMap[key]; taken {
		panic(fmt.Sprintf("A handler is already registered for %s %s by controller '%s'", method, route, other.name))
	}

	routerService.handlerToControllerMap[key] = controller
	routerService.bindOverrideRateLimiter(key, limiter)
}

func (routerService *RouterService) handle(
	controller *RESTController,
	method string,
	limiter ratelimit.RateLimiter,
	relativePath string,
	final MiddlewareFunc,
	middlewares []MiddlewareFunc,
) {
	route := controller.route(relativePath)
	routerService.bind(controller, method, route, limiter)
	controller.handlerCount++

	routerService.engine.Handle(method, route, append(middlewares, final)...)
	routerService.logger.Debug("Handler registered", "controller", controller.name, "method", method, "path", route)
}

func createHandler(handler HandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)
		if result == nil {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A handler returned an undefined result. This typically indicates a bug in a handler's implementation.").ToJSON())
			return
		}

		c.JSON(result.StatusCode, result.ToJSON())
	}
}

func (routerService *RouterService) AddGetHandler(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.handle(c, http.MethodGet, limiter, relativePath, createHandler(handler), middlewares)
}

func (routerService *RouterService) AddPostHandler(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.handle(c, http.MethodPost, limiter, relativePath, createHandler(handler), middlewares)
}

func (routerService *RouterService) AddPatchHandler(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.handle(c, http.MethodPatch, limiter, relativePath, createHandler(handler), middlewares)
}

func (routerService *RouterService) AddDeleteHandler(c *RESTController, limiter ratelimit.RateLimiter, relativePath string, handler HandlerFunction, middlewares ...MiddlewareFunc) {
	routerService.handle(c, http.MethodDelete, limiter, relativePath, createHandler(handler), middlewares)
}
