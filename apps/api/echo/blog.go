package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core/blog"
)

type blogApi struct {
	svc      *blog.Service
	validate *validator.Validate
}

func registerBlogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *blog.Service, validate *validator.Validate) {
	api := blogApi{
		svc:      svc,
		validate: validate,
	}

	bg := g.Group("/posts")
	bg.GET("", api.query)
	bg.GET("/:id", api.retrieve)
	bg.POST("", api.create, jwt, adminMiddleware())
}

func (api *blogApi) query(ctx echo.Context) error {
	filter := new(blog.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []blog.Post{})
	}
	filter.Clean()

	posts, err := api.svc.Filter(*filter)
	if err != nil {
		return errors.Wrap(err, "querying posts")
	}
	if posts == nil {
		posts = []blog.Post{}
	}
	return ctx.JSON(http.StatusOK, posts)
}

func (api *blogApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *blogApi) create(ctx echo.Context) error {
	var data blog.NewPost
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating post")
	}
	return ctx.JSON(http.StatusCreated, p)
}
