package handler

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"socialnet/internal/config"
	"socialnet/internal/service"
)

type Handler struct {
	users    service.UserService
	posts    service.PostService
	comments service.CommentService
	tags     service.TagService
	cfg      *config.Config
	validate *validator.Validate
}

func New(users service.UserService, posts service.PostService, comments service.CommentService, tags service.TagService, cfg *config.Config) *Handler {
	return &Handler{
		users:    users,
		posts:    posts,
		comments: comments,
		tags:     tags,
		cfg:      cfg,
		validate: newValidator(),
	}
}

var timezoneOffsetRe = regexp.MustCompile(`^[+-]\d{1,2}:\d{2}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("timezone_offset", func(fl validator.FieldLevel) bool {
		return timezoneOffsetRe.MatchString(fl.Field().String())
	})
	// Violation details name fields as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
