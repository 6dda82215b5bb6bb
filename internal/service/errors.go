package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	// ErrNotOwner 非作者操作他人内容，由 handler 转为重定向而非错误页
	ErrNotOwner       = errors.New("无权操作他人内容")
	UnauthorizedError = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrCategoryNotFound:  NotFound,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrNotOwner:          Forbidden,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
