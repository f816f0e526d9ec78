package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCourseNotFound     = errors.New("course not found")
	ErrTestNotFound       = errors.New("test not found")
	ErrTestNoQuestions    = errors.New("test has no questions")
)
