package controller

import (
	"errors"

	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Users       *repository.UserRepository
}

func NewAuthController(authService *service.AuthService, users *repository.UserRepository) *AuthController {
	return &AuthController{
		AuthService: authService,
		Users:       users,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary 注册新用户
// @Description 创建 student/free 账号并返回令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "参数错误或邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}

	token, err := c.AuthService.Register(user)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user": user, "token": token})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 校验凭据并返回JWT令牌；邮箱不存在和密码错误返回同一错误
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "凭据无效"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"user": user, "token": token})
}

// GetProfile godoc
// @Summary 当前用户资料
// @Description 按令牌里的用户ID读库，返回最新的角色与套餐
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.Users.FindByID(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
