package service

import (
	"errors"

	"kernel_school_backend/internal/config"
	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userStore 注册/登录用到的最小用户存取接口
type userStore interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
}

type AuthService struct {
	Users userStore
	Cfg   *config.Config
}

func NewAuthService(users userStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
	}
}

// Register 新用户一律 student/free，由管理员后续调整
func (s *AuthService) Register(user *model.User) (string, error) {
	_, err := s.Users.FindByEmail(user.Email)
	if err == nil {
		return "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.Password = string(hashedPassword)
	user.Role = model.Student
	user.Tariff = model.TariffFree

	if err := s.Users.Create(user); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// Login 不区分“邮箱不存在”和“密码错误”，两者返回同一错误
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
