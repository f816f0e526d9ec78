package service

import (
	"errors"
	"testing"
	"time"

	"kernel_school_backend/internal/config"
	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserStore struct {
	users map[string]*model.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*model.User)}
}

func (s *stubUserStore) Create(user *model.User) error {
	user.ID = uint(len(s.users) + 1)
	s.users[user.Email] = user
	return nil
}

func (s *stubUserStore) FindByEmail(email string) (*model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "auth-service-test-secret",
			ExpireTime: time.Hour,
		},
	}
}

func TestRegisterForcesStudentAndFreeTariff(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(store, authTestConfig())

	user := &model.User{
		FullName: "Ivan Shevchenko",
		Email:    "ivan@example.com",
		Password: "secret123",
		Role:     model.Admin, // 客户端试图给自己提权
		Tariff:   model.TariffPremium,
	}

	token, err := svc.Register(user)
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	if user.Role != model.Student {
		t.Errorf("role = %q, want student", user.Role)
	}
	if user.Tariff != model.TariffFree {
		t.Errorf("tariff = %q, want free", user.Tariff)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Error("stored password is not a bcrypt hash of the original")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(store, authTestConfig())

	first := &model.User{FullName: "A", Email: "dup@example.com", Password: "pass1"}
	if _, err := svc.Register(first); err != nil {
		t.Fatalf("first register error: %v", err)
	}

	second := &model.User{FullName: "B", Email: "dup@example.com", Password: "pass2"}
	if _, err := svc.Register(second); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

// 登录失败必须无法区分“邮箱不存在”和“密码错误”
func TestLoginFailureIndistinguishable(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(store, authTestConfig())

	user := &model.User{FullName: "C", Email: "known@example.com", Password: "correct-pass"}
	if _, err := svc.Register(user); err != nil {
		t.Fatalf("register error: %v", err)
	}

	_, _, unknownErr := svc.Login("unknown@example.com", "whatever")
	_, _, wrongPassErr := svc.Login("known@example.com", "wrong-pass")

	if !errors.Is(unknownErr, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("error messages differ: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestLoginSuccess(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(store, authTestConfig())

	user := &model.User{FullName: "D", Email: "d@example.com", Password: "pass-d"}
	if _, err := svc.Register(user); err != nil {
		t.Fatalf("register error: %v", err)
	}

	got, token, err := svc.Login("d@example.com", "pass-d")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := util.ParseJWT(token, "auth-service-test-secret")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != got.ID {
		t.Errorf("claims user id = %d, want %d", claims.UserID, got.ID)
	}
	if claims.Role != model.Student {
		t.Errorf("claims role = %q, want student", claims.Role)
	}
}
