package service

import (
	"errors"
	"unicode/utf8"

	"Echo_Board/internal/model"
	"Echo_Board/internal/pkg"
	"Echo_Board/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo    *mysql.UserRepository
	mailCfg pkg.SMTPConfig
}

func NewUserService(db *gorm.DB, mailCfg pkg.SMTPConfig) *UserService {
	return &UserService{
		repo:    &mysql.UserRepository{DB: db},
		mailCfg: mailCfg,
	}
}

// Register 注册即登录，返回签名token和用户信息
// role 由调用方自报，只认 "admin"，其余一律落为 "user"
func (s *UserService) Register(username, email, password, role string) (string, *model.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, invalid("username, email and password are required")
	}
	if utf8.RuneCountInString(username) > 32 {
		return "", nil, invalid("username cannot exceed 32 characters")
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, conflict("username or email already in use")
	}

	if role != model.RoleAdmin {
		role = model.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
		Role:     role,
	}
	if err := s.repo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	// 欢迎邮件尽力而为，不阻塞注册
	if s.mailCfg.Enabled() {
		go func(to, name string) {
			if err := pkg.SendEmail(s.mailCfg, to, "Welcome", pkg.WelcomeHTML(name)); err != nil {
				pkg.Logger.Warningf("welcome mail to %s failed: %v", to, err)
			}
		}(user.Email, user.Username)
	}

	return token, user, nil
}

func (s *UserService) Login(email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, invalid("email and password are required")
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, unauthorized("invalid email or password")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, unauthorized("invalid email or password")
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) GetByID(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}
	return user, nil
}
