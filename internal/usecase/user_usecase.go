package usecase

import (
	"errors"
	"fmt"
	"time"

	"financing-backend/config"
	"financing-backend/internal/dto"
	"financing-backend/internal/mailer"
	"financing-backend/internal/model"
	"financing-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Token berlaku 24 jam
const TokenTTL = 24 * time.Hour

const maxLoginAttempts = 5

var (
	ErrInvalidCredentials = errors.New("email/username atau password salah")
	ErrTooManyAttempts    = errors.New("terlalu banyak percobaan login, coba lagi nanti")
	ErrWrongOldPassword   = errors.New("password lama salah")
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(req *dto.RegisterRequest) (*model.User, error) {
	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 2. Simpan ke Database
	user := model.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashedPassword),
	}
	if err := u.repo.Create(&user); err != nil {
		return nil, err
	}

	// 3. Email selamat datang, gagal kirim tidak membatalkan registrasi
	if err := mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
		fmt.Println("Warning: gagal kirim email selamat datang:", err)
	}

	return &user, nil
}

// Login menerima email ATAU username di parameter identifier
func (u *UserUsecase) Login(identifier, password string) (string, error) {
	// 1. Cek dulu apakah akun ini sedang diblokir karena gagal terus
	attempts, err := config.CheckLoginAttempts(identifier)
	if err == nil && attempts >= maxLoginAttempts {
		return "", ErrTooManyAttempts
	}

	// 2. Cari user, lalu bandingkan password (input vs hash di DB)
	user, err := u.repo.GetByUsernameOrEmail(identifier)
	if err != nil {
		config.IncrementLoginAttempts(identifier)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		config.IncrementLoginAttempts(identifier)
		return "", ErrInvalidCredentials
	}

	config.ResetLoginAttempts(identifier)

	// 3. Jika benar, buat Token JWT
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

func (u *UserUsecase) Profile(id uint) (*model.User, error) {
	return u.repo.GetByID(id)
}

func (u *UserUsecase) UpdateProfile(id uint, req *dto.UpdateProfileRequest) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Update field yang diisi saja
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := u.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) ChangePassword(id uint, oldPassword, newPassword string) error {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	return u.repo.Update(user)
}
