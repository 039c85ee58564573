package usecase

import (
	"errors"
	"time"

	"berkas-tanah-backend/config"
	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"
	"berkas-tanah-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLoginGagal   = errors.New("email atau password salah")
	ErrUserNonaktif = errors.New("akun Anda telah dinonaktifkan, hubungi administrator")
)

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "dev-secret-ganti-di-production"))
}

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

// Register membuat user baru dengan password yang di-hash.
func (u *UserUsecase) Register(name, email, password string, role rbac.Role) (*model.User, error) {
	if !rbac.ValidRole(role) {
		return nil, errors.New("role tidak dikenal")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     string(role),
		Aktif:    true,
	}
	if err := u.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login memverifikasi email+password dan menerbitkan token JWT bertanda
// tangan. User nonaktif ditolak di sini, sebelum pengecekan role manapun.
func (u *UserUsecase) Login(email, password string) (string, *model.User, error) {
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrLoginGagal
	}

	if !user.Aktif {
		return "", nil, ErrUserNonaktif
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrLoginGagal
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    user.Role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(), // token berlaku 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", nil, err
	}

	return t, user, nil
}

// ParseToken memverifikasi tanda tangan token dan mengembalikan claims-nya.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode tanda tangan tidak didukung")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token tidak valid atau kadaluwarsa")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token tidak valid")
	}
	return claims, nil
}
