package usecase

import (
	"errors"
	"testing"

	"berkas-tanah-backend/internal/model"
	"berkas-tanah-backend/internal/rbac"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if _, ok := f.users[user.Email]; ok {
		return errors.New("Error 1062 (23000): Duplicate entry")
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *model.User) error {
	f.users[user.Email] = user
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)

	user, err := uc.Register("Ani", "ani@example.com", "rahasia", rbac.RoleDataBerkas)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "rahasia" {
		t.Fatal("password tersimpan plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia")); err != nil {
		t.Fatalf("hash tidak cocok: %v", err)
	}
	if !user.Aktif {
		t.Fatal("user baru harus aktif")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	uc := NewUserUsecase(newFakeUserRepo())
	if _, err := uc.Register("X", "x@example.com", "pw", rbac.Role("SUPERVISOR")); err == nil {
		t.Fatal("role tak dikenal harus ditolak")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	if _, err := uc.Register("Ani", "ani@example.com", "rahasia", rbac.RoleDataUkur); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := uc.Login("ani@example.com", "rahasia")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "ani@example.com" {
		t.Fatalf("user = %+v", user)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims["role"] != string(rbac.RoleDataUkur) {
		t.Fatalf("claim role = %v", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("claim jti kosong")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	uc.Register("Ani", "ani@example.com", "rahasia", rbac.RoleAdmin)

	if _, _, err := uc.Login("ani@example.com", "salah"); !errors.Is(err, ErrLoginGagal) {
		t.Fatalf("err = %v, want ErrLoginGagal", err)
	}
	if _, _, err := uc.Login("tidakada@example.com", "rahasia"); !errors.Is(err, ErrLoginGagal) {
		t.Fatalf("err = %v, want ErrLoginGagal", err)
	}
}

// User nonaktif ditolak di autentikasi, terlepas dari role dan password benar.
func TestLoginRejectsInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	user, _ := uc.Register("Ani", "ani@example.com", "rahasia", rbac.RoleAdmin)

	user.Aktif = false
	repo.Update(user)

	if _, _, err := uc.Login("ani@example.com", "rahasia"); !errors.Is(err, ErrUserNonaktif) {
		t.Fatalf("err = %v, want ErrUserNonaktif", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("bukan.token.valid"); err == nil {
		t.Fatal("token rusak harus ditolak")
	}
}
