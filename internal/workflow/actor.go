package workflow

import "berkas-tanah-backend/internal/rbac"

// Actor adalah user yang sedang melakukan aksi, diteruskan eksplisit ke
// setiap operasi. Tidak ada state "current user" global.
type Actor struct {
	ID   uint
	Name string
	Role rbac.Role
}
