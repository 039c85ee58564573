package rbac

// Role adalah role tetap yang dikenal sistem. Tidak ada role dinamis:
// permission dihitung murni dari tabel di bawah, tidak disimpan di database.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleDataBerkas     Role = "DATA_BERKAS"
	RoleDataUkur       Role = "DATA_UKUR"
	RoleDataPemetaan   Role = "DATA_PEMETAAN"
	RoleQualityControl Role = "QUALITY_CONTROL"
)

// Action adalah aksi yang bisa dilakukan terhadap berkas.
type Action string

const (
	ActionView      Action = "view"
	ActionCreate    Action = "create"
	ActionEdit      Action = "edit"
	ActionDelete    Action = "delete"
	ActionMoveStage Action = "move_stage"
	ActionPrint     Action = "print"
)

// Section adalah kelompok field berkas dengan izin edit tersendiri.
type Section string

const (
	SectionDataBerkas   Section = "DATA_BERKAS"
	SectionDataUkur     Section = "DATA_UKUR"
	SectionDataPemetaan Section = "DATA_PEMETAAN"
)

// AllRoles dipakai untuk validasi input (misal saat admin membuat user).
var AllRoles = []Role{
	RoleAdmin,
	RoleDataBerkas,
	RoleDataUkur,
	RoleDataPemetaan,
	RoleQualityControl,
}

// AllSections dalam urutan progres berkas.
var AllSections = []Section{
	SectionDataBerkas,
	SectionDataUkur,
	SectionDataPemetaan,
}

type permissions struct {
	canView          bool
	canCreate        bool
	canEdit          bool
	canDelete        bool
	canMoveStage     bool
	canPrint         bool
	editableSections []Section
}

// Matriks permission per role:
// - ADMIN: akses penuh semua section
// - DATA_BERKAS: hanya section DATA_BERKAS
// - DATA_UKUR: section DATA_BERKAS + DATA_UKUR
// - DATA_PEMETAAN: section DATA_BERKAS + DATA_PEMETAAN
// - QUALITY_CONTROL: view dan move stage saja
var rolePermissions = map[Role]permissions{
	RoleAdmin: {
		canView:          true,
		canCreate:        true,
		canEdit:          true,
		canDelete:        true,
		canMoveStage:     true,
		canPrint:         true,
		editableSections: []Section{SectionDataBerkas, SectionDataUkur, SectionDataPemetaan},
	},
	RoleDataBerkas: {
		canView:          true,
		canCreate:        true,
		canEdit:          true,
		canDelete:        false,
		canMoveStage:     true,
		canPrint:         true,
		editableSections: []Section{SectionDataBerkas},
	},
	RoleDataUkur: {
		canView:          true,
		canCreate:        false,
		canEdit:          true,
		canDelete:        false,
		canMoveStage:     true,
		canPrint:         true,
		editableSections: []Section{SectionDataBerkas, SectionDataUkur},
	},
	RoleDataPemetaan: {
		canView:          true,
		canCreate:        false,
		canEdit:          true,
		canDelete:        false,
		canMoveStage:     true,
		canPrint:         true,
		editableSections: []Section{SectionDataBerkas, SectionDataPemetaan},
	},
	RoleQualityControl: {
		canView:          true,
		canCreate:        false,
		canEdit:          false,
		canDelete:        false,
		canMoveStage:     true,
		canPrint:         true,
		editableSections: nil,
	},
}

// ValidRole melaporkan apakah r adalah salah satu role yang dikenal.
func ValidRole(r Role) bool {
	_, ok := rolePermissions[r]
	return ok
}

// CanPerform mengecek apakah role boleh melakukan action.
// Role yang tidak dikenal selalu ditolak.
func CanPerform(role Role, action Action) bool {
	p, ok := rolePermissions[role]
	if !ok {
		return false
	}
	switch action {
	case ActionView:
		return p.canView
	case ActionCreate:
		return p.canCreate
	case ActionEdit:
		return p.canEdit
	case ActionDelete:
		return p.canDelete
	case ActionMoveStage:
		return p.canMoveStage
	case ActionPrint:
		return p.canPrint
	default:
		return false
	}
}

// EditableSections mengembalikan section yang boleh diedit oleh role.
func EditableSections(role Role) []Section {
	p, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Section, len(p.editableSections))
	copy(out, p.editableSections)
	return out
}

// CanEditSection mengecek apakah role boleh mengedit section tertentu.
func CanEditSection(role Role, section Section) bool {
	p, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, s := range p.editableSections {
		if s == section {
			return true
		}
	}
	return false
}

// DisplayName role untuk tampilan.
var DisplayName = map[Role]string{
	RoleAdmin:          "Administrator",
	RoleDataBerkas:     "Operator Data Berkas",
	RoleDataUkur:       "Operator Data Ukur",
	RoleDataPemetaan:   "Operator Data Pemetaan",
	RoleQualityControl: "Quality Control",
}
