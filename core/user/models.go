package user

import (
	"strings"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
)

// Roles
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleFaculty, RoleAdmin}

// column names as they appear in the identity sheet
const (
	colNumber        = "number"
	colPassword      = "password"
	colName          = "name"
	colCourse        = "course"
	colBatch         = "batch"
	colYear          = "year"
	colBranch        = "branch"
	colAdmissionYear = "admissionYear"
	colPendingFees   = "pendingFees"
	colRole          = "Role"
	colFaculty       = "Faculty"
)

var fixedColumns = map[string]bool{
	sheet.NormalizeHeader(colNumber):        true,
	sheet.NormalizeHeader(colPassword):      true,
	sheet.NormalizeHeader(colName):          true,
	sheet.NormalizeHeader(colCourse):        true,
	sheet.NormalizeHeader(colBatch):         true,
	sheet.NormalizeHeader(colYear):          true,
	sheet.NormalizeHeader(colBranch):        true,
	sheet.NormalizeHeader(colAdmissionYear): true,
	sheet.NormalizeHeader(colPendingFees):   true,
	sheet.NormalizeHeader(colRole):          true,
	sheet.NormalizeHeader(colFaculty):       true,
}

// User is one row of the identity table.
type User struct {
	Number        string `json:"number"`
	Password      string `json:"-"`
	Name          string `json:"name"`
	Course        string `json:"course"`
	Batch         string `json:"batch"`
	Year          string `json:"year"`
	Branch        string `json:"branch"`
	AdmissionYear string `json:"admissionYear"`
	PendingFees   string `json:"pendingFees"`
	Role          string `json:"role"`
	// Faculty is the branch in charge for admins.
	Faculty string `json:"faculty"`

	// Extra holds every other column, keyed by its original header.
	Extra map[string]string `json:"extra,omitempty"`
}

// FromRecord maps an identity row; unknown columns land in Extra.
func FromRecord(rec sheet.Record) User {
	usr := User{
		Number:        rec.Value(colNumber),
		Password:      rec.Value(colPassword),
		Name:          rec.Value(colName),
		Course:        rec.Value(colCourse),
		Batch:         rec.Value(colBatch),
		Year:          rec.Value(colYear),
		Branch:        rec.Value(colBranch),
		AdmissionYear: rec.Value(colAdmissionYear),
		PendingFees:   rec.Value(colPendingFees),
		Role:          rec.Value(colRole),
		Faculty:       rec.Value(colFaculty),
	}
	for header, val := range rec.Original() {
		if fixedColumns[sheet.NormalizeHeader(header)] {
			continue
		}
		if usr.Extra == nil {
			usr.Extra = make(map[string]string)
		}
		usr.Extra[header] = val
	}
	return usr
}

// RoleName is the normalized role.
func (u User) RoleName() string {
	return core.CleanString(u.Role, true /* lower */)
}

func (u User) IsAdmin() bool {
	return u.RoleName() == RoleAdmin
}

func (u User) IsFaculty() bool {
	return u.RoleName() == RoleFaculty
}

// IsStudent is true for every user that is neither faculty nor admin.
func (u User) IsStudent() bool {
	return !u.IsAdmin() && !u.IsFaculty()
}

// HasAnyRole reports whether the user's role is one of roles. Any role that
// is not faculty or admin matches RoleStudent, as in IsStudent.
func (u User) HasAnyRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	role := u.RoleName()
	if u.IsStudent() {
		role = RoleStudent
	}
	for _, r := range roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// Values exposes the user's columns for template substitution, under their sheet names
// and lower-cased aliases. The password is never exposed.
func (u User) Values() map[string]string {
	vals := make(map[string]string, 2*len(fixedColumns)+len(u.Extra))
	for k, v := range u.Extra {
		vals[k] = v
	}
	for k, v := range map[string]string{
		colNumber:        u.Number,
		colName:          u.Name,
		colCourse:        u.Course,
		colBatch:         u.Batch,
		colYear:          u.Year,
		colBranch:        u.Branch,
		colAdmissionYear: u.AdmissionYear,
		colPendingFees:   u.PendingFees,
		colRole:          u.Role,
		colFaculty:       u.Faculty,
	} {
		vals[k] = v
		if lk := strings.ToLower(k); lk != k {
			if _, taken := vals[lk]; !taken {
				vals[lk] = v
			}
		}
	}
	return vals
}
