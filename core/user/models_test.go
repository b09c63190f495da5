package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/absedu/campus/core/sheet"
)

func TestFromRecord(t *testing.T) {
	rec := sheet.NewRecord(0,
		[]string{"number", "password", "Name", "branch", "Role", "Faculty", "Guardian", "Blood Group"},
		[]string{"42", "pwd", "Sam", "Kurla", " Faculty ", "", "Pat"},
	)
	usr := FromRecord(rec)

	assert.Equal(t, "42", usr.Number)
	assert.Equal(t, "pwd", usr.Password)
	assert.Equal(t, "Sam", usr.Name)
	assert.Equal(t, "Kurla", usr.Branch)
	assert.Equal(t, map[string]string{"Guardian": "Pat", "Blood Group": ""}, usr.Extra)
	assert.True(t, usr.IsFaculty())
	assert.False(t, usr.IsStudent())
}

func TestUser_roles(t *testing.T) {
	tests := []struct {
		role    string
		student bool
		faculty bool
		admin   bool
	}{
		{"", true, false, false},
		{"student", true, false, false},
		{"Parent", true, false, false},
		{"teacher", true, false, false},
		{"FACULTY", false, true, false},
		{" admin ", false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			usr := User{Role: tt.role}
			assert.Equal(t, tt.student, usr.IsStudent())
			assert.Equal(t, tt.faculty, usr.IsFaculty())
			assert.Equal(t, tt.admin, usr.IsAdmin())
			// the role guard agrees with the predicates
			assert.Equal(t, tt.student, usr.HasAnyRole(RoleStudent))
			assert.Equal(t, tt.faculty, usr.HasAnyRole(RoleFaculty))
			assert.Equal(t, tt.admin, usr.HasAnyRole(RoleAdmin))
		})
	}

	assert.True(t, User{}.HasAnyRole(RoleStudent))
	assert.True(t, User{Role: "Admin"}.HasAnyRole(RoleFaculty, RoleAdmin))
	assert.False(t, User{Role: "student"}.HasAnyRole(RoleFaculty, RoleAdmin))
	assert.True(t, User{Role: "student"}.HasAnyRole())
}

func TestUser_Values(t *testing.T) {
	usr := User{
		Number:      "42",
		Password:    "pwd",
		Name:        "Sam",
		PendingFees: "1500",
		Role:        "student",
		Extra:       map[string]string{"Guardian": "Pat"},
	}
	vals := usr.Values()

	assert.Equal(t, "Sam", vals["name"])
	assert.Equal(t, "1500", vals["pendingFees"])
	assert.Equal(t, "1500", vals["pendingfees"])
	assert.Equal(t, "student", vals["Role"])
	assert.Equal(t, "student", vals["role"])
	assert.Equal(t, "Pat", vals["Guardian"])
	for _, v := range vals {
		assert.NotEqual(t, "pwd", v)
	}
	_, ok := vals["password"]
	assert.False(t, ok)
}

func TestCheckers(t *testing.T) {
	assert.True(t, PlaintextChecker{}.Check("abc", "abc"))
	assert.False(t, PlaintextChecker{}.Check("abc", "ABC"))
	assert.False(t, PlaintextChecker{}.Check("abc", ""))

	hash, err := HashPassword("abc")
	assert.NoError(t, err)
	assert.True(t, BcryptChecker{}.Check(hash, "abc"))
	assert.False(t, BcryptChecker{}.Check(hash, "abd"))
	assert.False(t, BcryptChecker{}.Check("", ""))

	assert.IsType(t, PlaintextChecker{}, NewChecker(false))
	assert.IsType(t, BcryptChecker{}, NewChecker(true))
}
