package identity

// Role is the closed set of account roles known to the client. Role checks
// switch on these constants so a new role is a compile-time-visible change.
type Role string

const (
	RoleMahasiswa Role = "mahasiswa"
	RoleDosen     Role = "dosen"
	RoleAdmin     Role = "admin"
	RoleOthers    Role = "others"
)

var AllRoles = []Role{RoleMahasiswa, RoleDosen, RoleAdmin, RoleOthers}

func (r Role) Valid() bool {
	switch r {
	case RoleMahasiswa, RoleDosen, RoleAdmin, RoleOthers:
		return true
	}
	return false
}

// RoleRef is the role as the API serializes it.
type RoleRef struct {
	ID   int  `json:"id,omitempty"`
	Name Role `json:"name"`
}

// OnboardingStatus gates whether a registered account may use the
// authenticated area at all.
type OnboardingStatus string

const (
	OnboardingPending  OnboardingStatus = "pending"
	OnboardingApproved OnboardingStatus = "approved"
	OnboardingRejected OnboardingStatus = "rejected"
)

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Identity is the signed-in principal as known to the client. It is owned by
// the session store; consumers only ever see copies.
type Identity struct {
	ID               string           `json:"id"`
	FullName         string           `json:"fullname"`
	Email            string           `json:"email"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status"`
	Role             RoleRef          `json:"role"`
	Department       *Department      `json:"department,omitempty"`
}

func (idn Identity) IsAdmin() bool {
	return idn.Role.Name == RoleAdmin
}

func (idn Identity) IsDosen() bool {
	return idn.Role.Name == RoleDosen
}

func (idn Identity) IsMahasiswa() bool {
	return idn.Role.Name == RoleMahasiswa
}

// IsApproved reports whether the account cleared onboarding. Anything else
// ("pending", "rejected", unknown) must never reach a protected area.
func (idn Identity) IsApproved() bool {
	return idn.OnboardingStatus == OnboardingApproved
}

// UserType selects the registration flavor; it is not the same set as Role
// (admins are never self-registered).
type UserType string

const (
	UserTypeMahasiswa UserType = "mahasiswa"
	UserTypeDosen     UserType = "dosen"
	UserTypeOthers    UserType = "others"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Email = cleanEmail(c.Email)
	return validate.Struct(c)
}

// Registration contains information needed to register a new account.
// NPM and DepartmentID are required for mahasiswa, NIDN and DepartmentID for
// dosen, Occupation for others; the struct-level validator enforces this.
type Registration struct {
	FullName        string   `json:"fullname" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	ConfirmPassword string   `json:"confirm_password" validate:"required,eqfield=Password"`
	UserType        UserType `json:"user_type" validate:"required,usertype"`
	NPM             string   `json:"npm,omitempty"`
	NIDN            string   `json:"nidn,omitempty"`
	DepartmentID    string   `json:"department_id,omitempty"`
	Occupation      string   `json:"occupation,omitempty"`
}

func (reg *Registration) Validate() error {
	reg.FullName = clean(reg.FullName)
	reg.Email = cleanEmail(reg.Email)
	reg.NPM = clean(reg.NPM)
	reg.NIDN = clean(reg.NIDN)
	reg.Occupation = clean(reg.Occupation)
	return validate.Struct(reg)
}
