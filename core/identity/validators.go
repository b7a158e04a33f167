package identity

import (
	"github.com/go-playground/validator/v10"

	"github.com/shareulbi/webcore/core"
)

var (
	validate = core.Validate

	userTypeTag  = "usertype"
	userTypeText = "invalid user type"

	npmRequiredTag        = "npm_required"
	npmRequiredText       = "npm is required for mahasiswa accounts"
	nidnRequiredTag       = "nidn_required"
	nidnRequiredText      = "nidn is required for dosen accounts"
	departmentRequiredTag = "department_required"
	departmentText        = "department is required"
	occupationRequiredTag = "occupation_required"
	occupationText        = "occupation is required for other accounts"
)

func init() {
	// register validators
	_ = validate.RegisterValidation(userTypeTag, userTypeValidation)
	core.RegisterCustomTranslation(userTypeTag, userTypeText)

	validate.RegisterStructValidation(registrationStructValidation, Registration{})
	core.RegisterCustomTranslation(npmRequiredTag, npmRequiredText)
	core.RegisterCustomTranslation(nidnRequiredTag, nidnRequiredText)
	core.RegisterCustomTranslation(departmentRequiredTag, departmentText)
	core.RegisterCustomTranslation(occupationRequiredTag, occupationText)
}

// userTypeValidation checks that the provided user type is a registerable one.
func userTypeValidation(fl validator.FieldLevel) bool {
	switch UserType(fl.Field().String()) {
	case UserTypeMahasiswa, UserTypeDosen, UserTypeOthers:
		return true
	}
	return false
}

// registrationStructValidation enforces the per-user-type required fields.
func registrationStructValidation(sl validator.StructLevel) {
	reg, ok := sl.Current().Interface().(Registration)
	if !ok {
		return
	}
	switch reg.UserType {
	case UserTypeMahasiswa:
		if reg.NPM == "" {
			sl.ReportError(reg.NPM, "npm", "NPM", npmRequiredTag, "")
		}
		if reg.DepartmentID == "" {
			sl.ReportError(reg.DepartmentID, "department_id", "DepartmentID", departmentRequiredTag, "")
		}
	case UserTypeDosen:
		if reg.NIDN == "" {
			sl.ReportError(reg.NIDN, "nidn", "NIDN", nidnRequiredTag, "")
		}
		if reg.DepartmentID == "" {
			sl.ReportError(reg.DepartmentID, "department_id", "DepartmentID", departmentRequiredTag, "")
		}
	case UserTypeOthers:
		if reg.Occupation == "" {
			sl.ReportError(reg.Occupation, "occupation", "Occupation", occupationRequiredTag, "")
		}
	}
}

func clean(s string) string {
	return core.CleanString(s)
}

func cleanEmail(s string) string {
	return core.CleanString(s, true)
}
