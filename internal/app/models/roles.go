package models

// RoleType defines the user role type based on the 'users' table
type RoleType string

const (
	RoleStudent             RoleType = "STUDENT"
	RoleAdvisor             RoleType = "ADVISOR"
	RoleDepartmentSecretary RoleType = "DEPARTMENT_SECRETARY"
	RoleFacultyDeansOffice  RoleType = "FACULTY_DEANS_OFFICE"
	RoleStudentAffairs      RoleType = "STUDENT_AFFAIRS"
	RoleLibrary             RoleType = "LIBRARY"
	RoleSKS                 RoleType = "SKS"
	RoleDOITP               RoleType = "DOITP"
	RoleCareerOffice        RoleType = "CAREER_OFFICE"
	RoleRectorate           RoleType = "RECTORATE"
)

// AllRoles lists every valid role
var AllRoles = []RoleType{
	RoleStudent,
	RoleAdvisor,
	RoleDepartmentSecretary,
	RoleFacultyDeansOffice,
	RoleStudentAffairs,
	RoleLibrary,
	RoleSKS,
	RoleDOITP,
	RoleCareerOffice,
	RoleRectorate,
}

// stageByRole maps approval-chain roles to the pipeline stage they own.
// Roles without an entry (students, clearance offices, rectorate) can never
// act on the approval pipeline.
var stageByRole = map[RoleType]ApprovalStage{
	RoleAdvisor:             StageAdvisor,
	RoleDepartmentSecretary: StageDepartmentSecretary,
	RoleFacultyDeansOffice:  StageFacultyDeansOffice,
	RoleStudentAffairs:      StageStudentAffairs,
}

// officeByRole maps clearance-office roles to the office flag they own.
var officeByRole = map[RoleType]ClearanceOffice{
	RoleLibrary:      OfficeLibrary,
	RoleSKS:          OfficeSKS,
	RoleDOITP:        OfficeDOITP,
	RoleCareerOffice: OfficeCareerOffice,
}

// StageForRole returns the approval stage owned by the given role
func StageForRole(role RoleType) (ApprovalStage, bool) {
	stage, ok := stageByRole[role]
	return stage, ok
}

// OfficeForRole returns the clearance office owned by the given role
func OfficeForRole(role RoleType) (ClearanceOffice, bool) {
	office, ok := officeByRole[role]
	return office, ok
}

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to university staff (anything
// other than a student account)
func (r RoleType) IsStaff() bool {
	return r.IsValid() && r != RoleStudent
}
