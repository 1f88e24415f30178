package models

// Student defines the student model based on the 'students' table. The
// transcript snapshot columns (ECTS, GPA, completed courses) are the inputs
// of the eligibility evaluation and are read-only for the workflow core.
type Student struct {
	ID               int64    `json:"id" db:"id" example:"301"`                               // Unique identifier for the student record
	UserID           int64    `json:"userId" db:"user_id" example:"5"`                        // ID of the associated user account
	StudentNumber    string   `json:"studentNumber" db:"student_number" example:"270201001"`  // Student's unique student number
	DepartmentID     int64    `json:"departmentId" db:"department_id" example:"1"`            // ID of the student's department
	EctsCompleted    int      `json:"ectsCompleted" db:"ects_completed" example:"120"`        // Total ECTS credits completed
	GPA              float64  `json:"gpa" db:"gpa" example:"2.85"`                            // Cumulative grade point average
	CompletedCourses []string `json:"completedCourses" db:"completed_courses"`                // Codes of the completed courses

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`       // Associated user information
	Department *Department `json:"department,omitempty"` // Associated department
}

// Progress returns the student's transcript snapshot as graduation progress
func (s *Student) Progress() GraduationProgress {
	return GraduationProgress{
		EctsCompleted:    s.EctsCompleted,
		GPA:              s.GPA,
		CompletedCourses: s.CompletedCourses,
	}
}
