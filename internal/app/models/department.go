package models

// Department represents a department together with its graduation
// requirements. Requirements are static configuration looked up by the
// eligibility evaluator; a department with EctsTotal <= 0 counts as
// unconfigured and falls back to the default department's requirements.
type Department struct {
	ID              int64    `json:"id" db:"id" example:"1"`
	Code            string   `json:"code" db:"code" example:"CENG"`
	Name            string   `json:"name" db:"name" example:"Computer Engineering"`
	EctsTotal       int      `json:"ectsTotal" db:"ects_total" example:"150"`
	MinGPA          float64  `json:"minGpa" db:"min_gpa" example:"2.0"`
	RequiredCourses []string `json:"requiredCourses" db:"required_courses"`
}

// Requirements returns the department's graduation requirements
func (d *Department) Requirements() GraduationRequirements {
	return GraduationRequirements{
		EctsTotal:       d.EctsTotal,
		MinGPA:          d.MinGPA,
		RequiredCourses: d.RequiredCourses,
	}
}

// HasRequirements reports whether graduation requirements are configured
// for this department
func (d *Department) HasRequirements() bool {
	return d.EctsTotal > 0
}

// GraduationRequirements holds the per-department graduation thresholds
type GraduationRequirements struct {
	EctsTotal       int      `json:"ectsTotal" example:"150"`
	MinGPA          float64  `json:"minGpa" example:"2.0"`
	RequiredCourses []string `json:"requiredCourses"`
}

// GraduationProgress is a student's transcript snapshot used as the input
// of the eligibility evaluation. It is never mutated, only recomputed.
type GraduationProgress struct {
	EctsCompleted    int      `json:"ectsCompleted" example:"120"`
	GPA              float64  `json:"gpa" example:"2.85"`
	CompletedCourses []string `json:"completedCourses"`
}
