package models

// TeamMember is a person filing weekly progress reports
type TeamMember struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Team  string `json:"team" gorm:"size:100" validate:"max=100"`
	Role  string `json:"role" gorm:"size:100" validate:"max=100"`

	Reports []Report `json:"reports,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
