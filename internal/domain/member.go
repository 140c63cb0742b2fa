package domain

// Role represents a member's role
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Member represents a registered user. Password holds a bcrypt hash.
type Member struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_members_email" json:"email"`
	Username string `gorm:"type:varchar(100);not null;index:idx_members_username" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Timestamps
}

// TableName specifies the table name for Member
func (Member) TableName() string {
	return "members"
}
