package domain

// Board represents a post. MemberID is nil once the writer has withdrawn.
type Board struct {
	ID        uint   `gorm:"column:board_id;primaryKey;autoIncrement" json:"id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	Content   string `gorm:"type:text" json:"content"`
	ViewCount int64  `gorm:"not null;default:0" json:"viewCount"`
	MemberID  *uint  `gorm:"index:idx_boards_member_id" json:"memberId"`
	Timestamps
	Member *Member `gorm:"foreignKey:MemberID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
