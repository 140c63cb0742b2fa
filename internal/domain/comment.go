package domain

// Comment represents a comment on a board. UserID is the author's member id.
type Comment struct {
	ID      uint   `gorm:"column:comment_id;primaryKey;autoIncrement" json:"id"`
	BoardID uint   `gorm:"not null;index:idx_comments_board_id" json:"boardId"`
	UserID  uint   `gorm:"not null;index:idx_comments_user_id" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`
	Timestamps
	Board  *Board  `gorm:"foreignKey:BoardID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Member *Member `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
