package model

type Client struct {
	BaseModel
	Name    string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	NIP     *string `gorm:"type:varchar(20)" json:"nip"`
	Address *string `gorm:"type:text" json:"address"`
	Phone   *string `gorm:"type:varchar(30)" json:"phone"`
	Email   *string `gorm:"type:varchar(255)" json:"email"`
	Notes   *string `gorm:"type:text" json:"notes"`
}
