package model

// Card represents the database model for issued cards.
// Column types match card files written by earlier releases so AutoMigrate
// leaves existing tables untouched.
type Card struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Number  string `gorm:"column:number;type:text;uniqueIndex:idx_card_number"`
	PIN     string `gorm:"column:pin;type:text"`
	Balance int64  `gorm:"column:balance;type:integer;default:0"` // Minor units
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "card"
}
