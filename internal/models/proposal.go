package models

// Proposal описывает сгенерированную заявку. Содержимое не редактируется после создания.
type Proposal struct {
	ID      int64  `db:"id" json:"id"`
	OwnerID int64  `db:"owner_id" json:"owner_id"`
	Topic   string `db:"topic" json:"topic"`
	Content string `db:"content" json:"content"`
}
