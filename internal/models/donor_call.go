package models

// DonorCall описывает грантовый конкурс донора.
// SDGTags и Keywords хранятся как упорядоченные множества без дублей.
type DonorCall struct {
	ID          int64    `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description"`
	SDGTags     []string `db:"-" json:"sdg_tags"`
	Keywords    []string `db:"-" json:"keywords"`
}

// DonorMatch - конкурс, у которого есть общие SDG теги с заявкой.
type DonorMatch struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
