package models

// Setting is a process-wide key/value configuration pair (company name, tax
// flag, ...). Values are opaque strings; no validation is applied.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SavedQuery is a user-curated SQL snippet for the report console.
type SavedQuery struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	SQL  string `gorm:"column:sql;not null"`
}
