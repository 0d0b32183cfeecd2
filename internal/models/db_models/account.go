package db_models

// Account is a dashboard operator identity. The full auth provider lives
// outside this service; this table only backs token issuance for the
// reconciliation endpoints.
type Account struct {
	BaseModel
	Name         string `gorm:"size:128"`
	Email        string `gorm:"uniqueIndex;size:128"`
	PasswordHash string
	Role         string `gorm:"size:32"`
}
