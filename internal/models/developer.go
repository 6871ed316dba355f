package models

// Status is the lifecycle state of a developer record.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// Developer is a tracked developer record. ID is zero until the row is first persisted.
// Email uniqueness is enforced by the service layer, not by the table.
type Developer struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null;index"`
	Specialty string `gorm:"type:varchar(255);index:idx_developers_status_specialty,priority:2"`
	Status    Status `gorm:"type:varchar(32);not null;default:ACTIVE;index:idx_developers_status_specialty,priority:1"`
}

// IsActive reports whether the record has not been soft deleted.
func (d Developer) IsActive() bool { return d.Status == StatusActive }
