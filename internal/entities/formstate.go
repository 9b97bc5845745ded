package entities

import (
	"gorm.io/gorm"
)

// FormState is the persisted state of one payment form.
//
// Data is the JSON serialization of PaymentData. It is stored as text and only
// parsed by the interaction layer, so a corrupt entry can be detected and discarded.
type FormState struct {
	gorm.Model
	StorageKey string `gorm:"uniqueIndex;type:varchar(80) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;NOT NULL"`
	Data       string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
}

// TableName keeps the table name singular.
func (FormState) TableName() string {
	return "form_state"
}
