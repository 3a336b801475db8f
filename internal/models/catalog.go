package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	IconTypeAccount  = "account"
	IconTypeCategory = "category"
)

// Icon decorates accounts and categories. Seeded once, read-only through the API.
type Icon struct {
	ID   uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name string     `gorm:"type:varchar(100);not null" json:"name"`
	URL  string     `gorm:"type:text;not null" json:"url"`
	Tags StringList `gorm:"type:text" json:"tags"`
	Type string     `gorm:"type:varchar(20);not null;index" json:"type"`
}

func (i *Icon) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if !IsValidIconType(i.Type) {
		return fmt.Errorf("invalid icon type: %s", i.Type)
	}
	return nil
}

func (i *Icon) TableName() string {
	return "icons"
}

type Color struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name"`
	TailwindClass string    `gorm:"type:varchar(50);not null" json:"tailwindClass"`
	Hex           string    `gorm:"type:varchar(9);not null" json:"hex"`
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Color) TableName() string {
	return "colors"
}

func IsValidIconType(t string) bool {
	return t == IconTypeAccount || t == IconTypeCategory
}

// StringList stores a list of strings as a JSON text column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	bytes, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(bytes, (*[]string)(l))
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
