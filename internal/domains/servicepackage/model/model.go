package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"furever/shared/model"
)

const (
	TableName  = "service_packages"
	EntityName = "service_package"

	FieldID         = "id"
	FieldProviderID = "provider_id"
	FieldName       = "name"
	FieldActive     = "active"
)

// StringList stores a list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// AddOn is an optional extra a provider offers on top of a package.
type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AddOnList stores package add-ons as a JSON column.
type AddOnList []AddOn

func (l AddOnList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	return json.Marshal(l)
}

func (l *AddOnList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported column type for JSON value")
	}
}

type ServicePackage struct {
	ID          int64      `db:"id"`
	ProviderID  int64      `db:"provider_id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Price       float64    `db:"price"`
	Inclusions  StringList `db:"inclusions"`
	AddOns      AddOnList  `db:"addons"`
	Images      StringList `db:"images"`
	Active      bool       `db:"active"`
	model.Metadata
}
