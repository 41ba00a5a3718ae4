package model

import "furever/shared/model"

const (
	TableName  = "service_providers"
	EntityName = "provider"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldName   = "name"
	FieldActive = "active"
)

type Provider struct {
	ID      int64   `db:"id"`
	UserID  string  `db:"user_id"`
	Name    string  `db:"name"`
	Address *string `db:"address"`
	Phone   *string `db:"phone"`
	Active  bool    `db:"active"`
	model.Metadata
}
