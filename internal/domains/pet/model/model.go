package model

import (
	"furever/shared/model"
	"time"
)

const (
	TableName  = "pets"
	EntityName = "pet"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldName   = "name"
)

type Pet struct {
	ID          int64      `db:"id"`
	UserID      string     `db:"user_id"`
	Name        string     `db:"name"`
	Species     string     `db:"species"`
	Breed       *string    `db:"breed"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	DateOfDeath *time.Time `db:"date_of_death"`
	model.Metadata
}
