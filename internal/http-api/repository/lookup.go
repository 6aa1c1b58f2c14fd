package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"greenkitchen/internal/http-api/models"
)

// LookupKind names a table whose rows are created on first reference by name.
type LookupKind string

const (
	KindIngredient LookupKind = "ingredient"
	KindTag        LookupKind = "tag"
)

var ErrBlankName = errors.New("name must not be blank")

type namedRow interface {
	PrimaryID() int64
}

func (k LookupKind) newRow(name string) (namedRow, error) {
	switch k {
	case KindIngredient:
		return &models.Ingredient{Name: name}, nil
	case KindTag:
		return &models.Tag{Name: name}, nil
	}
	return nil, fmt.Errorf("unknown lookup kind %q", k)
}

func (k LookupKind) table() string {
	if k == KindTag {
		return "tags"
	}
	return "ingredients"
}

// ResolveOrCreate returns the id of the kind row named exactly name,
// inserting it if absent. It must be given the caller's transaction so the
// new row commits or rolls back with the rest of the write. The unique
// index on name decides concurrent inserts: the loser's insert is a no-op
// and the winner's row is read back.
func ResolveOrCreate(tx *gorm.DB, kind LookupKind, name string) (int64, error) {
	if name == "" {
		return 0, ErrBlankName
	}

	id, err := findByName(tx, kind, name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	row, err := kind.newRow(name)
	if err != nil {
		return 0, err
	}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return 0, fmt.Errorf("insert %s %q: %w", kind, name, res.Error)
	}
	if res.RowsAffected == 1 && row.PrimaryID() != 0 {
		return row.PrimaryID(), nil
	}

	return findByName(tx, kind, name)
}

func findByName(tx *gorm.DB, kind LookupKind, name string) (int64, error) {
	var found struct{ ID int64 }
	if err := tx.Table(kind.table()).Select("id").Where("name = ?", name).Take(&found).Error; err != nil {
		return 0, fmt.Errorf("find %s %q: %w", kind, name, err)
	}
	return found.ID, nil
}
