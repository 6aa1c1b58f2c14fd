package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

// NamedRepository covers the tables that are nothing but a unique name.
type NamedRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, name string) (*T, error)
	Rename(ctx context.Context, id int64, name string) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type namedRepository[T any] struct {
	db     *gorm.DB
	label  string
	newRow func(name string) *T
}

func NewCategoryRepository(db *gorm.DB) NamedRepository[models.Category] {
	return &namedRepository[models.Category]{db: db, label: "category", newRow: func(name string) *models.Category {
		return &models.Category{Name: name}
	}}
}

func NewCuisineRepository(db *gorm.DB) NamedRepository[models.Cuisine] {
	return &namedRepository[models.Cuisine]{db: db, label: "cuisine", newRow: func(name string) *models.Cuisine {
		return &models.Cuisine{Name: name}
	}}
}

func (r *namedRepository[T]) List(ctx context.Context) ([]T, error) {
	var list []T
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.label, err)
	}
	return list, nil
}

func (r *namedRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, fmt.Errorf("get %s %d: %w", r.label, id, err)
	}
	return &row, nil
}

func (r *namedRepository[T]) Create(ctx context.Context, name string) (*T, error) {
	row := r.newRow(name)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create %s: %w", r.label, err)
	}
	return row, nil
}

func (r *namedRepository[T]) Rename(ctx context.Context, id int64, name string) (*T, error) {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return nil, fmt.Errorf("rename %s %d: %w", r.label, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("rename %s %d: %w", r.label, id, gorm.ErrRecordNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *namedRepository[T]) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", r.label, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %d: %w", r.label, id, gorm.ErrRecordNotFound)
	}
	return nil
}

// listUsage returns every row of table with the distinct recipes that
// reference it through joinTable.fk.
func listUsage(db *gorm.DB, table, joinTable, fk string) ([]models.NameUsage, error) {
	var rows []struct {
		ID   int64
		Name string
	}
	if err := db.Table(table).Select("id, name").Order("name asc").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	var links []struct {
		OwnerID  int64
		RecipeID int64
	}
	if err := db.Table(joinTable).
		Distinct(fk+" AS owner_id", "recipe_id").
		Order("recipe_id").
		Scan(&links).Error; err != nil {
		return nil, fmt.Errorf("list %s usage: %w", table, err)
	}
	byOwner := make(map[int64][]int64)
	for _, l := range links {
		byOwner[l.OwnerID] = append(byOwner[l.OwnerID], l.RecipeID)
	}

	out := make([]models.NameUsage, len(rows))
	for i, row := range rows {
		ids := byOwner[row.ID]
		if ids == nil {
			ids = []int64{}
		}
		out[i] = models.NameUsage{ID: row.ID, Name: row.Name, RecipeIDs: ids}
	}
	return out, nil
}
