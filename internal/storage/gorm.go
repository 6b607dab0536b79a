package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entrada is one slot of the key-value namespace as persisted by gorm.
type Entrada struct {
	Clave string `gorm:"primaryKey;size:64"`
	Valor string `gorm:"type:text"`
}

// TableName keeps the table name in the application's language.
func (Entrada) TableName() string { return "entradas" }

// GormKV persists the key-value namespace in a single table. Each Set rewrites
// the whole value for its key, matching the store's full-collection writes.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps an open gorm connection. The entradas table must have been
// migrated already (database.NewConnection does this).
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(key string) (string, bool, error) {
	var e Entrada
	err := g.db.First(&e, "clave = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Valor, true, nil
}

func (g *GormKV) Set(key, value string) error {
	e := Entrada{Clave: key, Valor: value}
	return g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&e).Error
}

func (g *GormKV) Delete(key string) error {
	return g.db.Delete(&Entrada{}, "clave = ?", key).Error
}
