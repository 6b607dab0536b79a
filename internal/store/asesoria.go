package store

import (
	"encoding/json"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
)

// GetAsesoria returns the firm profile singleton, or nil if the store was
// never initialized.
func (s *Store) GetAsesoria() (*model.Asesoria, error) {
	value, ok, err := s.kv.Get(model.KeyAsesoria)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", model.KeyAsesoria, err)
	}
	if !ok {
		return nil, nil
	}
	var a model.Asesoria
	if err := json.Unmarshal([]byte(value), &a); err != nil {
		return nil, nil
	}
	return &a, nil
}

// SaveAsesoria overwrites the firm profile singleton, assigning an id if the
// caller left it empty.
func (s *Store) SaveAsesoria(a model.Asesoria) (model.Asesoria, error) {
	if a.ID == "" {
		a.ID = s.newID()
	}
	if err := s.setJSON(model.KeyAsesoria, a); err != nil {
		return model.Asesoria{}, err
	}
	return a, nil
}
