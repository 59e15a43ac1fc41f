package repository

import "github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"

// MedicamentoRepository porta de persistência do cadastro de medicamentos.
type MedicamentoRepository interface {
	Create(m *entity.Medicamento) error
	GetByID(id string) (*entity.Medicamento, error)
	List(texto string, limit, offset int) ([]*entity.Medicamento, error)
}
