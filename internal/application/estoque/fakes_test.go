package estoque_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês em memória com semântica transacional: o fakeTxRunner roda a função
// sobre uma cópia do estado e só "comita" (substitui o estado real) se a
// função retornar nil. Erro no meio descarta tudo, como a transação real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	lotes        map[string]*entity.LoteEstoque
	movimentos   []*entity.Movimento
	exclusoes    []*entity.LoteExclusao
	medicamentos map[string]*entity.Medicamento
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		lotes:        map[string]*entity.LoteEstoque{},
		medicamentos: map[string]*entity.Medicamento{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, l := range s.lotes {
		copia := *l
		c.lotes[id] = &copia
	}
	for id, m := range s.medicamentos {
		copia := *m
		c.medicamentos[id] = &copia
	}
	c.movimentos = append(c.movimentos, s.movimentos...)
	c.exclusoes = append(c.exclusoes, s.exclusoes...)
	return c
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *fakeStore
	// injeção de falha para testar rollback
	failMovimentoCreate error
	failExclusaoCreate  error
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	loteRepo repository.LoteRepository,
	movRepo repository.MovimentoRepository,
	exclusaoRepo repository.ExclusaoRepository,
) error) error {
	tx := r.store.clone()
	err := fn(
		&fakeLoteRepo{store: tx},
		&fakeMovimentoRepo{store: tx, failCreate: r.failMovimentoCreate},
		&fakeExclusaoRepo{store: tx, failCreate: r.failExclusaoCreate},
	)
	if err != nil {
		return err
	}
	*r.store = *tx
	return nil
}

// ── LoteRepository ────────────────────────────────────────────────────────────

type fakeLoteRepo struct {
	store *fakeStore
}

var _ repository.LoteRepository = (*fakeLoteRepo)(nil)

func (r *fakeLoteRepo) Create(lote *entity.LoteEstoque) error {
	copia := *lote
	r.store.lotes[lote.ID] = &copia
	return nil
}

func (r *fakeLoteRepo) GetByID(id string) (*entity.LoteEstoque, error) {
	l, ok := r.store.lotes[id]
	if !ok {
		return nil, nil
	}
	copia := *l
	return &copia, nil
}

func (r *fakeLoteRepo) GetForUpdate(id string) (*entity.LoteEstoque, error) {
	return r.GetByID(id)
}

func (r *fakeLoteRepo) GetByMedicamentoELote(medicamentoID, lote string) (*entity.LoteEstoque, error) {
	for _, l := range r.store.lotes {
		if l.MedicamentoID == medicamentoID && l.Lote == lote && !l.Excluido() {
			copia := *l
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeLoteRepo) Update(lote *entity.LoteEstoque) error {
	atual, ok := r.store.lotes[lote.ID]
	if !ok || atual.Excluido() {
		return domain.ErrLoteNotFound
	}
	copia := *lote
	r.store.lotes[lote.ID] = &copia
	return nil
}

func (r *fakeLoteRepo) UpdateQuantidade(id string, quantidade decimal.Decimal, quando time.Time) error {
	l, ok := r.store.lotes[id]
	if !ok || l.Excluido() {
		return domain.ErrLoteNotFound
	}
	l.QuantidadeAtual = quantidade
	l.UpdatedAt = quando
	return nil
}

func (r *fakeLoteRepo) MarcarExcluido(id string, quando time.Time) error {
	l, ok := r.store.lotes[id]
	if !ok || l.Excluido() {
		return domain.ErrLoteNotFound
	}
	l.DeletedAt = &quando
	l.UpdatedAt = quando
	return nil
}

func (r *fakeLoteRepo) ListAtivos(filter repository.LoteFilter) ([]*entity.LoteEstoque, error) {
	var out []*entity.LoteEstoque
	for _, l := range r.store.lotes {
		if l.Excluido() {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.Lote != "" && !strings.Contains(l.Lote, filter.Lote) {
			continue
		}
		copia := *l
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── MovimentoRepository ───────────────────────────────────────────────────────

type fakeMovimentoRepo struct {
	store      *fakeStore
	failCreate error
}

var _ repository.MovimentoRepository = (*fakeMovimentoRepo)(nil)

func (r *fakeMovimentoRepo) Create(movimento *entity.Movimento) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if movimento.RequestID != nil {
		for _, m := range r.store.movimentos {
			if m.RequestID != nil && *m.RequestID == *movimento.RequestID {
				return domain.ErrRequisicaoDuplicada
			}
		}
	}
	copia := *movimento
	r.store.movimentos = append(r.store.movimentos, &copia)
	return nil
}

func (r *fakeMovimentoRepo) ListByLote(loteID string) ([]*entity.Movimento, error) {
	var out []*entity.Movimento
	for _, m := range r.store.movimentos {
		if m.LoteID == loteID {
			copia := *m
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExecutadoEm.After(out[j].ExecutadoEm) })
	return out, nil
}

func (r *fakeMovimentoRepo) GetByRequestID(requestID string) (*entity.Movimento, error) {
	for _, m := range r.store.movimentos {
		if m.RequestID != nil && *m.RequestID == requestID {
			copia := *m
			return &copia, nil
		}
	}
	return nil, nil
}

// ── ExclusaoRepository ────────────────────────────────────────────────────────

type fakeExclusaoRepo struct {
	store      *fakeStore
	failCreate error
}

var _ repository.ExclusaoRepository = (*fakeExclusaoRepo)(nil)

func (r *fakeExclusaoRepo) Create(e *entity.LoteExclusao) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	copia := *e
	r.store.exclusoes = append(r.store.exclusoes, &copia)
	return nil
}

func (r *fakeExclusaoRepo) ListByLote(loteID string) ([]*entity.LoteExclusao, error) {
	var out []*entity.LoteExclusao
	for _, e := range r.store.exclusoes {
		if e.LoteID == loteID {
			copia := *e
			out = append(out, &copia)
		}
	}
	return out, nil
}

// ── MedicamentoRepository ─────────────────────────────────────────────────────

type fakeMedicamentoRepo struct {
	store *fakeStore
}

var _ repository.MedicamentoRepository = (*fakeMedicamentoRepo)(nil)

func (r *fakeMedicamentoRepo) Create(m *entity.Medicamento) error {
	copia := *m
	r.store.medicamentos[m.ID] = &copia
	return nil
}

func (r *fakeMedicamentoRepo) GetByID(id string) (*entity.Medicamento, error) {
	m, ok := r.store.medicamentos[id]
	if !ok {
		return nil, nil
	}
	copia := *m
	return &copia, nil
}

func (r *fakeMedicamentoRepo) List(texto string, limit, offset int) ([]*entity.Medicamento, error) {
	var out []*entity.Medicamento
	for _, m := range r.store.medicamentos {
		copia := *m
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── EventPublisher ────────────────────────────────────────────────────────────

type fakePublisher struct {
	movimentos []*entity.Movimento
	alertas    []*entity.LoteEstoque
	exclusoes  []*entity.LoteExclusao
}

var _ estoque.EventPublisher = (*fakePublisher)(nil)

func (p *fakePublisher) MovimentoRegistrado(_ context.Context, mov *entity.Movimento, _ string) {
	p.movimentos = append(p.movimentos, mov)
}

func (p *fakePublisher) EstoqueAbaixoDoMinimo(_ context.Context, lote *entity.LoteEstoque, _ string) {
	p.alertas = append(p.alertas, lote)
}

func (p *fakePublisher) LoteExcluido(_ context.Context, exclusao *entity.LoteExclusao) {
	p.exclusoes = append(p.exclusoes, exclusao)
}

// ── cenário base ──────────────────────────────────────────────────────────────

func seedLote(store *fakeStore, id string, quantidade, minima string) *entity.LoteEstoque {
	med := &entity.Medicamento{
		ID:   "med-" + id,
		Nome: "Dipirona 500mg",
	}
	store.medicamentos[med.ID] = med

	lote := &entity.LoteEstoque{
		ID:                 id,
		MedicamentoID:      med.ID,
		Lote:               "L2026-" + id,
		QuantidadeAtual:    decimal.RequireFromString(quantidade),
		QuantidadeMinima:   decimal.RequireFromString(minima),
		DataEntrada:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		ResponsavelEntrada: "Maria Souza",
		Status:             entity.StatusAtivo,
	}
	store.lotes[id] = lote
	return lote
}
