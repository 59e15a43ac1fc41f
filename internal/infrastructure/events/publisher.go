// Package events publica eventos de estoque em RabbitMQ (fanout por exchange).
// O publicador é opcional: com AMQP_URL vazio a aplicação injeta nil e os
// casos de uso simplesmente não publicam.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/estoque"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
)

// Routing keys dos eventos publicados.
const (
	RKMovimento    = "estoque.movimento"
	RKAbaixoMinimo = "estoque.alerta_minimo"
	RKLoteExcluido = "estoque.lote_excluido"
)

var _ estoque.EventPublisher = (*Publisher)(nil)

// Publisher publicador de eventos sobre uma conexão AMQP.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher conecta no broker e declara o exchange (topic, durável).
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Close fecha canal e conexão.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Mensagens
type movimentoEvento struct {
	MovimentoID  string          `json:"movimento_id"`
	LoteID       string          `json:"lote_id"`
	Medicamento  string          `json:"medicamento"`
	Tipo         string          `json:"tipo"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	Motivo       string          `json:"motivo,omitempty"`
	ExecutadoPor string          `json:"executado_por"`
	ExecutadoEm  time.Time       `json:"executado_em"`
}

type alertaMinimoEvento struct {
	LoteID           string          `json:"lote_id"`
	Medicamento      string          `json:"medicamento"`
	Lote             string          `json:"lote"`
	QuantidadeAtual  decimal.Decimal `json:"quantidade_atual"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
}

type loteExcluidoEvento struct {
	LoteID              string          `json:"lote_id"`
	Medicamento         string          `json:"medicamento"`
	Lote                string          `json:"lote"`
	QuantidadeNoMomento decimal.Decimal `json:"quantidade_no_momento"`
	Motivo              string          `json:"motivo"`
	ExecutadoPor        string          `json:"executado_por"`
	ExcluidoEm          time.Time       `json:"excluido_em"`
}

// MovimentoRegistrado publica o evento de movimento gravado.
func (p *Publisher) MovimentoRegistrado(ctx context.Context, mov *entity.Movimento, medicamento string) {
	p.publishJSON(ctx, RKMovimento, movimentoEvento{
		MovimentoID:  mov.ID,
		LoteID:       mov.LoteID,
		Medicamento:  medicamento,
		Tipo:         mov.Tipo,
		Quantidade:   mov.Quantidade,
		Motivo:       mov.Motivo,
		ExecutadoPor: mov.ExecutadoPor,
		ExecutadoEm:  mov.ExecutadoEm,
	})
}

// EstoqueAbaixoDoMinimo publica o alerta de estoque no limiar mínimo ou abaixo.
func (p *Publisher) EstoqueAbaixoDoMinimo(ctx context.Context, lote *entity.LoteEstoque, medicamento string) {
	p.publishJSON(ctx, RKAbaixoMinimo, alertaMinimoEvento{
		LoteID:           lote.ID,
		Medicamento:      medicamento,
		Lote:             lote.Lote,
		QuantidadeAtual:  lote.QuantidadeAtual,
		QuantidadeMinima: lote.QuantidadeMinima,
	})
}

// LoteExcluido publica o evento de exclusão lógica.
func (p *Publisher) LoteExcluido(ctx context.Context, exclusao *entity.LoteExclusao) {
	p.publishJSON(ctx, RKLoteExcluido, loteExcluidoEvento{
		LoteID:              exclusao.LoteID,
		Medicamento:         exclusao.MedicamentoNome,
		Lote:                exclusao.Lote,
		QuantidadeNoMomento: exclusao.QuantidadeNoMomento,
		Motivo:              exclusao.Motivo,
		ExecutadoPor:        exclusao.ExecutadoPor,
		ExcluidoEm:          exclusao.ExcluidoEm,
	})
}

// publishJSON publica e apenas loga em caso de falha: a operação de estoque
// já foi confirmada e não pode ser desfeita por problema no broker.
func (p *Publisher) publishJSON(ctx context.Context, routingKey string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("evento: marshal")
		return
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("evento: publish")
	}
}
