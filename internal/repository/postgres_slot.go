package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartstate-demo/internal/port"
)

const (
	selectSlotSQL = `SELECT payload FROM cart_slots WHERE slot_key = $1`

	upsertSlotSQL = `INSERT INTO cart_slots (slot_key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (slot_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
)

type postgresSlot struct {
	q    querier
	pool *pgxpool.Pool
}

func NewPostgresSlot(pool *pgxpool.Pool) port.Slot {
	return &postgresSlot{
		q:    pool,
		pool: pool,
	}
}

func NewPostgresSlotWithTx(tx pgx.Tx) port.Slot {
	return &postgresSlot{
		q:    tx,
		pool: nil, // use provided transaction instead
	}
}

func (s *postgresSlot) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	var payload string
	err := s.q.QueryRow(ctx, selectSlotSQL, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("q.QueryRow: %w", err)
	}

	return []byte(payload), true, nil
}

func (s *postgresSlot) Write(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	_, err := withTx(ctx, s.pool, s.q, func(q querier) (struct{}, error) {
		if _, err := q.Exec(ctx, upsertSlotSQL, key, string(value)); err != nil {
			return struct{}{}, fmt.Errorf("q.Exec: %w", err)
		}
		return struct{}{}, nil
	})

	return err
}
