package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

// ErrContainerNotFound is returned when no container has the requested ID.
var ErrContainerNotFound = errors.New("container not found")

// ContainerRepository stores container snapshots: one containers row plus
// one container_slots row per slot.
type ContainerRepository struct {
	db *pgxpool.Pool
}

// NewContainerRepository creates a ContainerRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewContainerRepository(db *pgxpool.Pool) *ContainerRepository {
	return &ContainerRepository{db: db}
}

// Save writes snap, replacing any container already stored under snap.ID.
//
// Precondition: snap.ID must be non-empty and len(snap.Slots) == snap.Capacity.
// Postcondition: The stored rows match snap exactly, or nothing changed and a non-nil error is returned.
func (r *ContainerRepository) Save(ctx context.Context, snap inventory.Snapshot) error {
	if snap.ID == "" {
		return errors.New("saving container: empty ID")
	}
	if len(snap.Slots) != snap.Capacity {
		return fmt.Errorf("saving container %q: %d slots for capacity %d", snap.ID, len(snap.Slots), snap.Capacity)
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO containers (id, capacity, slot_capacity)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE
			SET capacity = EXCLUDED.capacity,
			    slot_capacity = EXCLUDED.slot_capacity,
			    updated_at = NOW()`,
			snap.ID, snap.Capacity, snap.SlotCapacity,
		); err != nil {
			return fmt.Errorf("upserting container: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM container_slots WHERE container_id = $1`, snap.ID); err != nil {
			return fmt.Errorf("clearing slots: %w", err)
		}

		batch := &pgx.Batch{}
		for _, s := range snap.Slots {
			var itemID, kindID *string
			amount, equipped := 0, false
			if s.Item != nil {
				id, kind := s.Item.ID, string(s.Item.Kind)
				itemID, kindID = &id, &kind
				amount, equipped = s.Item.Amount, s.Item.Equipped
			}
			batch.Queue(`
				INSERT INTO container_slots
					(container_id, slot_index, locked, item_id, kind_id, amount, equipped)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				snap.ID, s.Index, s.Locked, itemID, kindID, amount, equipped,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("inserting slots: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving container %q: %w", snap.ID, err)
	}
	return nil
}

// Load reads the snapshot stored under id.
//
// Precondition: id must be non-empty.
// Postcondition: Returns the Snapshot with slots in index order, or ErrContainerNotFound.
func (r *ContainerRepository) Load(ctx context.Context, id string) (inventory.Snapshot, error) {
	snap := inventory.Snapshot{ID: id}
	err := r.db.QueryRow(ctx,
		`SELECT capacity, slot_capacity FROM containers WHERE id = $1`, id,
	).Scan(&snap.Capacity, &snap.SlotCapacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.Snapshot{}, ErrContainerNotFound
		}
		return inventory.Snapshot{}, fmt.Errorf("loading container %q: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT slot_index, locked, item_id, kind_id, amount, equipped
		FROM container_slots WHERE container_id = $1 ORDER BY slot_index ASC`,
		id,
	)
	if err != nil {
		return inventory.Snapshot{}, fmt.Errorf("loading slots of %q: %w", id, err)
	}
	defer rows.Close()

	snap.Slots = make([]inventory.SlotSnapshot, 0, snap.Capacity)
	for rows.Next() {
		var (
			s        inventory.SlotSnapshot
			itemID   *string
			kindID   *string
			amount   int
			equipped bool
		)
		if err := rows.Scan(&s.Index, &s.Locked, &itemID, &kindID, &amount, &equipped); err != nil {
			return inventory.Snapshot{}, fmt.Errorf("scanning slot row: %w", err)
		}
		if kindID != nil {
			item := &inventory.ItemSnapshot{
				Kind:     inventory.KindID(*kindID),
				Amount:   amount,
				Equipped: equipped,
			}
			if itemID != nil {
				item.ID = *itemID
			}
			s.Item = item
		}
		snap.Slots = append(snap.Slots, s)
	}
	if err := rows.Err(); err != nil {
		return inventory.Snapshot{}, fmt.Errorf("reading slots of %q: %w", id, err)
	}
	return snap, nil
}

// Delete removes the container stored under id along with its slots.
//
// Postcondition: Returns ErrContainerNotFound if nothing was deleted.
func (r *ContainerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting container %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrContainerNotFound
	}
	return nil
}

// List returns the IDs of all stored containers in ascending order.
func (r *ContainerRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM containers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}
	return ids, nil
}

// SaveContainer snapshots c and saves it.
func (r *ContainerRepository) SaveContainer(ctx context.Context, c *inventory.Container) error {
	return r.Save(ctx, c.Snapshot())
}

// LoadContainer loads the snapshot stored under id and restores it against kinds.
//
// Postcondition: Returns ErrContainerNotFound, a restore error, or a live Container.
func (r *ContainerRepository) LoadContainer(ctx context.Context, id string, kinds inventory.KindProvider, opts ...inventory.Option) (*inventory.Container, error) {
	snap, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := inventory.Restore(snap, kinds, opts...)
	if err != nil {
		return nil, fmt.Errorf("restoring container %q: %w", id, err)
	}
	return c, nil
}
