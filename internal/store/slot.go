package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gwcare/glowy/ent"
	"github.com/gwcare/glowy/ent/stateslot"
)

// slotRepo implements SlotRepo using the ent client.
type slotRepo struct {
	client *ent.Client
}

func (r *slotRepo) Get(ctx context.Context, key string, dest any) (bool, error) {
	s, err := r.client.StateSlot.Query().
		Where(stateslot.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query slot %q: %w", key, err)
	}

	raw, err := json.Marshal(s.Data)
	if err != nil {
		return false, fmt.Errorf("remarshal slot %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode slot %q: %w", key, err)
	}
	return true, nil
}

func (r *slotRepo) Put(ctx context.Context, key string, value any) error {
	data, err := toMap(value)
	if err != nil {
		return fmt.Errorf("marshal slot %q: %w", key, err)
	}

	existing, err := r.client.StateSlot.Query().
		Where(stateslot.Key(key)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetData(data).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.StateSlot.Create().SetKey(key).SetData(data).Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

func (r *slotRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.StateSlot.Delete().
		Where(stateslot.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}
	return nil
}

func (r *slotRepo) Clear(ctx context.Context) error {
	_, err := r.client.StateSlot.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear slots: %w", err)
	}
	return nil
}

// toMap round-trips a value through JSON into the map shape the ent
// JSON field stores.
func toMap(value any) (map[string]any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
