package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSessionID(snap.SessionID).
		SetTimestamp(snap.Timestamp).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return fromEnt(s)
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The (keep+1)th newest snapshot and everything older goes.
	snapshots, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp), ent.Desc(snapshot.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	cut := snapshots[0]
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.Or(
			snapshot.TimestampLT(cut.Timestamp),
			snapshot.And(snapshot.TimestampEQ(cut.Timestamp), snapshot.IDLTE(cut.ID)),
		)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// fromEnt decodes a stored snapshot. Keys added to SnapshotData later
// decode as zero values from older rows.
func fromEnt(s *ent.Snapshot) (*Snapshot, error) {
	var data SnapshotData
	if len(s.Data) > 0 {
		if err := json.Unmarshal(s.Data, &data); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot %d: %w", s.ID, err)
		}
	}
	return &Snapshot{
		ID:        s.ID,
		SessionID: s.SessionID,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}
