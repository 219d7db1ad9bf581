package flatfile

import (
	"context"
	"strconv"
	"time"

	"stayledger/internal/domain/room"
	"stayledger/internal/infra"

	"github.com/google/uuid"
)

type RoomRepository struct {
	store *Store
}

func NewRoomRepository(store *Store) *RoomRepository {
	return &RoomRepository{store: store}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows, err := r.store.readTable(roomsFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row[0] == id.String() {
			return decodeRoom(row)
		}
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows, err := r.store.readTable(roomsFile)
	if err != nil {
		return nil, err
	}
	result := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		entity, decErr := decodeRoom(row)
		if decErr != nil {
			return nil, decErr
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *RoomRepository) Create(ctx context.Context, entity *room.Room) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.readTable(roomsFile)
	if err != nil {
		return uuid.Nil, err
	}
	for _, row := range rows {
		if row[1] == entity.Number() {
			return uuid.Nil, infra.WrapRepoErr("room number already exists", nil, infra.KindDuplicateKey)
		}
	}

	if err := r.store.appendRow(roomsFile, encodeRoom(entity, r.store.now())); err != nil {
		return uuid.Nil, err
	}
	return entity.ID(), nil
}

func (r *RoomRepository) SetLettable(ctx context.Context, id uuid.UUID, lettable bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.store.readTable(roomsFile)
	if err != nil {
		return err
	}

	found := false
	for _, row := range rows {
		if row[0] == id.String() {
			row[6] = strconv.FormatBool(lettable)
			row[8] = r.store.now().Format(time.RFC3339)
			found = true
		}
	}
	if !found {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return r.store.rewriteTable(roomsFile, rows)
}

func encodeRoom(entity *room.Room, now time.Time) []string {
	return []string{
		entity.ID().String(),
		entity.Number(),
		entity.RoomType(),
		strconv.FormatInt(entity.NightlyRateCents(), 10),
		strconv.Itoa(entity.Capacity()),
		entity.Description(),
		strconv.FormatBool(entity.Lettable()),
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	}
}

func decodeRoom(row []string) (*room.Room, error) {
	if len(row) != len(tableHeaders[roomsFile]) {
		return nil, infra.WrapRepoErr("malformed room row", nil)
	}

	id, err := uuid.Parse(row[0])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed room id", err)
	}
	rate, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed nightly rate", err)
	}
	capacity, err := strconv.Atoi(row[4])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed capacity", err)
	}
	lettable, err := strconv.ParseBool(row[6])
	if err != nil {
		return nil, infra.WrapRepoErr("malformed lettable flag", err)
	}
	createdAt, _ := time.Parse(time.RFC3339, row[7])
	updatedAt, _ := time.Parse(time.RFC3339, row[8])

	return room.ReconstructRoom(id, row[1], row[2], rate, capacity, row[5], lettable, createdAt, updatedAt), nil
}
