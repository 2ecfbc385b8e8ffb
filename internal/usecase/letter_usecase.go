package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrLetterNotFound      = errors.New("letter not found")
	ErrInvalidLetterID     = errors.New("invalid letter id")
	ErrInvalidLetterStatus = errors.New("invalid letter status")
	ErrLetterFileRequired  = errors.New("letter file is required")
)

// ILetterUseCase logs inbound correspondence. Status is user-set; any value may follow any other.
type ILetterUseCase interface {
	AddLetter(ctx context.Context, draft entities.LetterDraft) (entities.Letter, error)
	UpdateLetter(ctx context.Context, l entities.Letter) (entities.Letter, error)
	SetLetterStatus(ctx context.Context, id string, status entities.LetterStatus) (entities.Letter, error)
	DeleteLetter(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Letter, error)
	ListLetters(ctx context.Context) []entities.Letter
}

type LetterUseCase struct {
	store *Store
}

var _ ILetterUseCase = (*LetterUseCase)(nil)

func NewLetterUseCase(store *Store) *LetterUseCase {
	return &LetterUseCase{store: store}
}

func (u *LetterUseCase) AddLetter(ctx context.Context, draft entities.LetterDraft) (entities.Letter, error) {
	if !draft.LetterFile.Present() {
		return entities.Letter{}, ErrLetterFileRequired
	}
	l := draft.ToLetter(u.store.NewID())
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		st.Letters = append(st.Letters, l)
		return []entities.Slot{entities.SlotLetters}
	})
	log.Printf("[letter][usecase] add id=%s subject=%q", l.ID, l.Subject)
	return l, nil
}

func (u *LetterUseCase) UpdateLetter(ctx context.Context, l entities.Letter) (entities.Letter, error) {
	l.ID = strings.TrimSpace(l.ID)
	if l.ID == "" {
		return entities.Letter{}, ErrInvalidLetterID
	}
	if !l.Status.Valid() {
		return entities.Letter{}, ErrInvalidLetterStatus
	}
	if !l.LetterFile.Present() {
		return entities.Letter{}, ErrLetterFileRequired
	}
	return u.replace(ctx, l.ID, func(entities.Letter) entities.Letter { return l })
}

func (u *LetterUseCase) SetLetterStatus(ctx context.Context, id string, status entities.LetterStatus) (entities.Letter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Letter{}, ErrInvalidLetterID
	}
	if !status.Valid() {
		return entities.Letter{}, ErrInvalidLetterStatus
	}
	return u.replace(ctx, id, func(cur entities.Letter) entities.Letter {
		cur.Status = status
		return cur
	})
}

func (u *LetterUseCase) replace(ctx context.Context, id string, fn func(entities.Letter) entities.Letter) (entities.Letter, error) {
	var (
		updated entities.Letter
		found   bool
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for i := range st.Letters {
			if st.Letters[i].ID == id {
				st.Letters[i] = fn(st.Letters[i])
				updated = st.Letters[i]
				found = true
				return []entities.Slot{entities.SlotLetters}
			}
		}
		return nil
	})
	if !found {
		return entities.Letter{}, ErrLetterNotFound
	}
	return updated, nil
}

func (u *LetterUseCase) DeleteLetter(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLetterID
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for i := range st.Letters {
			if st.Letters[i].ID == id {
				st.Letters = append(st.Letters[:i:i], st.Letters[i+1:]...)
				found = true
				return []entities.Slot{entities.SlotLetters}
			}
		}
		return nil
	})
	if !found {
		return ErrLetterNotFound
	}
	log.Printf("[letter][usecase] delete id=%s", id)
	return nil
}

func (u *LetterUseCase) GetByID(ctx context.Context, id string) (entities.Letter, error) {
	id = strings.TrimSpace(id)
	for _, l := range u.store.Snapshot().Letters {
		if l.ID == id {
			return l, nil
		}
	}
	return entities.Letter{}, ErrLetterNotFound
}

func (u *LetterUseCase) ListLetters(ctx context.Context) []entities.Letter {
	return u.store.Snapshot().Letters
}
