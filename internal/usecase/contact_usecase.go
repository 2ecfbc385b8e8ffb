package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrContactNotFound   = errors.New("contact not found")
	ErrInvalidContactID  = errors.New("invalid contact id")
	ErrInvalidContact    = errors.New("invalid contact")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// IContactUseCase is plain CRUD over customers and leads. Deleting a contact never touches
// orders: they hold copied values, not references.
type IContactUseCase interface {
	AddContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	UpdateContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	ListContacts(ctx context.Context) []entities.Contact
}

type ContactUseCase struct {
	store *Store
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(store *Store) *ContactUseCase {
	return &ContactUseCase{store: store}
}

func (u *ContactUseCase) AddContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c, err := prepareContact(c)
	if err != nil {
		return entities.Contact{}, err
	}
	c.ID = u.store.NewID()
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		st.Contacts = append(st.Contacts, c)
		return []entities.Slot{entities.SlotContacts}
	})
	log.Printf("[contact][usecase] add id=%s type=%s", c.ID, c.Type)
	return c, nil
}

func (u *ContactUseCase) UpdateContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Contact{}, ErrInvalidContactID
	}
	c, err := prepareContact(c)
	if err != nil {
		return entities.Contact{}, err
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for i := range st.Contacts {
			if st.Contacts[i].ID == c.ID {
				st.Contacts[i] = c
				found = true
				return []entities.Slot{entities.SlotContacts}
			}
		}
		return nil
	})
	if !found {
		return entities.Contact{}, ErrContactNotFound
	}
	return c, nil
}

func (u *ContactUseCase) DeleteContact(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidContactID
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		for i := range st.Contacts {
			if st.Contacts[i].ID == id {
				st.Contacts = append(st.Contacts[:i:i], st.Contacts[i+1:]...)
				found = true
				return []entities.Slot{entities.SlotContacts}
			}
		}
		return nil
	})
	if !found {
		return ErrContactNotFound
	}
	log.Printf("[contact][usecase] delete id=%s", id)
	return nil
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	id = strings.TrimSpace(id)
	for _, c := range u.store.Snapshot().Contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Contact{}, ErrContactNotFound
}

func (u *ContactUseCase) ListContacts(ctx context.Context) []entities.Contact {
	return u.store.Snapshot().Contacts
}

// prepareContact applies the Lead default and rejects values outside the closed enums.
func prepareContact(c entities.Contact) (entities.Contact, error) {
	if strings.TrimSpace(c.Name) == "" {
		return entities.Contact{}, ErrInvalidContact
	}
	if c.Type != "" && !c.Type.Valid() {
		return entities.Contact{}, ErrInvalidContact
	}
	if c.LeadStatus != "" && !c.LeadStatus.Valid() {
		return entities.Contact{}, ErrInvalidLeadStatus
	}
	c = c.Normalize()
	if c.Type == entities.ContactTypeCustomer {
		c.LeadStatus = ""
	}
	return c, nil
}
