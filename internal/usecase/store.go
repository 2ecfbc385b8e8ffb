package usecase

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// Snapshot is every collection the dashboard owns. It is also the layout of an
// import file: an object keyed by slot name.
type Snapshot struct {
	Orders       []entities.Order    `json:"orders"`
	History      []entities.Order    `json:"history"`
	Contacts     []entities.Contact  `json:"contacts"`
	Trainings    []entities.Training `json:"trainings"`
	Letters      []entities.Letter   `json:"letters"`
	Tasks        []entities.Task     `json:"tasks"`
	Products     []entities.Product  `json:"products"`
	MachineTypes []string            `json:"machineTypes"`
}

// FallbackFunc builds the bundled dataset used for slots that were never written.
type FallbackFunc func(today entities.Date) Snapshot

// ChangeFunc observes a collection after it was persisted.
type ChangeFunc func(ctx context.Context, snap Snapshot)

// Store owns the eight collections and is their only write surface.
//
// Persistence contract:
//   - Load reads every slot once; absent slots fall back to the bundled dataset
//   - a slot that cannot be read or decoded starts empty and is never written
//     until Replace installs a whole snapshot
//   - every mutation overwrites the slots it touched, whole-collection
//   - save failures are logged and swallowed; memory stays authoritative for the session
//   - multi-slot mutations are not atomic across slots
type Store struct {
	mu       sync.Mutex
	repo     interfaces.ISlotRepository
	clock    interfaces.IClock
	ids      interfaces.IIDGenerator
	fallback FallbackFunc
	state    Snapshot
	loaded   bool
	lastErr  error
	watchers map[entities.Slot][]ChangeFunc

	unreadable map[entities.Slot]bool
}

// ErrSlotUnreadable is reported when a write to a slot that failed to load is held back.
var ErrSlotUnreadable = errors.New("slot failed to load; not overwriting stored data")

func NewStore(repo interfaces.ISlotRepository, clock interfaces.IClock, ids interfaces.IIDGenerator, fallback FallbackFunc) *Store {
	if fallback == nil {
		fallback = func(entities.Date) Snapshot { return Snapshot{} }
	}
	return &Store{
		repo:     repo,
		clock:    clock,
		ids:      ids,
		fallback: fallback,
		state:    emptySnapshot(),
		watchers: map[entities.Slot][]ChangeFunc{},

		unreadable: map[entities.Slot]bool{},
	}
}

// Today is the current calendar date in the clock's location.
func (s *Store) Today() entities.Date {
	return entities.DateOf(s.clock.Now())
}

func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// NewID issues an id for a client-created record.
func (s *Store) NewID() string {
	return s.ids.NewID()
}

// Watch registers fn to run after every persisted change of slot.
func (s *Store) Watch(slot entities.Slot, fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers[slot] = append(s.watchers[slot], fn)
}

// Load materializes every slot from storage, applying field repairs.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fallback *Snapshot
	sample := func() Snapshot {
		if fallback == nil {
			fb := s.fallback(s.Today())
			fallback = &fb
		}
		return *fallback
	}

	next := emptySnapshot()
	unreadable := map[entities.Slot]bool{}
	var errs []error
	for _, slot := range entities.Slots {
		payload, found, err := s.repo.Load(ctx, slot)
		if err != nil {
			log.Printf("[store][load] slot=%s err=%v; slot left empty and read-only", slot, err)
			errs = append(errs, fmt.Errorf("load %s: %w", slot, err))
			unreadable[slot] = true
			continue
		}
		if !found {
			log.Printf("[store][load] slot=%s source=sample", slot)
			assignSlot(&next, slot, sample())
			continue
		}
		if err := decodeSlot(&next, slot, payload); err != nil {
			log.Printf("[store][load] slot=%s decode failed err=%v; slot left empty and read-only", slot, err)
			errs = append(errs, fmt.Errorf("decode %s: %w", slot, err))
			unreadable[slot] = true
			continue
		}
		log.Printf("[store][load] slot=%s source=storage bytes=%d", slot, len(payload))
	}

	s.state = next
	s.unreadable = unreadable
	s.loaded = true
	return errors.Join(errs...)
}

// Unreadable lists the slots whose stored data could not be loaded. Writes to them
// are held back until Replace.
func (s *Store) Unreadable() []entities.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.Slot
	for _, slot := range entities.Slots {
		if s.unreadable[slot] {
			out = append(out, slot)
		}
	}
	return out
}

// Replace swaps in a whole snapshot (import) after running the same repairs as Load,
// then persists the given slots, or every slot when none are named. Persisted slots
// are writable again even if they failed to load.
func (s *Store) Replace(ctx context.Context, snap Snapshot, slots ...entities.Slot) error {
	if len(slots) == 0 {
		slots = entities.Slots
	}
	s.mu.Lock()
	s.state = repairSnapshot(snap)
	s.loaded = true
	for _, slot := range slots {
		delete(s.unreadable, slot)
	}
	err := s.persistLocked(ctx, slots...)
	state := s.state.clone()
	watchers := s.watchersFor(slots)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(ctx, state)
	}
	return err
}

// DecodeImport reads an export keyed by slot name on top of base. A slot value may be
// the JSON array itself or a string holding it, as the browser stored it. Slots absent
// from data keep base's content; records without an id get one from newID. It returns
// the slots found in data.
func DecodeImport(data []byte, base Snapshot, newID func() string) (Snapshot, []entities.Slot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, nil, fmt.Errorf("import is not a JSON object: %w", err)
	}

	out := base.clone()
	var found []entities.Slot
	for _, slot := range entities.Slots {
		payload, ok := raw[string(slot)]
		if !ok {
			continue
		}
		var inner string
		if err := json.Unmarshal(payload, &inner); err == nil {
			payload = json.RawMessage(inner)
		}
		if err := decodeSlot(&out, slot, payload); err != nil {
			return Snapshot{}, nil, fmt.Errorf("decode %s: %w", slot, err)
		}
		found = append(found, slot)
		delete(raw, string(slot))
	}
	for key := range raw {
		log.Printf("[store][import] unknown key=%s skipped", key)
	}
	if newID != nil {
		fillMissingIDs(&out, newID)
	}
	return out, found, nil
}

func fillMissingIDs(st *Snapshot, newID func() string) {
	for i := range st.Contacts {
		if st.Contacts[i].ID == "" {
			st.Contacts[i].ID = newID()
		}
	}
	for i := range st.Trainings {
		if st.Trainings[i].ID == "" {
			st.Trainings[i].ID = newID()
		}
	}
	for i := range st.Letters {
		if st.Letters[i].ID == "" {
			st.Letters[i].ID = newID()
		}
	}
	for i := range st.Tasks {
		if st.Tasks[i].ID == "" {
			st.Tasks[i].ID = newID()
		}
	}
	for i := range st.Products {
		if st.Products[i].ID == "" {
			st.Products[i].ID = newID()
		}
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Flush rewrites every slot and reports what failed.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx, entities.Slots...)
}

// LastError is the most recent persistence failure, nil once a later write succeeds.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// mutate applies fn under the lock. fn returns the slots it changed; those are
// persisted and their watchers notified. Returning no slots means nothing changed.
func (s *Store) mutate(ctx context.Context, fn func(st *Snapshot) []entities.Slot) {
	s.mu.Lock()
	dirty := fn(&s.state)
	if len(dirty) == 0 {
		s.mu.Unlock()
		return
	}
	_ = s.persistLocked(ctx, dirty...)
	state := s.state.clone()
	watchers := s.watchersFor(dirty)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(ctx, state)
	}
}

func (s *Store) watchersFor(slots []entities.Slot) []ChangeFunc {
	var out []ChangeFunc
	for _, slot := range slots {
		out = append(out, s.watchers[slot]...)
	}
	return out
}

func (s *Store) persistLocked(ctx context.Context, slots ...entities.Slot) error {
	var errs []error
	for _, slot := range slots {
		if s.unreadable[slot] {
			log.Printf("[store][save] slot=%s skipped; stored data unreadable", slot)
			errs = append(errs, fmt.Errorf("save %s: %w", slot, ErrSlotUnreadable))
			continue
		}
		payload, err := encodeSlot(s.state, slot)
		if err == nil {
			err = s.repo.Save(ctx, slot, payload)
		}
		if err != nil {
			log.Printf("[store][save] slot=%s err=%v", slot, err)
			errs = append(errs, fmt.Errorf("save %s: %w", slot, err))
			continue
		}
	}
	s.lastErr = errors.Join(errs...)
	return s.lastErr
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Orders:       []entities.Order{},
		History:      []entities.Order{},
		Contacts:     []entities.Contact{},
		Trainings:    []entities.Training{},
		Letters:      []entities.Letter{},
		Tasks:        []entities.Task{},
		Products:     []entities.Product{},
		MachineTypes: []string{},
	}
}

func encodeSlot(st Snapshot, slot entities.Slot) ([]byte, error) {
	switch slot {
	case entities.SlotOrders:
		return json.Marshal(st.Orders)
	case entities.SlotHistory:
		return json.Marshal(st.History)
	case entities.SlotContacts:
		return json.Marshal(st.Contacts)
	case entities.SlotTrainings:
		return json.Marshal(st.Trainings)
	case entities.SlotLetters:
		return json.Marshal(st.Letters)
	case entities.SlotTasks:
		return json.Marshal(st.Tasks)
	case entities.SlotProducts:
		return json.Marshal(st.Products)
	case entities.SlotMachineTypes:
		return json.Marshal(st.MachineTypes)
	}
	return nil, fmt.Errorf("unknown slot %q", slot)
}

func decodeSlot(st *Snapshot, slot entities.Slot, payload []byte) error {
	var decoded Snapshot
	var err error
	switch slot {
	case entities.SlotOrders, entities.SlotHistory, entities.SlotProducts:
		if payload, err = normalizeAmounts(payload); err != nil {
			return err
		}
	}
	switch slot {
	case entities.SlotOrders:
		err = json.Unmarshal(payload, &decoded.Orders)
	case entities.SlotHistory:
		err = json.Unmarshal(payload, &decoded.History)
	case entities.SlotContacts:
		err = json.Unmarshal(payload, &decoded.Contacts)
	case entities.SlotTrainings:
		err = json.Unmarshal(payload, &decoded.Trainings)
	case entities.SlotLetters:
		err = json.Unmarshal(payload, &decoded.Letters)
	case entities.SlotTasks:
		err = json.Unmarshal(payload, &decoded.Tasks)
	case entities.SlotProducts:
		err = json.Unmarshal(payload, &decoded.Products)
	case entities.SlotMachineTypes:
		err = json.Unmarshal(payload, &decoded.MachineTypes)
	default:
		return fmt.Errorf("unknown slot %q", slot)
	}
	if err != nil {
		return err
	}
	assignSlot(st, slot, repairSnapshot(decoded))
	return nil
}

func assignSlot(dst *Snapshot, slot entities.Slot, src Snapshot) {
	src = repairSnapshot(src).clone()
	switch slot {
	case entities.SlotOrders:
		dst.Orders = src.Orders
	case entities.SlotHistory:
		dst.History = src.History
	case entities.SlotContacts:
		dst.Contacts = src.Contacts
	case entities.SlotTrainings:
		dst.Trainings = src.Trainings
	case entities.SlotLetters:
		dst.Letters = src.Letters
	case entities.SlotTasks:
		dst.Tasks = src.Tasks
	case entities.SlotProducts:
		dst.Products = src.Products
	case entities.SlotMachineTypes:
		dst.MachineTypes = src.MachineTypes
	}
}

// repairSnapshot is the structural migration pass. Only field presence is inspected;
// there is no schema version.
func repairSnapshot(in Snapshot) Snapshot {
	out := in.clone()
	for i := range out.Contacts {
		out.Contacts[i] = out.Contacts[i].Normalize()
	}
	for i := range out.Products {
		out.Products[i] = out.Products[i].Normalize()
	}
	return out
}

func (st Snapshot) clone() Snapshot {
	out := Snapshot{
		Orders:       make([]entities.Order, len(st.Orders)),
		History:      make([]entities.Order, len(st.History)),
		Contacts:     append([]entities.Contact{}, st.Contacts...),
		Trainings:    append([]entities.Training{}, st.Trainings...),
		Letters:      append([]entities.Letter{}, st.Letters...),
		Tasks:        append([]entities.Task{}, st.Tasks...),
		Products:     make([]entities.Product, len(st.Products)),
		MachineTypes: append([]string{}, st.MachineTypes...),
	}
	for i, o := range st.Orders {
		out.Orders[i] = o.Clone()
	}
	for i, o := range st.History {
		out.History[i] = o.Clone()
	}
	for i, p := range st.Products {
		out.Products[i] = cloneProduct(p)
	}
	return out
}

func cloneProduct(p entities.Product) entities.Product {
	c := p
	c.Images = append([]entities.Attachment{}, p.Images...)
	c.Features = append([]string{}, p.Features...)
	c.Specifications = append([]entities.Specification{}, p.Specifications...)
	c.UseCases = append([]string{}, p.UseCases...)
	if p.Price != nil {
		price := *p.Price
		c.Price = &price
	}
	return c
}
