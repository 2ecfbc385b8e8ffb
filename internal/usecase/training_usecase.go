package usecase

import (
	"antenna_ops/internal/domain/entities"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrTrainingNotFound          = errors.New("training not found")
	ErrInvalidTrainingID         = errors.New("invalid training id")
	ErrInvalidTrainingTransition = errors.New("invalid training status transition")
	ErrInvalidCertificate        = errors.New("invalid certificate")
)

// ITrainingUseCase manages course registrations.
//
// Lifecycle:
//   - AddTraining => Ongoing, no certificate
//   - CompleteTraining => Completed with either an uploaded file or a generated certificate
//   - UpdateTraining / DeleteTraining => direct edits
type ITrainingUseCase interface {
	AddTraining(ctx context.Context, draft entities.TrainingDraft) (entities.Training, error)
	UpdateTraining(ctx context.Context, t entities.Training) (entities.Training, error)
	CompleteTraining(ctx context.Context, id string, cert entities.Certificate) (entities.Training, error)
	DeleteTraining(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Training, error)
	ListTrainings(ctx context.Context) []entities.Training
}

type TrainingUseCase struct {
	store *Store
}

var _ ITrainingUseCase = (*TrainingUseCase)(nil)

func NewTrainingUseCase(store *Store) *TrainingUseCase {
	return &TrainingUseCase{store: store}
}

func (u *TrainingUseCase) AddTraining(ctx context.Context, draft entities.TrainingDraft) (entities.Training, error) {
	if draft.Payment == "" {
		draft.Payment = entities.PaymentStateUnpaid
	}
	t := draft.ToTraining(u.store.NewID())
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		st.Trainings = append(st.Trainings, t)
		return []entities.Slot{entities.SlotTrainings}
	})
	log.Printf("[training][usecase] add id=%s type=%q", t.ID, t.TrainingType)
	return t, nil
}

// UpdateTraining replaces the registration fields. Status and certificate only change
// through CompleteTraining.
func (u *TrainingUseCase) UpdateTraining(ctx context.Context, t entities.Training) (entities.Training, error) {
	t.ID = strings.TrimSpace(t.ID)
	if t.ID == "" {
		return entities.Training{}, ErrInvalidTrainingID
	}
	var (
		updated entities.Training
		found   bool
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexTraining(st.Trainings, t.ID)
		if i < 0 {
			return nil
		}
		found = true
		t.Status = st.Trainings[i].Status
		t.Certificate = st.Trainings[i].Certificate
		st.Trainings[i] = t
		updated = t
		return []entities.Slot{entities.SlotTrainings}
	})
	if !found {
		return entities.Training{}, ErrTrainingNotFound
	}
	return updated, nil
}

// CompleteTraining accepts an uploaded certificate (IssueDate and ID are dropped) or a
// generated one, whose IssueDate and ID may be empty and are defaulted at render time.
func (u *TrainingUseCase) CompleteTraining(ctx context.Context, id string, cert entities.Certificate) (entities.Training, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Training{}, ErrInvalidTrainingID
	}
	switch cert.Kind {
	case entities.CertificateUploaded:
		if !cert.File.Present() {
			return entities.Training{}, ErrInvalidCertificate
		}
		cert = entities.UploadedCertificate(cert.File)
	case entities.CertificateGenerated:
		if cert.IssueDate != "" && !cert.IssueDate.Valid() {
			return entities.Training{}, ErrInvalidCertificate
		}
		cert = entities.GeneratedCertificate(cert.IssueDate, strings.TrimSpace(cert.ID))
	default:
		return entities.Training{}, ErrInvalidCertificate
	}

	var (
		updated entities.Training
		err     error
	)
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexTraining(st.Trainings, id)
		if i < 0 {
			err = ErrTrainingNotFound
			return nil
		}
		if !st.Trainings[i].Status.CanTransitionTo(entities.TrainingStatusCompleted) {
			err = ErrInvalidTrainingTransition
			return nil
		}
		st.Trainings[i].Status = entities.TrainingStatusCompleted
		st.Trainings[i].Certificate = cert
		updated = st.Trainings[i]
		return []entities.Slot{entities.SlotTrainings}
	})
	if err != nil {
		log.Printf("[training][usecase] complete rejected id=%s err=%v", id, err)
		return entities.Training{}, err
	}
	log.Printf("[training][usecase] complete id=%s certificate=%d", id, cert.Kind)
	return updated, nil
}

func (u *TrainingUseCase) DeleteTraining(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTrainingID
	}
	found := false
	u.store.mutate(ctx, func(st *Snapshot) []entities.Slot {
		i := indexTraining(st.Trainings, id)
		if i < 0 {
			return nil
		}
		found = true
		st.Trainings = append(st.Trainings[:i:i], st.Trainings[i+1:]...)
		return []entities.Slot{entities.SlotTrainings}
	})
	if !found {
		return ErrTrainingNotFound
	}
	log.Printf("[training][usecase] delete id=%s", id)
	return nil
}

func (u *TrainingUseCase) GetByID(ctx context.Context, id string) (entities.Training, error) {
	snap := u.store.Snapshot()
	if i := indexTraining(snap.Trainings, strings.TrimSpace(id)); i >= 0 {
		return snap.Trainings[i], nil
	}
	return entities.Training{}, ErrTrainingNotFound
}

func (u *TrainingUseCase) ListTrainings(ctx context.Context) []entities.Training {
	return u.store.Snapshot().Trainings
}

func indexTraining(ts []entities.Training, id string) int {
	for i := range ts {
		if ts[i].ID == id {
			return i
		}
	}
	return -1
}
