package handlers

import (
	"antenna_ops/internal/adapter/persistence/repository"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// today is 2024-07-18 for every handler test.
var testNow = time.Date(2024, 7, 18, 10, 0, 0, 0, time.Local)

func fixtureSnapshot() usecase.Snapshot {
	price := int64(185000)
	return usecase.Snapshot{
		Orders: []entities.Order{
			{ID: "ANN001", CustomerFirstName: "Abebe", CustomerFatherName: "Kebede", MachineType: "Grain Mill", MachinePrice: 250000,
				Prepayment: 100000, PaymentHistory: []entities.Payment{}, DeliveryDate: "2024-07-25", Status: entities.OrderStatusPending},
		},
		History: []entities.Order{
			{ID: "ANN002", CustomerFirstName: "Kebede", CustomerFatherName: "Tola", MachineType: "Grain Mill", MachinePrice: 90000,
				Prepayment: 90000, PaymentHistory: []entities.Payment{}, DeliveryDate: "2024-07-12", PaymentDate: "2024-07-15",
				Status: entities.OrderStatusCompleted},
		},
		Contacts: []entities.Contact{
			{ID: "c1", Name: "Almaz Bekele", Phone: "0911", Type: entities.ContactTypeLead, LeadStatus: entities.LeadStatusQualified},
			{ID: "c2", Name: "Tesfaye", Phone: "0922", Type: entities.ContactTypeCustomer, ProductInterest: "Oil Press"},
		},
		Trainings: []entities.Training{
			{ID: "t1", Name: "Hana", TrainingType: "Other", Payment: entities.PaymentStatePaid, Status: entities.TrainingStatusOngoing, DueDate: "2024-08-01"},
		},
		Letters: []entities.Letter{
			{ID: "l1", SenderName: "Ministry", Subject: "Permit", DateReceived: "2024-07-02", LetterFile: "data:application/pdf;base64,JVBERi0=",
				FileName: "permit.pdf", Status: entities.LetterStatusNew},
		},
		Tasks: []entities.Task{
			{ID: "k1", Title: "Call supplier", DueDate: "2024-07-20", Priority: entities.TaskPriorityHigh, Status: entities.TaskStatusToDo,
				Reminder: entities.ReminderTwoDaysBefore},
			{ID: "k2", Title: "File taxes", DueDate: "2024-07-10", Priority: entities.TaskPriorityLow, Status: entities.TaskStatusInProgress},
		},
		Products: []entities.Product{
			{ID: "p1", Name: "Hollow Block Machine", Model: "X2", ItemGroup: "Block Machine", Category: "Construction",
				Sector: entities.SectorMachineManufacturing, Price: &price, Specifications: []entities.Specification{{Label: "Power", Value: "5kW"}}},
		},
		MachineTypes: []string{"Grain Mill", "Block Machine"},
	}
}

// newFixtureStore returns a store over an empty in-memory repository seeded from fixtureSnapshot.
func newFixtureStore(t *testing.T) *usecase.Store {
	t.Helper()
	store := usecase.NewStore(repository.NewMemorySlotRepository(), fixedClock{now: testNow}, &seqIDs{},
		func(entities.Date) usecase.Snapshot { return fixtureSnapshot() })
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	return store
}

// fakeReader is a read-only store view for handlers tested with mocked use cases.
type fakeReader struct{ snap usecase.Snapshot }

func (f fakeReader) Snapshot() usecase.Snapshot { return f.snap }
func (f fakeReader) Today() entities.Date       { return entities.DateOf(testNow) }
func (f fakeReader) Now() time.Time             { return testNow }

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return out
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d body=%s", want, w.Code, w.Body.String())
	}
}
