package handlers

import (
	response "antenna_ops/internal/adapter/http/dto/response"
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/export"
	"antenna_ops/internal/usecase"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestContactHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFixtureStore(t)
	h := NewContactHandler(usecase.NewContactUseCase(store))
	r := gin.New()
	r.GET("/v1/contacts", h.ListContacts)
	r.GET("/v1/contacts/lookup", h.Lookup)
	r.POST("/v1/contacts", h.CreateContact)
	r.GET("/v1/contacts/:id", h.GetContact)
	r.PUT("/v1/contacts/:id", h.UpdateContact)
	r.DELETE("/v1/contacts/:id", h.DeleteContact)

	t.Run("create lead defaults to new", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/contacts", `{"name":"Bereket","phone":"0933","type":"Lead"}`)
		assertStatus(t, w, http.StatusCreated)
		if got := decode[entities.Contact](t, w); got.LeadStatus != entities.LeadStatusNew || got.ID == "" {
			t.Fatalf("unexpected contact %+v", got)
		}
	})

	t.Run("invalid lead status", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/contacts", `{"name":"Bereket","type":"Lead","leadStatus":"Hot"}`)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("leads only sorted by status", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/contacts?leads=true&sort=status", "")
		assertStatus(t, w, http.StatusOK)
		got := decode[[]entities.Contact](t, w)
		if len(got) != 2 || got[0].Name != "Bereket" || got[1].Name != "Almaz Bekele" {
			t.Fatalf("unexpected leads %+v", got)
		}
	})

	t.Run("lookup needs two characters", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/contacts/lookup?q=a", "")
		assertStatus(t, w, http.StatusOK)
		if got := decode[[]entities.Contact](t, w); len(got) != 0 {
			t.Fatalf("expected no matches, got %+v", got)
		}
		w = serve(r, http.MethodGet, "/v1/contacts/lookup?q=092", "")
		if got := decode[[]entities.Contact](t, w); len(got) != 1 || got[0].ID != "c2" {
			t.Fatalf("unexpected matches %+v", got)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		w := serve(r, http.MethodPut, "/v1/contacts/c2", `{"name":"Tesfaye Alemu","phone":"0922","type":"Customer"}`)
		assertStatus(t, w, http.StatusOK)
		w = serve(r, http.MethodDelete, "/v1/contacts/c2", "")
		assertStatus(t, w, http.StatusNoContent)
		w = serve(r, http.MethodGet, "/v1/contacts/c2", "")
		assertStatus(t, w, http.StatusNotFound)
	})
}

func TestLetterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFixtureStore(t)
	h := NewLetterHandler(usecase.NewLetterUseCase(store), export.NewRenderer(""))
	r := gin.New()
	r.GET("/v1/letters", h.ListLetters)
	r.POST("/v1/letters", h.CreateLetter)
	r.PATCH("/v1/letters/:id/status", h.SetStatus)
	r.DELETE("/v1/letters/:id", h.DeleteLetter)
	r.GET("/v1/letters/:id/pdf", h.LetterPDF)

	t.Run("file is required", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/letters", `{"senderName":"Bank","subject":"Statement"}`)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("create is new", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/letters",
			`{"senderName":"Bank","subject":"Statement","dateReceived":"2024-07-17","letterFile":"data:application/pdf;base64,JVBERi0=","fileName":"s.pdf"}`)
		assertStatus(t, w, http.StatusCreated)
		if got := decode[entities.Letter](t, w); got.Status != entities.LetterStatusNew {
			t.Fatalf("unexpected letter %+v", got)
		}
	})

	t.Run("status", func(t *testing.T) {
		w := serve(r, http.MethodPatch, "/v1/letters/l1/status", `{"status":"In Progress"}`)
		assertStatus(t, w, http.StatusOK)
		w = serve(r, http.MethodPatch, "/v1/letters/l1/status", `{"status":"Archived"}`)
		assertStatus(t, w, http.StatusBadRequest)
		w = serve(r, http.MethodPatch, "/v1/letters/nope/status", `{"status":"Resolved"}`)
		assertStatus(t, w, http.StatusNotFound)
	})

	t.Run("pdf", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/letters/l1/pdf", "")
		assertStatus(t, w, http.StatusOK)
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Letter-Permit.pdf") {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})
}

func TestTaskHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFixtureStore(t)
	h := NewTaskHandler(usecase.NewTaskUseCase(store), store)
	r := gin.New()
	r.GET("/v1/tasks", h.ListTasks)
	r.POST("/v1/tasks", h.CreateTask)
	r.PUT("/v1/tasks/:id", h.UpdateTask)
	r.PATCH("/v1/tasks/:id/status", h.SetStatus)

	t.Run("board columns and badges", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/tasks", "")
		assertStatus(t, w, http.StatusOK)
		board := decode[response.TaskBoard](t, w)
		if len(board.ToDo) != 1 || len(board.InProgress) != 1 || len(board.Done) != 0 {
			t.Fatalf("unexpected board %+v", board)
		}
		if board.InProgress[0].DueStatus != "Overdue" {
			t.Fatalf("expected overdue badge, got %+v", board.InProgress[0])
		}
		if board.ToDo[0].ReminderText != "Reminder set for: 2 days before the due date" {
			t.Fatalf("unexpected reminder text %q", board.ToDo[0].ReminderText)
		}
	})

	t.Run("title is required", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/tasks", `{"title":"  "}`)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("move to done clears badge", func(t *testing.T) {
		w := serve(r, http.MethodPatch, "/v1/tasks/k2/status", `{"status":"Done"}`)
		assertStatus(t, w, http.StatusOK)
		if got := decode[response.TaskResponse](t, w); got.Status != entities.TaskStatusDone || got.DueStatus != "" {
			t.Fatalf("unexpected task %+v", got)
		}
	})

	t.Run("update keeps column", func(t *testing.T) {
		w := serve(r, http.MethodPut, "/v1/tasks/k1", `{"title":"Call supplier again","priority":"Low","status":"Done"}`)
		assertStatus(t, w, http.StatusOK)
		if got := decode[response.TaskResponse](t, w); got.Status != entities.TaskStatusToDo {
			t.Fatalf("status should not change via update, got %s", got.Status)
		}
	})
}

func TestProductHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFixtureStore(t)
	h := NewProductHandler(usecase.NewProductUseCase(store), export.NewRenderer(""))
	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.POST("/v1/products", h.CreateProduct)
	r.GET("/v1/taxonomy", h.Taxonomy)
	r.GET("/v1/products/:id/pdf", h.ProductPDF)

	t.Run("invalid sector", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/products", `{"name":"Mixer","sector":"Retail"}`)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("scope and spec filters", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/products",
			`{"name":"Block Machine Y","sector":"Machine Manufacturing","category":"Construction","itemGroup":"Block Machine","specifications":[{"label":"Power","value":"7kW"}]}`)
		assertStatus(t, w, http.StatusCreated)

		w = serve(r, http.MethodGet, "/v1/products?itemGroup=Block+Machine", "")
		assertStatus(t, w, http.StatusOK)
		got := decode[CatalogResponse](t, w)
		if len(got.Products) != 2 || len(got.SpecFilters["Power"]) != 2 {
			t.Fatalf("unexpected catalog %+v", got)
		}
	})

	t.Run("taxonomy", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/taxonomy", "")
		assertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), `"Construction"`) {
			t.Fatalf("unexpected taxonomy %s", w.Body.String())
		}
	})

	t.Run("pdf of missing product", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/products/nope/pdf", "")
		assertStatus(t, w, http.StatusNotFound)
	})
}

func TestReferenceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFixtureStore(t)
	h := NewReferenceHandler(usecase.NewMachineTypeUseCase(store))
	r := gin.New()
	r.GET("/v1/machine-types", h.ListMachineTypes)
	r.POST("/v1/machine-types", h.AddMachineType)
	r.GET("/v1/reference", h.Lists)

	w := serve(r, http.MethodPost, "/v1/machine-types", `{"name":"Coffee Roaster"}`)
	assertStatus(t, w, http.StatusOK)
	if got := decode[[]string](t, w); len(got) != 3 || got[2] != "Coffee Roaster" {
		t.Fatalf("unexpected machine types %v", got)
	}

	w = serve(r, http.MethodPost, "/v1/machine-types", `{"name":"Grain Mill"}`)
	if got := decode[[]string](t, w); len(got) != 3 {
		t.Fatalf("duplicate should not be added, got %v", got)
	}

	w = serve(r, http.MethodGet, "/v1/reference", "")
	lists := decode[ReferenceLists](t, w)
	if len(lists.TaskDepartments) == 0 || len(lists.TrainingTypes) != len(entities.TrainingTypes) {
		t.Fatalf("unexpected reference lists %+v", lists)
	}
}
