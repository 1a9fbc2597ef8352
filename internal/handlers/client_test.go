package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/caua/madeira/internal/models"
	"github.com/caua/madeira/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.Quote{}, &models.QuoteItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newClientHandler(t *testing.T) (*ClientHandler, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewClientHandler(store.NewClientStore(db), store.NewQuoteStore(db)), db
}

func createTestClient(t *testing.T, h *ClientHandler) models.Client {
	t.Helper()
	body := `{"name":"João da Silva","address":"Rua das Araucárias, 100","phone":"(48) 99999-0000","email":"joao@example.com","document":"123.456.789-00"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var client models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &client); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return client
}

func TestClientCreateAndGet(t *testing.T) {
	h, _ := newClientHandler(t)
	client := createTestClient(t, h)
	if client.ID == 0 {
		t.Fatal("expected assigned id")
	}

	req := httptest.NewRequest(http.MethodGet, "/clients/"+strconv.Itoa(int(client.ID)), nil)
	req.SetPathValue("id", strconv.Itoa(int(client.ID)))
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var got models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "João da Silva" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestClientCreateValidation(t *testing.T) {
	h, _ := newClientHandler(t)

	body := `{"name":"","address":"","phone":""}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", w.Code)
	}
	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"name", "address", "phone"} {
		if resp.Details[field] != "required" {
			t.Errorf("expected %s violation, got %#v", field, resp.Details)
		}
	}
}

func TestClientList(t *testing.T) {
	h, _ := newClientHandler(t)
	createTestClient(t, h)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	w := httptest.NewRecorder()
	h.List(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var list struct {
		Items []models.Client `json:"items"`
		Total int             `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 1 || len(list.Items) != 1 {
		t.Fatalf("unexpected list: %#v", list)
	}
}

func TestClientUpdate(t *testing.T) {
	h, _ := newClientHandler(t)
	client := createTestClient(t, h)

	body := `{"name":"João Atualizado","address":"Rua Nova, 7","phone":"(48) 98888-0000"}`
	req := httptest.NewRequest(http.MethodPut, "/clients/"+strconv.Itoa(int(client.ID)), strings.NewReader(body))
	req.SetPathValue("id", strconv.Itoa(int(client.ID)))
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var updated models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Name != "João Atualizado" {
		t.Errorf("Name = %q", updated.Name)
	}
}

func TestClientDelete(t *testing.T) {
	h, _ := newClientHandler(t)
	client := createTestClient(t, h)
	id := strconv.Itoa(int(client.ID))

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/clients/"+id, nil)
	getReq.SetPathValue("id", id)
	getW := httptest.NewRecorder()
	h.Get(getW, getReq)
	if getW.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", getW.Code)
	}
}

func TestClientGetNotFound(t *testing.T) {
	h, _ := newClientHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/clients/999", nil)
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestClientQuotesHistory(t *testing.T) {
	h, db := newClientHandler(t)
	client := createTestClient(t, h)

	quotes := store.NewQuoteStore(db)
	q := models.Quote{Name: "Histórico", ClientID: client.ID, ClientName: client.Name}
	q.Recalculate()
	if _, err := quotes.Save(&q); err != nil {
		t.Fatalf("save quote: %v", err)
	}

	id := strconv.Itoa(int(client.ID))
	req := httptest.NewRequest(http.MethodGet, "/clients/"+id+"/quotes", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.Quotes(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var list struct {
		Items []models.Quote `json:"items"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 1 || list.Items[0].Name != "Histórico" {
		t.Fatalf("unexpected history: %#v", list)
	}
}
