// Package handlers exposes the HTTP JSON API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/caua/madeira/internal/httpx"
	"github.com/caua/madeira/internal/models"
	"github.com/caua/madeira/internal/store"
	"github.com/caua/madeira/internal/validation"
)

type ClientHandler struct {
	clients *store.ClientStore
	quotes  *store.QuoteStore
}

func NewClientHandler(clients *store.ClientStore, quotes *store.QuoteStore) *ClientHandler {
	return &ClientHandler{clients: clients, quotes: quotes}
}

type clientPayload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

func (p clientPayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", p.Name, v)
	validation.Required("address", p.Address, v)
	validation.Required("phone", p.Phone, v)
	return v
}

// List: GET /clients?q=
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.URL.Query().Get("q"))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": clients, "total": len(clients)})
}

// Create: POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p clientPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := p.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	client := models.Client{
		Name:     p.Name,
		Address:  p.Address,
		Phone:    p.Phone,
		Email:    p.Email,
		Document: p.Document,
	}
	if _, err := h.clients.Save(&client); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

// Get: GET /clients/{id}
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	client, err := h.clients.Find(id)
	if err != nil {
		notFoundOr500(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Update: PUT /clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	client, err := h.clients.Find(id)
	if err != nil {
		notFoundOr500(w, err)
		return
	}

	var p clientPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := p.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	client.Name = p.Name
	client.Address = p.Address
	client.Phone = p.Phone
	client.Email = p.Email
	client.Document = p.Document
	if err := h.clients.Update(&client); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Delete: DELETE /clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.clients.Find(id); err != nil {
		notFoundOr500(w, err)
		return
	}
	if err := h.clients.Delete(id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Quotes: GET /clients/{id}/quotes — the client's purchase history.
func (h *ClientHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.clients.Find(id); err != nil {
		notFoundOr500(w, err)
		return
	}
	quotes, err := h.quotes.FindByClient(id)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": quotes, "total": len(quotes)})
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return uint(id), true
}

func notFoundOr500(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}
