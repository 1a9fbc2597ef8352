package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/caua/madeira/internal/config"
	"github.com/caua/madeira/internal/httpx"
	"github.com/caua/madeira/internal/models"
	"github.com/caua/madeira/internal/pdf"
	"github.com/caua/madeira/internal/pricing"
	"github.com/caua/madeira/internal/session"
	"github.com/caua/madeira/internal/store"
	"github.com/caua/madeira/internal/validation"
)

type QuoteHandler struct {
	quotes  *store.QuoteStore
	clients *store.ClientStore
	company config.CompanyConfig
}

func NewQuoteHandler(quotes *store.QuoteStore, clients *store.ClientStore, company config.CompanyConfig) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, clients: clients, company: company}
}

type quoteItemPayload struct {
	Quantity  int     `json:"quantity"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Length    float64 `json:"length"`
	UnitValue float64 `json:"unit_value"`
}

type quotePayload struct {
	Name          string             `json:"name"`
	ClientID      uint               `json:"client_id"`
	Date          string             `json:"date"` // 2006-01-02, empty means today
	ShippingValue float64            `json:"shipping_value"`
	Discount      float64            `json:"discount"`
	Notes         string             `json:"notes"`
	Items         []quoteItemPayload `json:"items"`
}

func (p quotePayload) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", p.Name, v)
	if p.ClientID == 0 {
		v["client_id"] = "required"
	}
	validation.NonNegative("shipping_value", p.ShippingValue, v)
	validation.RangeFloat("discount", p.Discount, 0, 100, v)
	for i, it := range p.Items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
		validation.NonNegativeInt(field("quantity"), it.Quantity, v)
		validation.NonNegative(field("width"), it.Width, v)
		validation.NonNegative(field("height"), it.Height, v)
		validation.NonNegative(field("length"), it.Length, v)
		validation.NonNegative(field("unit_value"), it.UnitValue, v)
	}
	return v
}

// List: GET /quotes?q= — optionally filtered by name substring.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	var quotes []models.Quote
	var err error
	if q := r.URL.Query().Get("q"); q != "" {
		quotes, err = h.quotes.SearchByName(q)
	} else {
		quotes, err = h.quotes.List()
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": quotes, "total": len(quotes)})
}

// Create: POST /quotes
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p quotePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	draft, violations := h.buildDraft(session.NewQuoteDraft(), p)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", violations)
		return
	}

	quote := draft.Quote()
	if _, err := h.quotes.Save(&quote); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	draft.MarkSaved()
	httpx.JSON(w, http.StatusCreated, quote)
}

// Update: PUT /quotes/{id} — replaces the full item collection.
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	existing, err := h.quotes.Find(id)
	if err != nil {
		notFoundOr500(w, err)
		return
	}

	var p quotePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	draft := session.EditQuote(existing)
	draft, violations := h.buildDraft(draft, p)
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", violations)
		return
	}

	quote := draft.Quote()
	quote.ID = id
	if err := h.quotes.Update(&quote); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	draft.MarkSaved()
	updated, err := h.quotes.Find(id)
	if err != nil {
		notFoundOr500(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// buildDraft applies a payload onto a draft, resolving the client and
// replacing the item collection. Wrong input never touches the store: all
// violations are gathered before anything is persisted.
func (h *QuoteHandler) buildDraft(draft *session.QuoteDraft, p quotePayload) (*session.QuoteDraft, validation.Violations) {
	violations := p.validate()
	if !violations.Empty() {
		return draft, violations
	}

	client, err := h.clients.Find(p.ClientID)
	if err != nil {
		violations["client_id"] = "not_found"
		return draft, violations
	}

	date := time.Now()
	if p.Date != "" {
		parsed, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			violations["date"] = "invalid_date"
			return draft, violations
		}
		date = parsed
	}

	draft.SetName(p.Name)
	draft.SetClient(client.ID, client.Name)
	draft.SetDate(date)
	draft.SetShipping(p.ShippingValue)
	draft.SetDiscount(p.Discount)
	draft.SetNotes(p.Notes)

	for len(draft.Quote().Items) > 0 {
		_ = draft.RemoveItem(0)
	}
	for _, it := range p.Items {
		draft.AddItem(models.QuoteItem{
			Quantity:  it.Quantity,
			Width:     it.Width,
			Height:    it.Height,
			Length:    it.Length,
			UnitValue: it.UnitValue,
		})
	}
	return draft, violations
}

// Get: GET /quotes/{id}
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quote, err := h.quotes.Find(id)
	if err != nil {
		notFoundOr500(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quote)
}

// Delete: DELETE /quotes/{id} — cascades to the quote's items.
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := h.quotes.Find(id); err != nil {
		notFoundOr500(w, err)
		return
	}
	if err := h.quotes.Delete(id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PDF: GET /quotes/{id}/pdf
func (h *QuoteHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quote, err := h.quotes.Find(id)
	if err != nil {
		notFoundOr500(w, err)
		return
	}

	// Client lookup is best-effort: the quote keeps a denormalized name so
	// the document still prints after a client was deleted.
	clientData := pdf.ClientData{Name: quote.ClientName}
	if client, err := h.clients.Find(quote.ClientID); err == nil {
		clientData = pdf.ClientData{
			Name:     client.Name,
			Document: client.Document,
			Address:  client.Address,
			Phone:    client.Phone,
			Email:    client.Email,
		}
	}

	items := make([]pdf.ItemData, 0, len(quote.Items))
	itemTotals := make([]float64, 0, len(quote.Items))
	for _, it := range quote.Items {
		items = append(items, pdf.ItemData{
			Quantity:  it.Quantity,
			Width:     it.Width,
			Height:    it.Height,
			Length:    it.Length,
			UnitValue: it.UnitValue,
			Total:     it.Total,
		})
		itemTotals = append(itemTotals, it.Total)
	}
	subtotal, _, grand := pricing.QuoteTotals(itemTotals, quote.ShippingValue, quote.Discount)

	data, err := pdf.QuotePDF(pdf.QuoteData{
		Number: quote.ID,
		Date:   quote.Date.Format("02/01/2006"),
		Client: clientData,
		Company: pdf.CompanyData{
			Name:     h.company.Name,
			TaxID:    h.company.TaxID,
			Address:  h.company.Address,
			City:     h.company.City,
			Phone:    h.company.Phone,
			LogoPath: h.company.LogoPath,
		},
		Items:           items,
		Subtotal:        subtotal,
		DiscountPercent: quote.Discount,
		Shipping:        quote.ShippingValue,
		GrandTotal:      grand,
		Notes:           quote.Notes,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"orcamento-%d.pdf\"", quote.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
