// Package session holds the in-memory state of a quote being edited.
//
// Instead of keeping the "current" record as mutable fields on a long-lived
// form, the edit state is an explicit value passed to whoever needs it: the
// draft, plus a dirty flag. Every mutation re-runs the pricing engine, so a
// draft's totals can never lag behind its fields.
package session

import (
	"fmt"
	"time"

	"github.com/caua/madeira/internal/models"
)

// QuoteDraft is the quote currently under edit.
type QuoteDraft struct {
	quote   models.Quote
	dirty   bool
	localID int
}

// NewQuoteDraft starts a blank draft dated today.
func NewQuoteDraft() *QuoteDraft {
	d := &QuoteDraft{quote: models.Quote{Date: time.Now()}}
	d.quote.Recalculate()
	return d
}

// EditQuote starts a draft from a persisted quote. Totals are normalized on
// entry so a stale stored value never survives into the editing session.
func EditQuote(q models.Quote) *QuoteDraft {
	d := &QuoteDraft{quote: q}
	d.quote.Recalculate()
	return d
}

func (d *QuoteDraft) SetName(name string) {
	d.quote.Name = name
	d.touch()
}

func (d *QuoteDraft) SetClient(id uint, name string) {
	d.quote.ClientID = id
	d.quote.ClientName = name
	d.touch()
}

func (d *QuoteDraft) SetDate(t time.Time) {
	d.quote.Date = t
	d.touch()
}

func (d *QuoteDraft) SetShipping(v float64) {
	d.quote.ShippingValue = v
	d.touch()
}

func (d *QuoteDraft) SetDiscount(percent float64) {
	d.quote.Discount = percent
	d.touch()
}

func (d *QuoteDraft) SetNotes(notes string) {
	d.quote.Notes = notes
	d.touch()
}

// AddItem appends a line item. Unsaved items get a sequential local id; the
// repository replaces it with a real one on insert.
func (d *QuoteDraft) AddItem(item models.QuoteItem) {
	if item.ID == "" {
		d.localID++
		item.ID = fmt.Sprintf("local-%d", d.localID)
	}
	d.quote.Items = append(d.quote.Items, item)
	d.touch()
}

// UpdateItem replaces the item at index, keeping its id.
func (d *QuoteDraft) UpdateItem(index int, item models.QuoteItem) error {
	if index < 0 || index >= len(d.quote.Items) {
		return fmt.Errorf("no item at index %d", index)
	}
	item.ID = d.quote.Items[index].ID
	d.quote.Items[index] = item
	d.touch()
	return nil
}

// RemoveItem drops the item at index.
func (d *QuoteDraft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.quote.Items) {
		return fmt.Errorf("no item at index %d", index)
	}
	d.quote.Items = append(d.quote.Items[:index], d.quote.Items[index+1:]...)
	d.touch()
	return nil
}

// Quote returns a snapshot of the draft with fresh totals.
func (d *QuoteDraft) Quote() models.Quote {
	q := d.quote
	q.Items = append([]models.QuoteItem(nil), d.quote.Items...)
	return q
}

// Dirty reports whether the draft diverged from what it was built from.
func (d *QuoteDraft) Dirty() bool {
	return d.dirty
}

// MarkSaved clears the dirty flag after a successful persist.
func (d *QuoteDraft) MarkSaved() {
	d.dirty = false
}

func (d *QuoteDraft) touch() {
	d.quote.Recalculate()
	d.dirty = true
}
