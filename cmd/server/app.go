package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/caua/madeira/internal/config"
	"github.com/caua/madeira/internal/handlers"
	"github.com/caua/madeira/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, cfg *config.Config) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
	}

	clients := store.NewClientStore(db)
	quotes := store.NewQuoteStore(db)

	ch := handlers.NewClientHandler(clients, quotes)
	qh := handlers.NewQuoteHandler(quotes, clients, cfg.Company)
	prh := handlers.NewPricingHandler()

	// Clients
	app.mux.HandleFunc("GET /clients", ch.List)
	app.mux.HandleFunc("POST /clients", ch.Create)
	app.mux.HandleFunc("GET /clients/{id}", ch.Get)
	app.mux.HandleFunc("PUT /clients/{id}", ch.Update)
	app.mux.HandleFunc("DELETE /clients/{id}", ch.Delete)
	app.mux.HandleFunc("GET /clients/{id}/quotes", ch.Quotes)

	// Quotes
	app.mux.HandleFunc("GET /quotes", qh.List)
	app.mux.HandleFunc("POST /quotes", qh.Create)
	app.mux.HandleFunc("GET /quotes/{id}", qh.Get)
	app.mux.HandleFunc("PUT /quotes/{id}", qh.Update)
	app.mux.HandleFunc("DELETE /quotes/{id}", qh.Delete)
	app.mux.HandleFunc("GET /quotes/{id}/pdf", qh.PDF)

	// Pricing recalculation surface for the entry form
	app.mux.HandleFunc("POST /pricing/item", prh.Item)
	app.mux.HandleFunc("POST /pricing/quote", prh.Quote)

	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}
