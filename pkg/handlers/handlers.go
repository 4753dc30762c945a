package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yogami9/databaseTier/pkg/handlers/accounts"
	"github.com/yogami9/databaseTier/pkg/handlers/transactions"
	"github.com/yogami9/databaseTier/pkg/metrics"
	"github.com/yogami9/databaseTier/pkg/middleware"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// NewRouter assembles the full HTTP surface on a chi router.
func NewRouter(logger *slog.Logger, store storage.Storage) http.Handler {
	accountsHandler := accounts.NewAccountsHandler(store)
	transactionsHandler := transactions.NewTransactionsHandler(store, store)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.NewStructuredLogger(logger))
	r.Use(middleware.Recover)
	r.Use(middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/", accountsHandler.CreateAccount)
		r.Get("/", accountsHandler.ListAccounts)
		r.Get("/{accountNumber}", accountsHandler.GetAccount)
		r.Put("/{accountNumber}/balance", accountsHandler.UpdateBalance)
		r.Delete("/{accountNumber}", accountsHandler.DeleteAccount)
	})

	r.Route("/api/transactions", func(r chi.Router) {
		r.Post("/", transactionsHandler.RecordTransaction)
		r.Get("/account/{accountNumber}", transactionsHandler.GetTransactionHistory)
		r.Get("/{transactionId}", transactionsHandler.GetTransaction)
	})

	return r
}
