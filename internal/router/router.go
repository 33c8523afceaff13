package router

import (
	"net/http"

	"tokoonline/internal/auth"
	"tokoonline/internal/handler"
	"tokoonline/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Only the user resource routes sit behind bearer-token authentication;
// registration, login and the catalogue/order routes are open.
func New(
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	orderItemHandler *handler.OrderItemHandler,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Auth routes (public)
	mux.HandleFunc("POST /api/register", userHandler.Register)
	mux.HandleFunc("POST /api/login", userHandler.Login)

	// User routes (bearer token required)
	authed := middleware.BearerAuth(tokens, logger)
	mux.Handle("GET /api/pengguna", authed(http.HandlerFunc(userHandler.GetAll)))
	mux.Handle("GET /api/pengguna/{id}", authed(http.HandlerFunc(userHandler.GetByID)))
	mux.Handle("PUT /api/pengguna/{id}", authed(http.HandlerFunc(userHandler.Update)))
	mux.Handle("DELETE /api/pengguna/{id}", authed(http.HandlerFunc(userHandler.Delete)))

	// Product routes
	mux.HandleFunc("POST /api/produk", productHandler.Create)
	mux.HandleFunc("GET /api/produk", productHandler.GetAll)
	mux.HandleFunc("GET /api/produk/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/produk/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/produk/{id}", productHandler.Delete)

	// Order routes
	mux.HandleFunc("POST /api/pesanan", orderHandler.Create)
	mux.HandleFunc("GET /api/pesanan", orderHandler.GetAll)
	mux.HandleFunc("GET /api/pesanan/{id}", orderHandler.GetByID)
	mux.HandleFunc("PUT /api/pesanan/{id}", orderHandler.Update)
	mux.HandleFunc("DELETE /api/pesanan/{id}", orderHandler.Delete)

	// Order item routes
	mux.HandleFunc("POST /api/detailpesanan", orderItemHandler.Create)
	mux.HandleFunc("GET /api/detailpesanan", orderItemHandler.ListAll)
	mux.HandleFunc("GET /api/detailpesanan/{orderId}", orderItemHandler.ListByOrder)
	mux.HandleFunc("PUT /api/detailpesanan/{id}", orderItemHandler.Update)
	mux.HandleFunc("DELETE /api/detailpesanan/{id}", orderItemHandler.Delete)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS.
	// RequestID must run before Logging so the correlation id is on the
	// request context when the access log line is written.
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
