// Package api serves the users REST resource: the persistence collaborator
// the directory UI reads from and writes to.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/users/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// UsersPath is the collection route.
	UsersPath = "/users"
	// UserPattern is the member route pattern.
	UserPattern = "/users/{id}"

	maxBodyBytes = 1 << 20
	tracerName   = "github.com/louisbranch/staffbook/internal/services/users/api"
)

// Options configures handler behavior.
type Options struct {
	// CreateResponse selects whether POST echoes the created record or
	// returns the full collection.
	CreateResponse directory.CreateResponseMode
	// NewID assigns ids to posted records that omit one.
	NewID  func() (string, error)
	Logger *zap.Logger
}

type handlers struct {
	store  storage.UserStore
	opts   Options
	tracer trace.Tracer
}

// NewHandler returns the users resource routes.
func NewHandler(store storage.UserStore, opts Options) http.Handler {
	if opts.CreateResponse == "" {
		opts.CreateResponse = directory.CreateResponseRecord
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	h := handlers{store: store, opts: opts, tracer: otel.Tracer(tracerName)}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+UsersPath, h.handleList)
	mux.HandleFunc(http.MethodPost+" "+UsersPath, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+UserPattern, h.handleGet)
	mux.HandleFunc(http.MethodDelete+" "+UserPattern, h.handleDelete)
	return mux
}

func (h handlers) startSpan(r *http.Request, name string) (*http.Request, trace.Span) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := h.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindServer))
	return r.WithContext(ctx), span
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "users.list")
	defer span.End()

	records, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, span, err)
		return
	}
	span.SetAttributes(attribute.Int("users.count", len(records)))
	writeJSON(w, http.StatusOK, records)
}

func (h handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "users.get")
	defer span.End()

	record, err := h.store.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, span, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "users.create")
	defer span.End()

	var record directory.Record
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&record); err != nil {
		h.writeError(w, span, errBadRequest{fmt.Errorf("decode user: %w", err)})
		return
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		if h.opts.NewID == nil {
			h.writeError(w, span, errBadRequest{errors.New("user id is required")})
			return
		}
		id, err := h.opts.NewID()
		if err != nil {
			h.writeError(w, span, err)
			return
		}
		record.ID = id
	}
	span.SetAttributes(attribute.String("users.id", record.ID))

	if err := h.store.CreateUser(r.Context(), record); err != nil {
		h.writeError(w, span, err)
		return
	}
	if h.opts.CreateResponse == directory.CreateResponseList {
		records, err := h.store.ListUsers(r.Context())
		if err != nil {
			h.writeError(w, span, err)
			return
		}
		writeJSON(w, http.StatusCreated, records)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "users.delete")
	defer span.End()

	id := r.PathValue("id")
	span.SetAttributes(attribute.String("users.id", id))
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		h.writeError(w, span, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

type errBadRequest struct{ err error }

func (e errBadRequest) Error() string { return e.err.Error() }
func (e errBadRequest) Unwrap() error { return e.err }

func (h handlers) writeError(w http.ResponseWriter, span trace.Span, err error) {
	status := http.StatusInternalServerError
	var badRequest errBadRequest
	switch {
	case errors.As(err, &badRequest):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		status = http.StatusConflict
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if status == http.StatusInternalServerError {
		h.opts.Logger.Error("users request failed", zap.Error(err))
		writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
