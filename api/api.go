// Package api exposes a grid's columns over http.
//
// Reads are served straight from the manager. Changes are sent into the
// bubbletea program as events, so the program stays the only writer.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"colman"
	nt "colman/entity"
)

const shutdownTimeout = 5 * time.Second

// Columns is the read side of a column manager.
type Columns interface {
	Key() string
	Snapshot() []nt.Column
	Controls() []colman.Control
	Has(id string) bool
}

// Sender delivers messages to a running program, as *tea.Program does.
type Sender interface {
	Send(msg tea.Msg)
}

// Api serves one grid's columns.
type Api struct {
	columns Columns
	sender  Sender
	logger  nt.Logger
}

func New(cols Columns, sndr Sender, lgr nt.Logger) *Api {

	if lgr == nil {
		lgr = nt.Discard{}
	}

	return &Api{
		columns: cols,
		sender:  sndr,
		logger:  lgr,
	}
}

// Router returns the api's routes.
func (api *Api) Router() http.Handler {
	r := chi.NewRouter()
	return api.applyRoutes(r)
}

// Serve listens on addr until ctx is done.
func (api *Api) Serve(ctx context.Context, addr string) (err error) {

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	api.logger.Info(ctx, "control api listening", "addr", addr, "grid_key", api.columns.Key())

	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
		return
	}
	err = errors.Wrapf(err, "failed to serve on %s", addr)
	return
}

// unexported

func (api *Api) applyRoutes(r chi.Router) chi.Router {
	r.Route("/", func(r chi.Router) {
		r.Get("/columns", api.getColumns)
		r.Get("/controls", api.getControls)
		r.Put("/columns/{id}/visible/{visible}", api.putVisible)
		r.Post("/refresh", api.postRefresh)
	})

	return r
}

func (api *Api) getColumns(w http.ResponseWriter, r *http.Request) {
	api.writeJson(w, r, http.StatusOK, api.columns.Snapshot())
}

func (api *Api) getControls(w http.ResponseWriter, r *http.Request) {
	api.writeJson(w, r, http.StatusOK, api.columns.Controls())
}

func (api *Api) putVisible(w http.ResponseWriter, r *http.Request) {

	id := chi.URLParam(r, "id")
	visible, err := strconv.ParseBool(chi.URLParam(r, "visible"))
	if err != nil {
		api.writeError(w, r, http.StatusBadRequest, errors.Wrapf(err, "bad visibility"))
		return
	}

	if !api.columns.Has(id) || id == colman.Sentinel {
		api.writeError(w, r, http.StatusNotFound, errors.Wrapf(colman.ErrUnknownColumn, "%s", id))
		return
	}

	api.sender.Send(nt.ToggleEvent{Id: id, Visible: visible})
	api.sender.Send(nt.MenuClosedEvent{})

	api.logger.Info(r.Context(), "visibility requested", "column_id", id, "visible", visible)
	w.WriteHeader(http.StatusAccepted)
}

func (api *Api) postRefresh(w http.ResponseWriter, r *http.Request) {

	api.sender.Send(nt.MenuClosedEvent{})
	w.WriteHeader(http.StatusAccepted)
}

func (api *Api) writeJson(w http.ResponseWriter, r *http.Request, status int, body any) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		api.logger.Error(r.Context(), "failed to write response", err)
	}
}

func (api *Api) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	api.writeJson(w, r, status, map[string]string{"error": err.Error()})
}
