package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"counterparty/pkg/registry"
	"counterparty/pkg/sheets"
)

// Server wires the sheet store, the snapshot cache, the admin gate and the
// edit protocol behind the HTTP surface.
type Server struct {
	store  sheets.Store
	gate   *adminGate
	cache  *snapshotCache
	editor *registry.Editor
}

func NewServer(store sheets.Store, adminPassword, worksheet string, cacheTTL time.Duration) *Server {
	return &Server{
		store:  store,
		gate:   newAdminGate(adminPassword),
		cache:  newSnapshotCache(worksheet, cacheTTL),
		editor: registry.NewEditor(store),
	}
}

// snapshot returns the cached view of the sheet, rebuilding it after cache
// expiry or invalidation. Any failure here is a fatal load condition for
// the current request.
func (s *Server) snapshot() (*snapshot, error) {
	if snap, ok := s.cache.get(); ok {
		return snap, nil
	}
	values, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	table, err := registry.BuildTable(values)
	if err != nil {
		return nil, err
	}
	fields, err := registry.ResolveColumns(table.Headers)
	if err != nil {
		return nil, err
	}
	snap := &snapshot{table: table, fields: fields}
	s.cache.put(snap)
	log.Debugf("Rebuilt sheet snapshot: %d rows", len(table.Rows))
	return snap, nil
}

func (s *Server) getCounterparties(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot()
	if err != nil {
		sendError(w, http.StatusBadGateway, err)
		return
	}

	query := r.URL.Query().Get("q")
	matchOnly := true
	if v := r.URL.Query().Get("match_only"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			matchOnly = parsed
		}
	}

	rows := registry.FilterRows(snap.table, snap.fields, query, matchOnly)
	resp := searchResponse{
		Rows:    make([]tableRow, 0, len(rows)),
		Options: registry.SelectorOptions(snap.table, snap.fields, rows),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, buildTableRow(snap, row))
	}
	sendJSON(w, http.StatusOK, resp)
}

func (s *Server) getDetail(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" || name == registry.NoSelection {
		sendError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	snap, err := s.snapshot()
	if err != nil {
		sendError(w, http.StatusBadGateway, err)
		return
	}

	candidates := registry.Candidates(snap.table, snap.fields, name)
	if len(candidates) == 0 {
		sendError(w, http.StatusNotFound, errors.New("no exact match found, try searching again"))
		return
	}

	if addr := r.URL.Query().Get("address"); addr != "" {
		address, err := strconv.Atoi(addr)
		if err != nil {
			sendError(w, http.StatusBadRequest, errors.New("address must be a row number"))
			return
		}
		for _, c := range candidates {
			if c.Address == address {
				sendJSON(w, http.StatusOK, buildDetail(snap, c))
				return
			}
		}
		sendError(w, http.StatusNotFound, errors.New("no exact match found, try searching again"))
		return
	}

	if len(candidates) > 1 {
		resp := disambiguationResponse{Ambiguous: true}
		for _, c := range candidates {
			resp.Candidates = append(resp.Candidates, buildCandidate(snap, c))
		}
		sendJSON(w, http.StatusOK, resp)
		return
	}
	sendJSON(w, http.StatusOK, buildDetail(snap, candidates[0]))
}

func (s *Server) getSchema(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot()
	if err != nil {
		sendError(w, http.StatusBadGateway, err)
		return
	}
	fields := []schemaField{}
	for _, h := range formOrder(snap) {
		fields = append(fields, schemaField{Header: h, Multiline: snap.fields.LongText(h)})
	}
	sendJSON(w, http.StatusOK, fields)
}

func (s *Server) postUnlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	token, ok := s.gate.Unlock(req.Password)
	if !ok {
		log.Info("Rejected admin unlock attempt")
		sendError(w, http.StatusForbidden, errors.New("incorrect password"))
		return
	}
	log.Info("Admin session unlocked")
	sendJSON(w, http.StatusOK, unlockResponse{Token: token})
}

func (s *Server) getAdminStatus(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, adminStatusResponse{
		Unlocked: s.gate.IsUnlocked(adminToken(r)),
	})
}

func (s *Server) postCounterparty(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	snap, err := s.snapshot()
	if err != nil {
		sendError(w, http.StatusBadGateway, err)
		return
	}

	auth := s.gate.session(adminToken(r))
	if err := s.editor.Append(auth, snap.table, snap.fields, req.Values); err != nil {
		sendEditError(w, err)
		return
	}
	// The sheet changed under the snapshot; force a re-read.
	s.cache.invalidate()
	log.Info("Appended counterparty row")
	sendJSON(w, http.StatusCreated, ackResponse{Result: "created"})
}

func (s *Server) putCounterparty(w http.ResponseWriter, r *http.Request) {
	address, err := strconv.Atoi(chi.URLParam(r, "address"))
	if err != nil {
		sendError(w, http.StatusBadRequest, errors.New("address must be a row number"))
		return
	}
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	snap, err := s.snapshot()
	if err != nil {
		sendError(w, http.StatusBadGateway, err)
		return
	}

	auth := s.gate.session(adminToken(r))
	if err := s.editor.Update(auth, snap.table, snap.fields, address, req.Values); err != nil {
		sendEditError(w, err)
		return
	}
	s.cache.invalidate()
	log.Infof("Updated counterparty row %d", address)
	sendJSON(w, http.StatusOK, ackResponse{Result: "updated"})
}

func adminToken(r *http.Request) string {
	if t := r.Header.Get("X-Admin-Token"); t != "" {
		return t
	}
	return r.URL.Query().Get("token")
}

// sendEditError maps the edit protocol's failures onto HTTP statuses. A
// transport failure reaches the default branch; the snapshot cache is left
// intact there so the caller can retry with the same form state.
func sendEditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrLocked):
		sendError(w, http.StatusForbidden, err)
	case errors.Is(err, registry.ErrKeyRequired):
		sendError(w, http.StatusBadRequest, err)
	case errors.Is(err, registry.ErrRowNotFound):
		sendError(w, http.StatusNotFound, err)
	default:
		sendError(w, http.StatusBadGateway, err)
	}
}

func sendError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Errorf("Request failed: %v", err)
	}
	sendJSON(w, status, errorResponse{Error: err.Error()})
}

func sendJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("Failed to marshal response: %v", err)
		sendResponse(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}
	sendResponse(w, status, body)
}

func sendResponse(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
