// Package quantumservice is an in-memory double of the Quantum v1.0 port API.
package quantumservice

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"sync"

	"quantum-portctl/internal/types"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const authToken = "X-Auth-Token"

// Quantum v1.0 fault codes.
const (
	codeNetworkNotFound       = 420
	codePortNotFound          = 430
	codeRequestedStateInvalid = 431
	codePortInUse             = 432
	codeAlreadyAttached       = 440
)

// Request is a request as received by the service.
type Request struct {
	Method string
	// Path is the escaped request path as sent on the wire
	Path   string
	Header http.Header
	Body   string
}

type portRecord struct {
	id         string
	state      types.PortState
	attachment string
}

// Service serves the port API under /v1.0/tenants/{tenant}.
type Service struct {
	mu sync.Mutex
	// token is the X-Auth-Token the service accepts; empty disables the check
	token      string
	faultCodes bool
	networks   map[string]map[string]*portRecord
	requests   []Request
	router     *mux.Router
}

// New creates a service that requires token on every request.
func New(token string) *Service {
	s := &Service{
		token:    token,
		networks: make(map[string]map[string]*portRecord),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/v1.0/tenants/{tenant}/networks/{net}/ports").Subrouter()
	api.HandleFunc("", s.listPorts).Methods(http.MethodGet)
	api.HandleFunc("", s.createPort).Methods(http.MethodPost)
	api.HandleFunc("/detail", s.listPortDetails).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.showPort).Methods(http.MethodGet)
	api.HandleFunc("/{id}", s.updatePort).Methods(http.MethodPut)
	api.HandleFunc("/{id}", s.deletePort).Methods(http.MethodDelete)
	api.HandleFunc("/{id}/detail", s.showPortDetails).Methods(http.MethodGet)
	api.HandleFunc("/{id}/attachment", s.showAttachment).Methods(http.MethodGet)
	api.HandleFunc("/{id}/attachment", s.plugAttachment).Methods(http.MethodPut)
	api.HandleFunc("/{id}/attachment", s.unplugAttachment).Methods(http.MethodDelete)
	s.router = r

	return s
}

// UseFaultCodes makes missing networks and ports answer 420/430 instead of 404.
func (s *Service) UseFaultCodes(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faultCodes = enabled
}

// SetToken replaces the accepted token, invalidating the previous one.
func (s *Service) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// AddNetwork creates an empty network.
func (s *Service) AddNetwork(networkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.networks[networkID]; !ok {
		s.networks[networkID] = make(map[string]*portRecord)
	}
}

// AddPort creates a port directly and returns its id.
func (s *Service) AddPort(networkID string, state types.PortState) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ports, ok := s.networks[networkID]
	if !ok {
		ports = make(map[string]*portRecord)
		s.networks[networkID] = ports
	}
	id := uuid.NewString()
	ports[id] = &portRecord{id: id, state: state}
	return id
}

// Requests returns the requests received so far.
func (s *Service) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// ServeHTTP records the request, checks the token and dispatches it.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	token := s.token
	s.mu.Unlock()

	if token != "" && r.Header.Get(authToken) != token {
		writeFault(w, http.StatusUnauthorized, "unauthorized", "This server could not verify that you are authorized to access the document you requested.")
		return
	}
	s.router.ServeHTTP(w, r)
}

type portBody struct {
	ID         string          `json:"id"`
	State      types.PortState `json:"state,omitempty"`
	Attachment *attachmentBody `json:"attachment,omitempty"`
}

type attachmentBody struct {
	ID string `json:"id"`
}

func (s *Service) listPorts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ports, ok := s.lookupNetwork(w, r)
	if !ok {
		return
	}
	refs := make([]portBody, 0, len(ports))
	for _, p := range sortedPorts(ports) {
		refs = append(refs, portBody{ID: p.id})
	}
	writeJSON(w, http.StatusOK, map[string]any{"ports": refs})
}

func (s *Service) listPortDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ports, ok := s.lookupNetwork(w, r)
	if !ok {
		return
	}
	out := make([]portBody, 0, len(ports))
	for _, p := range sortedPorts(ports) {
		out = append(out, portBody{ID: p.id, State: p.state})
	}
	writeJSON(w, http.StatusOK, map[string]any{"ports": out})
}

func (s *Service) createPort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Port *struct {
			State types.PortState `json:"state"`
		} `json:"port"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFault(w, http.StatusBadRequest, "badRequest", "Malformed request body")
			return
		}
	}

	state := types.PortStateDown
	if req.Port != nil && req.Port.State != "" {
		state = req.Port.State
	}
	if state != types.PortStateActive && state != types.PortStateDown {
		writeFault(w, codeRequestedStateInvalid, "RequestedStateInvalid", "Unable to set port state")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ports, ok := s.lookupNetwork(w, r)
	if !ok {
		return
	}
	id := uuid.NewString()
	ports[id] = &portRecord{id: id, state: state}

	body := portBody{ID: id}
	if req.Port != nil {
		body.State = state
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"port": body})
}

func (s *Service) showPort(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"port": portBody{ID: p.id, State: p.state}})
}

func (s *Service) showPortDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	body := portBody{ID: p.id, State: p.state}
	if p.attachment != "" {
		body.Attachment = &attachmentBody{ID: p.attachment}
	}
	writeJSON(w, http.StatusOK, map[string]any{"port": body})
}

func (s *Service) updatePort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Port struct {
			State types.PortState `json:"state"`
		} `json:"port"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFault(w, http.StatusBadRequest, "badRequest", "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	if req.Port.State != types.PortStateActive && req.Port.State != types.PortStateDown {
		writeFault(w, codeRequestedStateInvalid, "RequestedStateInvalid", "Unable to set port state")
		return
	}
	p.state = req.Port.State
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) deletePort(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	if p.attachment != "" {
		writeFault(w, codePortInUse, "PortInUse", "Port has an attachment plugged")
		return
	}
	delete(s.networks[mux.Vars(r)["net"]], p.id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) showAttachment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	if p.attachment == "" {
		writeFault(w, http.StatusNotFound, "itemNotFound", "Port has no attachment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"attachment": attachmentBody{ID: p.attachment}})
}

func (s *Service) plugAttachment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Attachment struct {
			ID string `json:"id"`
		} `json:"attachment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Attachment.ID == "" {
		writeFault(w, http.StatusBadRequest, "badRequest", "Malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	if p.attachment != "" && p.attachment != req.Attachment.ID {
		writeFault(w, codeAlreadyAttached, "AlreadyAttached", "Port already has an attachment plugged")
		return
	}
	p.attachment = req.Attachment.ID
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) unplugAttachment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.lookupPort(w, r)
	if !ok {
		return
	}
	p.attachment = ""
	w.WriteHeader(http.StatusNoContent)
}

// lookupNetwork must be called with s.mu held.
func (s *Service) lookupNetwork(w http.ResponseWriter, r *http.Request) (map[string]*portRecord, bool) {
	ports, ok := s.networks[mux.Vars(r)["net"]]
	if !ok {
		code := http.StatusNotFound
		if s.faultCodes {
			code = codeNetworkNotFound
		}
		writeFault(w, code, "NetworkNotFound", "Unable to find a network with the specified identifier")
		return nil, false
	}
	return ports, true
}

// lookupPort must be called with s.mu held.
func (s *Service) lookupPort(w http.ResponseWriter, r *http.Request) (*portRecord, bool) {
	ports, ok := s.lookupNetwork(w, r)
	if !ok {
		return nil, false
	}
	p, ok := ports[mux.Vars(r)["id"]]
	if !ok {
		code := http.StatusNotFound
		if s.faultCodes {
			code = codePortNotFound
		}
		writeFault(w, code, "PortNotFound", "Unable to find a port with the specified identifier")
		return nil, false
	}
	return p, true
}

func sortedPorts(ports map[string]*portRecord) []*portRecord {
	out := make([]*portRecord, 0, len(ports))
	for _, p := range ports {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeFault(w http.ResponseWriter, code int, name, message string) {
	writeJSON(w, code, map[string]any{
		name: map[string]any{"message": message, "code": code},
	})
}
