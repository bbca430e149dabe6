// Package backend is an in-memory stand-in for the clipart API, served over
// httptest for adapter, application and CLI tests.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

var tierCredits = map[string]int64{"starter": 50, "creator": 150, "pro": 500}

type Call struct {
	Method string
	Path   string
	Token  string
	Body   string
}

type Failure struct {
	Status int
	Body   string
}

type account struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Credits  int64
	Library  []item
	History  []purchase
}

type item struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
	Format    string    `json:"format"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
}

type purchase struct {
	ID           string    `json:"id"`
	Tier         string    `json:"tier"`
	CreditsAdded int64     `json:"credits_added"`
	CreatedAt    time.Time `json:"created_at"`
}

type Backend struct {
	server *httptest.Server

	mu       sync.Mutex
	accounts map[string]*account
	tokens   map[string]string
	calls    []Call
	failures map[string][]Failure
	nextID   int64
	now      time.Time
}

func New(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		accounts: map[string]*account{},
		tokens:   map[string]string{},
		failures: map[string][]Failure{},
		now:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	b.server = httptest.NewServer(b.router())
	t.Cleanup(b.server.Close)

	return b
}

func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) Client() *http.Client {
	return b.server.Client()
}

// AddUser registers an account and returns its login token.
func (b *Backend) AddUser(name, email, password string, credits int64) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.createLocked(name, email, password)
	acct.Credits = credits
	return b.issueTokenLocked(email)
}

func (b *Backend) SetCredits(email string, credits int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.accounts[email].Credits = credits
}

func (b *Backend) Credits(email string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.accounts[email].Credits
}

func (b *Backend) AddLibraryItem(email, prompt string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[email]
	b.nextID++
	entry := item{
		ID:        "img-" + strconv.FormatInt(b.nextID, 10),
		URL:       b.server.URL + "/assets/img-" + strconv.FormatInt(b.nextID, 10) + ".jpg",
		Prompt:    prompt,
		CreatedAt: b.tickLocked(),
		Format:    "jpg",
		Width:     768,
		Height:    768,
	}
	acct.Library = append([]item{entry}, acct.Library...)
	return entry.ID
}

func (b *Backend) LibrarySize(email string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.accounts[email].Library)
}

func (b *Backend) HasAccount(email string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.accounts[email]
	return ok
}

// ExpireTokens invalidates every issued token.
func (b *Backend) ExpireTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.tokens)
}

// FailNext makes the next request to method+path answer with status/body.
func (b *Backend) FailNext(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := method + " " + path
	b.failures[key] = append(b.failures[key], Failure{Status: status, Body: body})
}

func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]Call(nil), b.calls...)
}

func (b *Backend) CallCount(method, path string) int {
	count := 0
	for _, call := range b.Calls() {
		if call.Method == method && call.Path == path {
			count++
		}
	}
	return count
}

func (b *Backend) router() http.Handler {
	r := mux.NewRouter()
	r.Use(b.record)

	r.HandleFunc("/auth/login", b.login).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", b.signup).Methods(http.MethodPost)
	r.HandleFunc("/assets/{name}", b.asset).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(b.requireToken)
	authed.HandleFunc("/generate", b.generate).Methods(http.MethodPost)
	authed.HandleFunc("/credits", b.credits).Methods(http.MethodGet)
	authed.HandleFunc("/library", b.listLibrary).Methods(http.MethodGet)
	authed.HandleFunc("/library/save", b.saveLibrary).Methods(http.MethodPost)
	authed.HandleFunc("/library/{id}", b.deleteLibrary).Methods(http.MethodDelete)
	authed.HandleFunc("/billing/checkout", b.checkout).Methods(http.MethodPost)
	authed.HandleFunc("/billing/history", b.history).Methods(http.MethodGet)
	authed.HandleFunc("/settings/email", b.updateEmail).Methods(http.MethodPost)
	authed.HandleFunc("/settings/password", b.changePassword).Methods(http.MethodPost)
	authed.HandleFunc("/settings/delete-account", b.deleteAccount).Methods(http.MethodDelete)

	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw []byte
		if r.Body != nil {
			raw, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(raw))
		}

		b.mu.Lock()
		b.calls = append(b.calls, Call{Method: r.Method, Path: r.URL.Path, Token: r.Header.Get("x-token"), Body: string(raw)})
		key := r.Method + " " + r.URL.Path
		var failure *Failure
		if queued := b.failures[key]; len(queued) > 0 {
			failure = &queued[0]
			b.failures[key] = queued[1:]
		}
		b.mu.Unlock()

		if failure != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(failure.Status)
			_, _ = w.Write([]byte(failure.Body))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type ctxEmailKey struct{}

func (b *Backend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		email, ok := b.tokens[r.Header.Get("x-token")]
		b.mu.Unlock()
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxEmailKey{}, email)))
	})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[req.Email]
	if !ok || acct.Password != req.Password {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": b.issueTokenLocked(req.Email), "user": userJSON(acct)})
}

func (b *Backend) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body", "email"}, "msg": "field required", "type": "value_error.missing"}},
		})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.accounts[req.Email]; exists {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	acct := b.createLocked(req.Name, req.Email, req.Password)
	writeJSON(w, http.StatusOK, map[string]any{"token": b.issueTokenLocked(req.Email), "user": userJSON(acct)})
}

func (b *Backend) generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[emailFrom(r)]
	if acct.Credits <= 0 {
		writeDetail(w, http.StatusPaymentRequired, "Insufficient credits")
		return
	}
	acct.Credits--
	b.nextID++

	writeJSON(w, http.StatusOK, map[string]string{"url": fmt.Sprintf("%s/assets/gen-%d.jpg", b.server.URL, b.nextID)})
}

func (b *Backend) credits(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]int64{"credits": b.accounts[emailFrom(r)].Credits})
}

func (b *Backend) listLibrary(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := append([]item{}, b.accounts[emailFrom(r)].Library...)
	writeJSON(w, http.StatusOK, items)
}

func (b *Backend) saveLibrary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
		Prompt string `json:"prompt"`
		URL    string `json:"url"`
		Format string `json:"format"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[emailFrom(r)]
	if req.UserID != strconv.FormatInt(acct.ID, 10) {
		writeDetail(w, http.StatusForbidden, "Cannot save to another user's library")
		return
	}
	b.nextID++
	entry := item{
		ID:        "img-" + strconv.FormatInt(b.nextID, 10),
		URL:       req.URL,
		Prompt:    req.Prompt,
		CreatedAt: b.tickLocked(),
		Format:    req.Format,
		Width:     req.Width,
		Height:    req.Height,
	}
	acct.Library = append([]item{entry}, acct.Library...)
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved", "id": entry.ID})
}

func (b *Backend) deleteLibrary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[emailFrom(r)]
	for i, entry := range acct.Library {
		if entry.ID == id {
			acct.Library = append(acct.Library[:i:i], acct.Library[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Item not found")
}

func (b *Backend) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tier string `json:"tier"`
	}
	if !decode(w, r, &req) {
		return
	}

	credits, ok := tierCredits[req.Tier]
	if !ok {
		writeDetail(w, http.StatusBadRequest, "Unknown tier")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[emailFrom(r)]
	acct.Credits += credits
	b.nextID++
	acct.History = append([]purchase{{
		ID:           "pur-" + strconv.FormatInt(b.nextID, 10),
		Tier:         req.Tier,
		CreditsAdded: credits,
		CreatedAt:    b.tickLocked(),
	}}, acct.History...)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (b *Backend) history(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON(w, http.StatusOK, append([]purchase{}, b.accounts[emailFrom(r)].History...))
}

func (b *Backend) updateEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decode(w, r, &req) {
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeDetail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	oldEmail := emailFrom(r)
	if _, taken := b.accounts[req.Email]; taken && req.Email != oldEmail {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	acct := b.accounts[oldEmail]
	delete(b.accounts, oldEmail)
	acct.Email = req.Email
	b.accounts[req.Email] = acct
	for token, email := range b.tokens {
		if email == oldEmail {
			b.tokens[token] = req.Email
		}
	}

	writeJSON(w, http.StatusOK, userJSON(acct))
}

func (b *Backend) changePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if !decode(w, r, &req) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct := b.accounts[emailFrom(r)]
	if acct.Password != req.OldPassword {
		writeDetail(w, http.StatusBadRequest, "Incorrect password")
		return
	}
	acct.Password = req.NewPassword
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (b *Backend) deleteAccount(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	email := emailFrom(r)
	delete(b.accounts, email)
	for token, owner := range b.tokens {
		if owner == email {
			delete(b.tokens, token)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (b *Backend) asset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/jpeg")
	_, _ = w.Write([]byte("JPEG:" + mux.Vars(r)["name"]))
}

func (b *Backend) createLocked(name, email, password string) *account {
	b.nextID++
	acct := &account{ID: b.nextID, Name: name, Email: email, Password: password}
	b.accounts[email] = acct
	return acct
}

func (b *Backend) issueTokenLocked(email string) string {
	b.nextID++
	token := "t" + strconv.FormatInt(b.nextID, 10)
	b.tokens[token] = email
	return token
}

func (b *Backend) tickLocked() time.Time {
	b.now = b.now.Add(time.Minute)
	return b.now
}

func emailFrom(r *http.Request) string {
	email, _ := r.Context().Value(ctxEmailKey{}).(string)
	return email
}

func userJSON(acct *account) map[string]any {
	return map[string]any{"id": acct.ID, "name": acct.Name, "email": acct.Email}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed JSON body")
		return false
	}
	return true
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
