//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const sessionCookie = "fetch-access-token"

type fakeDog struct {
	ID      string `json:"id"`
	Img     string `json:"img"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	ZipCode string `json:"zip_code"`
	Breed   string `json:"breed"`
}

// fakeAPI mimics the adoption service closely enough to drive the TUI
type fakeAPI struct {
	mu       sync.Mutex
	dogs     []fakeDog
	logouts  int
	searches []string
}

func newFakeAPI(t *testing.T, count int) (*fakeAPI, *httptest.Server) {
	t.Helper()
	breeds := []string{"Beagle", "Poodle", "Vizsla"}
	api := &fakeAPI{}
	for i := 0; i < count; i++ {
		api.dogs = append(api.dogs, fakeDog{
			ID:      fmt.Sprintf("dog-%02d", i),
			Name:    fmt.Sprintf("Pup%02d", i),
			Age:     i%12 + 1,
			ZipCode: fmt.Sprintf("100%02d", i%20),
			Breed:   breeds[i%len(breeds)],
			Img:     fmt.Sprintf("https://img.example.com/%02d.jpg", i),
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || !strings.Contains(creds.Email, "@") {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "token", Path: "/"})
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.logouts++
		api.mu.Unlock()
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("/dogs/breeds", api.authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(breeds)
	}))
	mux.HandleFunc("/dogs/search", api.authed(api.search))
	mux.HandleFunc("/dogs", api.authed(api.resolve))
	mux.HandleFunc("/dogs/match", api.authed(func(w http.ResponseWriter, r *http.Request) {
		var ids []string
		json.NewDecoder(r.Body).Decode(&ids)
		if len(ids) == 0 {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"match": ids[0]})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(sessionCookie); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (a *fakeAPI) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a.mu.Lock()
	a.searches = append(a.searches, r.URL.RawQuery)
	a.mu.Unlock()

	breeds := map[string]bool{}
	for _, b := range q["breeds"] {
		breeds[b] = true
	}
	var matched []fakeDog
	for _, d := range a.dogs {
		if len(breeds) > 0 && !breeds[d.Breed] {
			continue
		}
		matched = append(matched, d)
	}

	desc := q.Get("sort") == "breed:desc"
	sort.SliceStable(matched, func(i, j int) bool {
		if desc {
			return matched[i].Breed > matched[j].Breed
		}
		return matched[i].Breed < matched[j].Breed
	})

	size, _ := strconv.Atoi(q.Get("size"))
	from, _ := strconv.Atoi(q.Get("from"))
	ids := []string{}
	for i := from; i < from+size && i < len(matched); i++ {
		ids = append(ids, matched[i].ID)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"resultIds": ids, "total": len(matched)})
}

func (a *fakeAPI) resolve(w http.ResponseWriter, r *http.Request) {
	var ids []string
	json.NewDecoder(r.Body).Decode(&ids)
	out := []fakeDog{}
	// Returned in reverse to make sure the client restores the search order
	for i := len(ids) - 1; i >= 0; i-- {
		for _, d := range a.dogs {
			if d.ID == ids[i] {
				out = append(out, d)
			}
		}
	}
	json.NewEncoder(w).Encode(out)
}

func (a *fakeAPI) logoutCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logouts
}

func (a *fakeAPI) lastSearch() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.searches) == 0 {
		return ""
	}
	return a.searches[len(a.searches)-1]
}
