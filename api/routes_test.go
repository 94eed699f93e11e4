package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oceanhire/agency/api"
	dbfs "github.com/oceanhire/agency/db"
	"github.com/oceanhire/agency/internal/config"
	dbpkg "github.com/oceanhire/agency/internal/db"
	sqlite "github.com/oceanhire/agency/internal/repository/sqlite"
	"github.com/oceanhire/agency/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Full-stack test: real router, middleware, and an in-memory database.
func TestRoutes_AdminFlow(t *testing.T) {
	ctx := context.Background()

	d, err := dbpkg.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer d.Close()
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	repo := sqlite.New(d, nil)
	if _, err := repo.CreateAdmin(ctx, &models.Admin{Email: "admin@agency.com", PasswordHash: string(hash)}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	cfg := &config.Config{
		Addr:          ":0",
		JWTSecret:     "testsecret",
		APITimeout:    5 * time.Second,
		DatabasePath:  ":memory:",
		TokenDuration: 7 * 24 * time.Hour,
	}
	router := api.SetupRoutes(cfg, "test", "now", d)
	srv := httptest.NewServer(router)
	defer srv.Close()

	do := func(method, path, token string, body any) (*http.Response, []byte) {
		t.Helper()
		var reader io.Reader
		if body != nil {
			b, _ := json.Marshal(body)
			reader = bytes.NewReader(b)
		}
		req, err := http.NewRequest(method, srv.URL+path, reader)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		res, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		defer res.Body.Close()
		data, _ := io.ReadAll(res.Body)
		return res, data
	}

	// public job listing is open and starts empty
	res, data := do(http.MethodGet, "/jobs", "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /jobs: expected 200, got %d body=%s", res.StatusCode, string(data))
	}

	// mutating jobs without a token is rejected
	res, _ = do(http.MethodPost, "/jobs", "", map[string]string{"title": "x"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("POST /jobs without token: expected 401, got %d", res.StatusCode)
	}

	// admin inquiry listing requires a token too
	res, _ = do(http.MethodGet, "/inquiries", "", nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("GET /inquiries without token: expected 401, got %d", res.StatusCode)
	}

	// login
	res, data = do(http.MethodPost, "/auth/login", "", map[string]string{
		"email": "admin@agency.com", "password": "admin123",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", res.StatusCode, string(data))
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &login); err != nil || login.Token == "" {
		t.Fatalf("expected token, got %s", string(data))
	}

	// create a job with the token
	res, data = do(http.MethodPost, "/jobs", login.Token, map[string]string{
		"title":       "Registered Nurse",
		"category":    "gulf",
		"location":    "Dubai, UAE",
		"contact":     "+94771234567",
		"description": "ICU nurse",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("POST /jobs: expected 201, got %d body=%s", res.StatusCode, string(data))
	}
	var created struct {
		Job models.Job `json:"job"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("unmarshal created job: %v", err)
	}
	if created.Job.Status != models.JobStatusActive {
		t.Fatalf("expected default active status, got %q", created.Job.Status)
	}

	// the public listing now includes it
	res, data = do(http.MethodGet, "/jobs", "", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /jobs: expected 200, got %d", res.StatusCode)
	}
	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		t.Fatalf("unmarshal jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Registered Nurse" {
		t.Fatalf("expected created job in listing, got %+v", jobs)
	}

	// public inquiry submission is open
	res, data = do(http.MethodPost, "/inquiries", "", map[string]any{
		"fullName": "Nimal Perera",
		"email":    "nimal@example.com",
		"jobId":    created.Job.ID,
		"message":  "Interested",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("POST /inquiries: expected 201, got %d body=%s", res.StatusCode, string(data))
	}

	// triage it as admin
	res, data = do(http.MethodGet, "/inquiries", login.Token, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /inquiries: expected 200, got %d", res.StatusCode)
	}
	var inquiries []models.Inquiry
	if err := json.Unmarshal(data, &inquiries); err != nil {
		t.Fatalf("unmarshal inquiries: %v", err)
	}
	if len(inquiries) != 1 || inquiries[0].JobTitle != "Registered Nurse" {
		t.Fatalf("expected inquiry with joined job title, got %+v", inquiries)
	}

	res, data = do(http.MethodPut, "/inquiries", login.Token, map[string]any{
		"id": inquiries[0].ID, "status": "contacted",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("PUT /inquiries: expected 200, got %d body=%s", res.StatusCode, string(data))
	}

	// updating a missing inquiry is a 404
	res, _ = do(http.MethodPut, "/inquiries", login.Token, map[string]any{
		"id": 9999, "status": "closed",
	})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("PUT /inquiries missing id: expected 404, got %d", res.StatusCode)
	}
}
