//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "staybook/internal/adapters/http_server"
	"staybook/internal/app"
	"staybook/internal/domain"
	mysqlrepo "staybook/internal/storage/mysql"
)

// ---------- helpers ----------
func pstr(s string) *string { return &s }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// envelope mirrors the API's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type apiClient struct {
	t     *testing.T
	base  string
	token string
}

func (c *apiClient) do(method, path string, body any) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		c.t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return res.StatusCode, env
}

func (c *apiClient) must(method, path string, body any, dst any) {
	c.t.Helper()
	code, env := c.do(method, path, body)
	if code != http.StatusOK || !env.Success {
		c.t.Fatalf("%s %s: status %d, message %q", method, path, code, env.Message)
	}
	if dst != nil {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			c.t.Fatalf("unmarshal data of %s %s: %v", method, path, err)
		}
	}
}

// ---------- the test ----------
func TestHTTP_EndToEnd_BookingFlow(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=staybook",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "staybook")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// seed a hotel with one room; sms/cache/broker stay nil
	owner := domain.User{FullName: "Owner", Email: "owner@test.local", PhoneNumber: "+10000000001", Enabled: true}
	if err := repo.CreateUser(ctx, &owner); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	h := domain.Hotel{OwnerID: owner.ID, Name: "Riverside Grand", City: pstr("Da Nang"), PricePerNight: 100}
	if err := repo.CreateHotel(ctx, &h); err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	room := domain.Room{HotelID: h.ID, RoomType: "Standard Double", Price: 100, Capacity: 4}
	if err := repo.CreateRoom(ctx, &room); err != nil {
		t.Fatalf("seed room: %v", err)
	}

	const secret = "e2e-secret"
	tokens := app.NewTokenIssuer(secret, time.Hour)
	users := app.NewUserService(repo, repo, nil, tokens, 4, 5*time.Minute)
	bookings := app.NewBookingService(repo, repo, nil)
	reviews := app.NewReviewService(repo, repo, nil, time.Minute)
	hotels := app.NewHotelQueryService(repo, nil, time.Minute)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Users:     users,
		Bookings:  bookings,
		Reviews:   reviews,
		Hotels:    hotels,
		JWTSecret: secret,
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	c := &apiClient{t: t, base: ts.URL}

	// register -> verify (code read from storage, sms is disabled) -> password -> login
	const phone = "+10000000002"
	var registered struct {
		ID int64 `json:"id"`
	}
	c.must("POST", "/api/v1/auth/register", map[string]string{
		"full_name": "Lan Pham", "email": "lan@test.local", "phone_number": phone,
	}, &registered)

	otp, err := repo.OtpByUserID(ctx, registered.ID)
	if err != nil {
		t.Fatalf("otp not issued: %v", err)
	}
	c.must("POST", "/api/v1/auth/verify-otp", map[string]string{"phone_number": phone, "code": otp.Code}, nil)
	c.must("POST", "/api/v1/auth/set-password", map[string]string{"phone_number": phone, "password": "s3cret-pass"}, nil)

	var auth struct {
		Token string `json:"token"`
	}
	c.must("POST", "/api/v1/auth/login", map[string]string{"email": "lan@test.local", "password": "s3cret-pass"}, &auth)
	if auth.Token == "" {
		t.Fatalf("empty token after login")
	}
	c.token = auth.Token

	// protected routes reject a missing token
	if code, _ := (&apiClient{t: t, base: ts.URL}).do("GET", "/api/v1/users/me", nil); code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated /users/me: status %d, want 401", code)
	}

	// public catalog
	var hotelList []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	c.must("GET", "/api/v1/hotels?city=Da+Nang", nil, &hotelList)
	if len(hotelList) != 1 || hotelList[0].Name != "Riverside Grand" {
		t.Fatalf("hotels = %+v", hotelList)
	}

	// booking: create 3 nights x 2 payers = 600, then confirm
	var booking struct {
		ID         int64   `json:"id"`
		TotalPrice float64 `json:"total_price"`
		Status     string  `json:"status"`
	}
	c.must("POST", "/api/v1/bookings", map[string]any{
		"room_id": room.ID, "check_in": "2026-09-01", "check_out": "2026-09-04",
		"adults_count": 2, "infants_count": 1,
	}, &booking)
	if booking.TotalPrice != 600 || booking.Status != "PENDING" {
		t.Fatalf("booking = %+v, want 600 PENDING", booking)
	}

	c.must("PUT", fmt.Sprintf("/api/v1/bookings/%d/confirm", booking.ID), nil, &booking)
	if booking.Status != "CONFIRMED" {
		t.Fatalf("status after confirm = %q", booking.Status)
	}

	// a second confirm is a domain error -> 400 with success=false
	if code, env := c.do("PUT", fmt.Sprintf("/api/v1/bookings/%d/confirm", booking.ID), nil); code != http.StatusBadRequest || env.Success {
		t.Fatalf("double confirm: status %d success %v", code, env.Success)
	}

	// reviews: create, duplicate rejected, public read shows the author
	var review struct {
		ID int64 `json:"id"`
	}
	c.must("POST", "/api/v1/reviews", map[string]any{"room_id": room.ID, "rating": 5, "comment": "great stay"}, &review)
	if code, _ := c.do("POST", "/api/v1/reviews", map[string]any{"room_id": room.ID, "rating": 4, "comment": "again"}); code != http.StatusBadRequest {
		t.Fatalf("duplicate review: status %d, want 400", code)
	}

	var roomReviews []struct {
		Comment    string  `json:"comment"`
		AuthorName *string `json:"author_name"`
	}
	c.must("GET", fmt.Sprintf("/api/v1/reviews/room/%d", room.ID), nil, &roomReviews)
	if len(roomReviews) != 1 || roomReviews[0].AuthorName == nil || *roomReviews[0].AuthorName != "Lan Pham" {
		t.Fatalf("room reviews = %+v", roomReviews)
	}

	// past bookings: the confirmed one shows up even with a future check-out
	var past []struct {
		ID int64 `json:"id"`
	}
	c.must("GET", "/api/v1/bookings/past", nil, &past)
	if len(past) != 1 || past[0].ID != booking.ID {
		t.Fatalf("past = %+v", past)
	}
}
