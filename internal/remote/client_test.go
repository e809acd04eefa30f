package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUnconfiguredClientSkipsEverything(t *testing.T) {
	c := New("", "")
	ctx := context.Background()

	res, err := c.Quests().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !res.Skipped {
		t.Fatalf("expected skipped result")
	}

	if err := c.SaveSnapshot(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	res, err = c.Tasks().Delete(ctx, "t1")
	if err != nil || !res.Skipped {
		t.Fatalf("delete: res=%+v err=%v", res, err)
	}
}

func TestClientSendsAuthorizedRequests(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret")
	ctx := context.Background()

	res, err := c.Vault().Create(ctx, map[string]string{"title": "Day one"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Skipped || res.StatusCode != http.StatusOK {
		t.Fatalf("res = %+v", res)
	}
	if gotMethod != http.MethodPost || gotPath != "/vault" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("auth = %q", gotAuth)
	}

	if _, err := c.Reminders().Update(ctx, "r1", map[string]string{"at": "07:00"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotPath != "/reminders/r1" || gotMethod != http.MethodPut {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
}

func TestClientSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	res, err := c.Chats().List(context.Background())
	if err == nil {
		t.Fatalf("expected error for 500")
	}
	if res == nil || res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("res = %+v", res)
	}
}

func TestSnapshotEndpoints(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.Write([]byte(`{"version":2}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "")
	ctx := context.Background()

	if err := c.SaveSnapshot(ctx, []byte(`{"version":2}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if gotPath != "PUT /state" {
		t.Fatalf("path = %q", gotPath)
	}

	res, err := c.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if gotPath != "GET /state" || len(res.Body) == 0 {
		t.Fatalf("path = %q body = %s", gotPath, res.Body)
	}
}
