package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/internal/client/repository"
	"github.com/hotaeshwar/crm-sub000/internal/clock"
	"github.com/hotaeshwar/crm-sub000/internal/userctx"
	"github.com/hotaeshwar/crm-sub000/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) clientdomain.Service {
	t.Helper()
	return newTestServiceWithClock(t, clock.NewSystem())
}

func newTestServiceWithClock(t *testing.T, clk clock.Clock) clientdomain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(&clientdomain.Client{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clk,
		Repo:  repository.Provide(),
	})
}

func userContext(userID snowflake.ID) context.Context {
	return userctx.WithUserID(context.Background(), userID)
}

func TestCreateRequiresUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), clientdomain.CreateClientRequest{Name: "Acme"})
	if err != clientdomain.ErrInvalidUser {
		t.Fatalf("expected ErrInvalidUser, got %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := userContext(100)

	created, err := svc.Create(ctx, clientdomain.CreateClientRequest{
		Name:    "  Acme Corp  ",
		Email:   "billing@acme.test",
		Phone:   "555-0100",
		Company: "Acme",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if created.Name != "Acme Corp" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}

	got, err := svc.GetByID(ctx, clientdomain.GetClientRequest{ID: created.ID.String()})
	if err != nil {
		t.Fatalf("failed to get client: %v", err)
	}
	if got.Email != "billing@acme.test" {
		t.Fatalf("expected email, got %q", got.Email)
	}
}

func TestGetScopedToOwner(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(userContext(100), clientdomain.CreateClientRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = svc.GetByID(userContext(200), clientdomain.GetClientRequest{ID: created.ID.String()})
	if err != clientdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for other owner, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService(t)
	ctx := userContext(100)

	created, err := svc.Create(ctx, clientdomain.CreateClientRequest{
		Name:  "Acme",
		Email: "old@acme.test",
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	phone := "555-0101"
	updated, err := svc.Update(ctx, clientdomain.UpdateClientRequest{
		ID:    created.ID.String(),
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("failed to update client: %v", err)
	}
	if updated.Phone != "555-0101" {
		t.Fatalf("expected updated phone, got %q", updated.Phone)
	}
	if updated.Email != "old@acme.test" {
		t.Fatalf("expected email unchanged, got %q", updated.Email)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := userContext(100)

	created, err := svc.Create(ctx, clientdomain.CreateClientRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if err := svc.Delete(ctx, clientdomain.DeleteClientRequest{ID: created.ID.String()}); err != nil {
		t.Fatalf("failed to delete client: %v", err)
	}
	if _, err := svc.GetByID(ctx, clientdomain.GetClientRequest{ID: created.ID.String()}); err != clientdomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListFilterByQuery(t *testing.T) {
	svc := newTestService(t)
	ctx := userContext(100)

	for _, name := range []string{"Acme Corp", "Globex", "Initech"} {
		if _, err := svc.Create(ctx, clientdomain.CreateClientRequest{Name: name}); err != nil {
			t.Fatalf("failed to create client %s: %v", name, err)
		}
	}

	resp, err := svc.List(ctx, clientdomain.ListClientRequest{Query: "Glob"})
	if err != nil {
		t.Fatalf("failed to list clients: %v", err)
	}
	if len(resp.Clients) != 1 || resp.Clients[0].Name != "Globex" {
		t.Fatalf("expected single Globex match, got %+v", resp.Clients)
	}
}

func TestCreateRejectsMalformedEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := userContext(100)

	_, err := svc.Create(ctx, clientdomain.CreateClientRequest{
		Name:  "Acme",
		Email: "not-an-address",
	})
	if err != clientdomain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestTimestampsComeFromClock(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFakeClock(start)
	svc := newTestServiceWithClock(t, clk)
	ctx := userContext(100)

	created, err := svc.Create(ctx, clientdomain.CreateClientRequest{Name: "Acme"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if !created.CreatedAt.Equal(start) || !created.UpdatedAt.Equal(start) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", start, created.CreatedAt, created.UpdatedAt)
	}

	clk.Advance(48 * time.Hour)
	name := "Acme Corp"
	updated, err := svc.Update(ctx, clientdomain.UpdateClientRequest{
		ID:   created.ID.String(),
		Name: &name,
	})
	if err != nil {
		t.Fatalf("failed to update client: %v", err)
	}
	if !updated.CreatedAt.Equal(start) {
		t.Fatalf("expected created_at unchanged, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(start.Add(48 * time.Hour)) {
		t.Fatalf("expected updated_at advanced, got %v", updated.UpdatedAt)
	}
}
