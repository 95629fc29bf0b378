package reminder

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	invoicedomain "github.com/hotaeshwar/crm-sub000/internal/invoice/domain"
)

func overdueSet(ids ...int64) []OverdueInvoice {
	set := make([]OverdueInvoice, 0, len(ids))
	for _, id := range ids {
		set = append(set, OverdueInvoice{
			Invoice: invoicedomain.Invoice{ID: snowflake.ID(id)},
		})
	}
	return set
}

func TestAlerterFiresOncePerBatch(t *testing.T) {
	alerter := NewAlerter()
	user := snowflake.ID(100)

	if state := alerter.Observe(user, overdueSet(1, 2)); state != AlertPending {
		t.Fatalf("expected pending on new overdue, got %s", state)
	}
	if state := alerter.MarkFired(user); state != AlertFired {
		t.Fatalf("expected fired, got %s", state)
	}

	// The same overdue set again must not re-arm the latch.
	if state := alerter.Observe(user, overdueSet(1, 2)); state != AlertFired {
		t.Fatalf("expected still fired for unchanged set, got %s", state)
	}

	// A newly overdue invoice re-arms it.
	if state := alerter.Observe(user, overdueSet(1, 2, 3)); state != AlertPending {
		t.Fatalf("expected pending on new invoice, got %s", state)
	}
}

func TestAlerterMuteSuppressesNewOverdue(t *testing.T) {
	alerter := NewAlerter()
	user := snowflake.ID(100)

	alerter.Observe(user, overdueSet(1))
	if state := alerter.Mute(user); state != AlertMuted {
		t.Fatalf("expected muted, got %s", state)
	}
	if state := alerter.Observe(user, overdueSet(1, 2)); state != AlertMuted {
		t.Fatalf("expected mute to hold, got %s", state)
	}
	if state := alerter.Replay(user); state != AlertPending {
		t.Fatalf("expected replay to re-arm, got %s", state)
	}
}

func TestAlerterResetsWhenNothingOverdue(t *testing.T) {
	alerter := NewAlerter()
	user := snowflake.ID(100)

	alerter.Observe(user, overdueSet(1))
	alerter.MarkFired(user)
	if state := alerter.Observe(user, nil); state != AlertIdle {
		t.Fatalf("expected idle with empty set, got %s", state)
	}

	// The invoice becoming overdue again counts as new.
	if state := alerter.Observe(user, overdueSet(1)); state != AlertPending {
		t.Fatalf("expected pending after reset, got %s", state)
	}
}

func TestAlerterIsolatesUsers(t *testing.T) {
	alerter := NewAlerter()

	alerter.Observe(snowflake.ID(100), overdueSet(1))
	if state := alerter.State(snowflake.ID(200)); state != AlertIdle {
		t.Fatalf("expected idle for untouched user, got %s", state)
	}
}
