package reminder

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// AlertState is the overdue-alert latch. The alert fires at most once
// per batch of newly overdue invoices.
type AlertState string

const (
	AlertIdle    AlertState = "idle"
	AlertPending AlertState = "pending"
	AlertFired   AlertState = "fired"
	AlertMuted   AlertState = "muted"
)

type alertEntry struct {
	state AlertState
	seen  map[snowflake.ID]bool
}

// Alerter tracks the alert latch per user.
type Alerter struct {
	mu      sync.Mutex
	entries map[snowflake.ID]*alertEntry
}

func NewAlerter() *Alerter {
	return &Alerter{entries: make(map[snowflake.ID]*alertEntry)}
}

// Observe folds a fresh overdue snapshot into the latch. Invoices not
// seen before move the latch to Pending unless the user has muted it.
func (a *Alerter) Observe(userID snowflake.ID, overdue []OverdueInvoice) AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entry(userID)

	hasNew := false
	current := make(map[snowflake.ID]bool, len(overdue))
	for _, item := range overdue {
		current[item.Invoice.ID] = true
		if !entry.seen[item.Invoice.ID] {
			hasNew = true
		}
	}
	entry.seen = current

	if len(overdue) == 0 {
		entry.state = AlertIdle
	} else if hasNew && entry.state != AlertMuted {
		entry.state = AlertPending
	}
	return entry.state
}

// MarkFired records that the pending alert was delivered.
func (a *Alerter) MarkFired(userID snowflake.ID) AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entry(userID)
	if entry.state == AlertPending {
		entry.state = AlertFired
	}
	return entry.state
}

// Mute suppresses the alert until it is explicitly replayed.
func (a *Alerter) Mute(userID snowflake.ID) AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entry(userID)
	entry.state = AlertMuted
	return entry.state
}

// Replay re-arms the latch so the alert can fire again.
func (a *Alerter) Replay(userID snowflake.ID) AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entry(userID)
	entry.state = AlertPending
	return entry.state
}

// State returns the current latch state without mutating it.
func (a *Alerter) State(userID snowflake.ID) AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.entry(userID).state
}

func (a *Alerter) entry(userID snowflake.ID) *alertEntry {
	entry, ok := a.entries[userID]
	if !ok {
		entry = &alertEntry{state: AlertIdle, seen: make(map[snowflake.ID]bool)}
		a.entries[userID] = entry
	}
	return entry
}
