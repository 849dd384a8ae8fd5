// Package models holds the event domain types: the meeting being
// administered and the history of directory syncs from the member registry.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType is the kind of meeting being administered.
type EventType string

const (
	TypeAGM      EventType = "AGM"
	TypeElection EventType = "Election"
)

// EventStatus is the lifecycle stage of the event.
type EventStatus string

const (
	StatusScheduled EventStatus = "Scheduled"
	StatusActive    EventStatus = "Active"
	StatusClosed    EventStatus = "Closed"
)

// Event is the meeting the console is currently administering.
type Event struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Type   EventType   `json:"type"`
	Status EventStatus `json:"status"`
	Date   time.Time   `json:"date"`
	Venue  string      `json:"venue,omitempty"`

	Counts     Counts     `json:"counts"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

// Counts are the live dashboard tallies computed from the member directory.
type Counts struct {
	TotalMembers int `json:"total_members"`
	Eligible     int `json:"eligible"`
	Registered   int `json:"registered"`
	Attended     int `json:"attended"`
}

// SyncOutcome records whether a registry sync completed.
type SyncOutcome string

const (
	SyncSucceeded SyncOutcome = "success"
	SyncFailed    SyncOutcome = "failed"
)

// SyncStatus is one entry in the registry sync history, newest-first.
type SyncStatus struct {
	ID            uuid.UUID   `json:"id"`
	StartedAt     time.Time   `json:"started_at"`
	CompletedAt   time.Time   `json:"completed_at"`
	Outcome       SyncOutcome `json:"outcome"`
	MembersSynced int         `json:"members_synced"`
	TriggeredBy   string      `json:"triggered_by"`
	Error         string      `json:"error,omitempty"`
}
