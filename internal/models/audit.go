package models

import "time"

// AuditAction is the kind of mutation recorded in the audit log
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// ValidAuditActions contains the allowed audit actions
var ValidAuditActions = map[AuditAction]bool{
	AuditActionCreate: true,
	AuditActionUpdate: true,
	AuditActionDelete: true,
}

// AuditLogEntry is an append-only record of who did what to which
// entity and when. Entries are never updated or deleted.
type AuditLogEntry struct {
	ID        string      `json:"id"`
	Action    AuditAction `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entityId"`
	UserID    string      `json:"userId"`
	Details   string      `json:"details"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuditFilter holds the query filters for the audit log listing
type AuditFilter struct {
	ListParams
	Entity string
	Action string
	UserID string
}
