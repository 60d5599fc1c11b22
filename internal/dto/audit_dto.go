package dto

import "time"

type AuditLogResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
