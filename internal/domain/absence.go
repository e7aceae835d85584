package domain

import "time"

type AbsenceRecord struct {
	StoreID        string    `json:"store_id"`
	CollaboratorID string    `json:"collaborator_id"`
	Date           time.Time `json:"date"`
}
