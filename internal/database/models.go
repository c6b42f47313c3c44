package database

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID
	CandidateName    string
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	StorageUrl       string
	UploadStatus     string
	CreatedAt        time.Time
	SessionID        uuid.UUID
}

type HistoryEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Company   string
	Score     int32
	CreatedAt time.Time
}
