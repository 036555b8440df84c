package utils

import (
	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== TRANSACTION ID ====================

// GenerateTransactionID returns the opaque gateway reference for one
// settlement attempt. UUIDv4 keeps the collision probability negligible.
func GenerateTransactionID() string {
	return "txn_" + uuid.NewString()
}
