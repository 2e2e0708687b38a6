package tool

import "github.com/google/uuid"

func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// CommissionRecordID derives the deterministic commission id for a client and
// month, guaranteeing at most one record per (client, month) pair.
func CommissionRecordID(clientID, month string) string {
	return clientID + "-" + month
}
