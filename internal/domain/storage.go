package domain

// Storage slot keys, one per collection
const (
	SlotBooks    = "bookTracker_books"
	SlotNotes    = "bookTracker_notes"
	SlotGoals    = "bookTracker_goals"
	SlotSessions = "bookTracker_sessions"
	SlotSettings = "bookTracker_settings"
)

// Slots lists every slot in write order
var Slots = []string{SlotBooks, SlotNotes, SlotGoals, SlotSessions, SlotSettings}

// SlotStore is a local key-value store holding one JSON document per slot.
// Writes are synchronous; there is no batching.
type SlotStore interface {
	// Get returns the raw slot contents, false when the slot was never written
	Get(key string) ([]byte, bool, error)

	// Put replaces the slot contents
	Put(key string, data []byte) error

	Close() error
}
