package tracker

import (
	"encoding/json"

	"github.com/mmcdole/pagemark/internal/domain"
)

// load reads every slot independently. A slot that is missing, unreadable
// or corrupt falls back to its default without affecting the others.
func (t *Tracker) load() domain.State {
	return domain.State{
		Books:    loadSlot(t, domain.SlotBooks, bookFromRecord),
		Notes:    loadSlot(t, domain.SlotNotes, noteFromRecord),
		Goals:    loadSlot(t, domain.SlotGoals, goalFromRecord),
		Sessions: loadSlot(t, domain.SlotSessions, sessionFromRecord),
		Settings: t.loadSettings(),
	}
}

func loadSlot[R, T any](t *Tracker, key string, convert func(R) (T, error)) []T {
	data, ok, err := t.slots.Get(key)
	if err != nil {
		t.logger.Warn("failed to read slot, using empty collection", "slot", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	items, skipped, err := decodeSlot(data, convert)
	if err != nil {
		t.logger.Warn("corrupt slot, using empty collection", "slot", key, "error", err)
		return []T{}
	}
	for _, skipErr := range skipped {
		t.logger.Warn("dropped unreadable record", "slot", key, "error", skipErr)
	}
	return items
}

func (t *Tracker) loadSettings() domain.Settings {
	data, ok, err := t.slots.Get(domain.SlotSettings)
	if err != nil {
		t.logger.Warn("failed to read slot, using default settings", "slot", domain.SlotSettings, "error", err)
		return domain.DefaultSettings()
	}
	if !ok {
		return domain.DefaultSettings()
	}

	settings, err := decodeSettings(data)
	if err != nil {
		t.logger.Warn("corrupt slot, using default settings", "slot", domain.SlotSettings, "error", err)
		return domain.DefaultSettings()
	}
	return settings
}

// persist writes all five collections. Failures are logged and otherwise
// ignored: the in-memory state stays as committed.
func (t *Tracker) persist(s domain.State) {
	docs := []struct {
		slot  string
		value any
	}{
		{domain.SlotBooks, encodeBooks(s.Books)},
		{domain.SlotNotes, encodeNotes(s.Notes)},
		{domain.SlotGoals, encodeGoals(s.Goals)},
		{domain.SlotSessions, encodeSessions(s.Sessions)},
		{domain.SlotSettings, encodeSettings(s.Settings)},
	}

	for _, doc := range docs {
		data, err := json.Marshal(doc.value)
		if err != nil {
			t.logger.Error("failed to encode slot", "slot", doc.slot, "error", err)
			continue
		}
		if err := t.slots.Put(doc.slot, data); err != nil {
			t.logger.Error("failed to persist slot", "slot", doc.slot, "error", err)
		}
	}
}
