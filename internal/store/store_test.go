package store

import (
	"testing"

	"github.com/mmcdole/pagemark/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendCase struct {
	name string
	open func(t *testing.T, dir string) domain.SlotStore
}

func backends() []backendCase {
	return []backendCase{
		{"bolt", func(t *testing.T, dir string) domain.SlotStore {
			s, err := NewBoltStore(dir)
			require.NoError(t, err)
			return s
		}},
		{"badger", func(t *testing.T, dir string) domain.SlotStore {
			s, err := NewBadgerStore(dir)
			require.NoError(t, err)
			return s
		}},
	}
}

func TestSlotStore_GetMissing(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, t.TempDir())
			defer s.Close()

			data, ok, err := s.Get(domain.SlotBooks)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, data)
		})
	}
}

func TestSlotStore_PutGetOverwrite(t *testing.T) {
	for _, bc := range backends() {
		for _, mode := range []string{"disk", "memory"} {
			t.Run(bc.name+"/"+mode, func(t *testing.T) {
				dir := ""
				if mode == "disk" {
					dir = t.TempDir()
				}
				s := bc.open(t, dir)
				defer s.Close()

				require.NoError(t, s.Put(domain.SlotNotes, []byte(`[{"id":"a"}]`)))
				data, ok, err := s.Get(domain.SlotNotes)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.JSONEq(t, `[{"id":"a"}]`, string(data))

				require.NoError(t, s.Put(domain.SlotNotes, []byte(`[]`)))
				data, ok, err = s.Get(domain.SlotNotes)
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, "[]", string(data))
			})
		}
	}
}

func TestSlotStore_PersistsAcrossReopen(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			dir := t.TempDir()

			s := bc.open(t, dir)
			require.NoError(t, s.Put(domain.SlotSettings, []byte(`{"reminderTime":"07:30"}`)))
			require.NoError(t, s.Close())

			reopened := bc.open(t, dir)
			defer reopened.Close()

			data, ok, err := reopened.Get(domain.SlotSettings)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `{"reminderTime":"07:30"}`, string(data))
		})
	}
}

func TestSlotStore_ReturnedBytesAreCopies(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, "")
			defer s.Close()

			in := []byte("abc")
			require.NoError(t, s.Put("k", in))
			in[0] = 'x'

			out, _, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "abc", string(out))

			out[1] = 'y'
			again, _, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "abc", string(again))
		})
	}
}

func TestSlotStore_UseAfterClose(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t, "")
			require.NoError(t, s.Close())

			_, _, err := s.Get(domain.SlotBooks)
			assert.ErrorIs(t, err, domain.ErrStoreClosed)
			assert.ErrorIs(t, s.Put(domain.SlotBooks, []byte("[]")), domain.ErrStoreClosed)
		})
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    any
	}{
		{"", &BoltStore{}},
		{"bolt", &BoltStore{}},
		{"BOLT", &BoltStore{}},
		{"badger", &BadgerStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, err := Open(tt.backend, t.TempDir(), nil)
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("sqlite", "", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}
