// Package savedata keeps the small per-player record that outlives a
// session: best score, deepest wave and preferences. It is stored through
// gdata so every platform gets its conventional data directory.
package savedata

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name, which names the data directory.
const AppName = "stellar_defender"

const (
	recordObject   = "profile"
	recordProperty = "local"
)

// Record is the persisted player record.
type Record struct {
	HighScore int    `yaml:"high_score"`
	BestWave  int    `yaml:"best_wave"`
	Muted     bool   `yaml:"muted"`
	Device    string `yaml:"device,omitempty"` // last explicit --device choice
}

// Manager loads and saves the record. A nil gdata manager keeps the record
// in memory only.
type Manager struct {
	gm  *gdata.Manager
	rec Record
}

// Open opens the data directory for appName. When the platform has no
// usable data directory it falls back to a memory-only manager.
func Open(appName string) *Manager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("savedata: storage unavailable, progress will not persist", "err", err)
		gm = nil
	}
	m, err := New(gm)
	if err != nil {
		log.Warn("savedata: using a fresh record", "err", err)
	}
	return m
}

// New creates a manager on top of gm and loads the stored record.
// A load error is returned alongside a usable manager with a zero record.
func New(gm *gdata.Manager) (*Manager, error) {
	m := &Manager{gm: gm}
	return m, m.Load()
}

// Persistent reports whether records reach the disk.
func (m *Manager) Persistent() bool {
	return m.gm != nil
}

// Load reads the stored record. A missing record is not an error.
func (m *Manager) Load() error {
	m.rec = Record{}
	if m.gm == nil || !m.gm.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := m.gm.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("savedata: load: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("savedata: decode: %w", err)
	}
	m.rec = rec
	return nil
}

// Save writes the record. It is a no-op for memory-only managers.
func (m *Manager) Save() error {
	if m.gm == nil {
		return nil
	}
	data, err := yaml.Marshal(m.rec)
	if err != nil {
		return fmt.Errorf("savedata: encode: %w", err)
	}
	if err := m.gm.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("savedata: save: %w", err)
	}
	return nil
}

// Record returns a copy of the current record.
func (m *Manager) Record() Record {
	return m.rec
}

// RecordSession folds a finished session into the record and saves it when
// anything improved. It reports whether the score is a new best.
func (m *Manager) RecordSession(score, wave int) (bool, error) {
	best := score > m.rec.HighScore
	deeper := wave > m.rec.BestWave
	if best {
		m.rec.HighScore = score
	}
	if deeper {
		m.rec.BestWave = wave
	}
	if !best && !deeper {
		return false, nil
	}
	return best, m.Save()
}

// SetMuted stores the audio preference.
func (m *Manager) SetMuted(muted bool) error {
	m.rec.Muted = muted
	return m.Save()
}

// SetDevice stores the preferred device class.
func (m *Manager) SetDevice(device string) error {
	m.rec.Device = device
	return m.Save()
}
