package app

import (
	"fmt"
	"sync"
)

// ActivityState описывает текущее состояние заметки в рамках данного экземпляра сервиса.
type ActivityState int

// Допустимые состояния заметки.
const (
	StateIdle ActivityState = iota
	StateEditing
	StateSummarizing
)

// String возвращает имя состояния.
func (s ActivityState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSummarizing:
		return "summarizing"
	default:
		return "idle"
	}
}

// ActivityTracker отслеживает состояние заметок по их идентификаторам.
// Допустимые переходы: idle -> editing -> idle и idle -> summarizing -> idle.
// Состояние не персистентно и не разделяется между экземплярами сервиса.
type ActivityTracker struct {
	mu     sync.Mutex
	states map[string]ActivityState
}

// NewActivityTracker создает новый трекер состояний заметок.
func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{
		states: make(map[string]ActivityState),
	}
}

// State возвращает текущее состояние заметки.
func (t *ActivityTracker) State(noteID string) ActivityState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[noteID]
}

// BeginEditing переводит заметку в состояние editing.
// Переход допустим только из состояния idle.
func (t *ActivityTracker) BeginEditing(noteID string) error {
	return t.begin(noteID, StateEditing)
}

// BeginSummarizing переводит заметку в состояние summarizing.
// Повторный запрос для заметки, которая уже суммаризируется,
// отклоняется с ErrSummarizationInFlight.
func (t *ActivityTracker) BeginSummarizing(noteID string) error {
	return t.begin(noteID, StateSummarizing)
}

// End возвращает заметку в состояние idle. Вызов безопасен из любого
// состояния и должен выполняться безусловно (через defer).
func (t *ActivityTracker) End(noteID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, noteID)
}

func (t *ActivityTracker) begin(noteID string, next ActivityState) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.states[noteID]
	if current != StateIdle {
		if current == StateSummarizing && next == StateSummarizing {
			return ErrSummarizationInFlight
		}
		return fmt.Errorf("%w: %s", ErrNoteBusy, current)
	}

	t.states[noteID] = next
	return nil
}
