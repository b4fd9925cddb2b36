// internal/system/input.go
package system

import (
	"go-tank-battle/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem превращает опрос клавиатуры Ebitengine в дискретные события
// KeyPressed / KeyReleased.
type InputSystem struct {
	eventDispatcher *event.Dispatcher
	pressed         []ebiten.Key
	released        []ebiten.Key
}

func NewInputSystem(eventDispatcher *event.Dispatcher) *InputSystem {
	return &InputSystem{eventDispatcher: eventDispatcher}
}

// Update опрашивает клавиши, изменившие состояние в этом тике.
func (s *InputSystem) Update(deltaTime float64) {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	s.emit(s.pressed, s.released)
}

// Resync отправляет текущее состояние перечисленных клавиш.
// Нужен после паузы: нажатия и отпускания во время паузы не доходят до игры.
func (s *InputSystem) Resync(keys []ebiten.Key) {
	s.resync(keys, ebiten.IsKeyPressed)
}

func (s *InputSystem) resync(keys []ebiten.Key, isPressed func(ebiten.Key) bool) {
	for _, key := range keys {
		eventType := event.KeyReleased
		if isPressed(key) {
			eventType = event.KeyPressed
		}
		s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: key})
	}
}

func (s *InputSystem) emit(pressed, released []ebiten.Key) {
	for _, key := range pressed {
		s.eventDispatcher.Dispatch(event.Event{Type: event.KeyPressed, Data: key})
	}
	for _, key := range released {
		s.eventDispatcher.Dispatch(event.Event{Type: event.KeyReleased, Data: key})
	}
}
