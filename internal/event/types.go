// internal/event/types.go
package event

const (
	KeyPressed    EventType = "KeyPressed"    // Клавиша нажата, Data — ebiten.Key
	KeyReleased   EventType = "KeyReleased"   // Клавиша отпущена, Data — ebiten.Key
	SpritesLoaded EventType = "SpritesLoaded" // Загрузка спрайтов завершена, Data — bool (успех)
)
