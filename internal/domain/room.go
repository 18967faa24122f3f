package domain

// Room represents one of the guesthouse's rooms
// Комнаты статичны: загружаются при старте и не изменяются.
type Room struct {
	ID       int64
	Name     string
	Capacity int
}
