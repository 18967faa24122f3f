package rules

// Пользовательские сообщения о нарушениях правил дома (французский - язык продукта)
const (
	// MsgCheckOutNotAfterCheckIn нарушение порядка дат
	MsgCheckOutNotAfterCheckIn = "La date de départ doit être après la date d'arrivée"

	// MsgClosedOnMonday проживание захватывает закрытый день недели
	MsgClosedOnMonday = "Le gîte est fermé le lundi. Aucun séjour ne peut inclure un lundi."

	// MsgRoomUnavailable комната занята на выбранные даты
	MsgRoomUnavailable = "Cette chambre n'est pas disponible pour ces dates"

	// MsgTooManyGuests превышена общая вместимость комнаты
	MsgTooManyGuests = "Maximum 3 personnes par chambre (2 adultes + 1 enfant)"

	// MsgTooManyAdults превышено число взрослых
	MsgTooManyAdults = "Maximum 2 adultes par chambre"

	// MsgTooManyChildren превышено число детей
	MsgTooManyChildren = "Maximum 1 enfant par chambre"

	// MsgCheckInInPast дата заезда нового бронирования в прошлом
	MsgCheckInInPast = "La date d'arrivée doit être dans le futur"
)
