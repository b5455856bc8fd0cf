package handlers

// Форматы ввода времени в аргументах команд
const (
	inputTimeLayout = "2006-01-02T15:04"
	displayLayout   = "02.01.2006 15:04"
)

// Тексты ответов
const (
	textStoreLoading  = "⏳ Расписание загружается. Попробуйте через минуту."
	textInternalError = "❌ Произошла ошибка. Попробуйте позже."
	textUserNotFound  = "❌ Пользователь не найден. Используйте /start для регистрации."
	textTrainerOnly   = "❌ Эта команда доступна только инструкторам.\n\nСтать инструктором: /becometrainer"
	textNoTrainer     = "❌ Инструктор не найден.\n\nВыберите инструктора: /trainers, затем /settrainer <id>"
	textBadInterval   = "❌ Окончание занятия должно быть позже начала."
	textSlotNotFound  = "❌ Слот не найден."
	textBookingAbsent = "❌ Запись не найдена."
	textStudentAbsent = "❌ Ученик не найден."

	usageAddSlot        = "Использование: /addslot <начало> <конец>\nПример: /addslot 2024-03-01T09:00 2024-03-01T10:00"
	usageEditSlot       = "Использование: /editslot <id> <начало> <конец>"
	usageRemoveSlot     = "Использование: /removeslot <id>"
	usageBookStudent    = "Использование: /book <начало> <конец>\nПример: /book 2024-03-01T09:00 2024-03-01T10:00"
	usageBookTrainer    = "Использование: /book <id ученика> <начало> <конец>"
	usageApprove        = "Использование: /approve <id записи>"
	usageReject         = "Использование: /reject <id записи>"
	usageEditBooking    = "Использование: /editbooking <id записи> <id ученика> <начало> <конец>"
	usageStudentBooking = "Использование: /studentbookings <id ученика>"
	usageSetTrainer     = "Использование: /settrainer <id инструктора>"
)
