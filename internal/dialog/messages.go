package dialog

const (
	msgGreeting        = "Привет, %s! \nЯ бот EnglishCard для изучения английского языка.\n\nЧто ты хочешь сделать?"
	msgNoWords         = "Пока нет слов для тренировки. Добавьте свои слова!"
	msgQuestion        = "Как переводится слово:\n\n🇷🇺 <b>%s</b>?"
	msgExpired         = "Время вышло! Начните заново."
	msgCorrectNotice   = "Верно!"
	msgCorrect         = "Отлично! Правильный ответ: <b>%s</b>"
	msgWrongNotice     = "Неверно"
	msgWrong           = "Ошибка. Правильный ответ: <b>%s</b>\nПопробуй еще раз!"
	msgAskSource       = "Введите слово на русском языке:"
	msgAskTarget       = "Принято: '%s'. Теперь введите перевод на английский:"
	msgWordAdded       = "Слово '%s - %s' успешно добавлено!"
	msgSaveFailed      = "Ошибка при сохранении."
	msgNothingToDelete = "У вас пока нет личных слов для удаления."
	msgChooseDelete    = "Выберите слово, которое хотите удалить:"
	msgDeleteOption    = "%s - %s"
	msgDeletedNotice   = "Слово удалено!"
	msgDeleted         = "Слово успешно удалено из вашей базы."
	msgDeleteFailed    = "Ошибка при удалении."
	msgCancelled       = "Действие отменено."
	msgUseMenu         = "Выберите действие в меню ниже."
	msgInternalError   = "Произошла ошибка. Попробуйте позже."
	defaultName        = "друг"
)
