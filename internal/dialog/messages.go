package dialog

const (
	msgWelcome = "Привіт! Я бот для тренувань! " +
		"Тут ти можешь зробити для себе тренування у залі, тренування удома, та дієту, спеціально підібрану для тебе! " +
		"Будь-ласка, відправ спочатку свій номер телефона а потім пошту, для реєстрації або перевірки чи ти вже з нами!"
	msgHelp = "Доступні команди:\n" +
		"/start - почати реєстрацію або увійти\n" +
		"/help - список команд\n" +
		"/cancel - скасувати поточну дію"
	msgCancelled       = "Діалог скасовано."
	msgUseHelp         = "Я тебе не розумію, подивись будь-ласка на команду /help"
	msgNotUnderstood   = "На жаль, я не розумію тебе!"
	msgSomethingWrong  = "Щось пішло не так, спробуй ще раз пізніше"
	msgProfileNotFound = "Не можу знайти твій профіль. Натисни /start, щоб увійти ще раз."

	msgSendContact    = "Будь-ласка, скористайся кнопкою \"" + LabelSendContact + "\", щоб поділитися номером."
	msgAlreadyWithUs  = "Ти вже з нами!"
	msgNewUser        = "Ти новий користувач! Дякую за номер, тепер віправ свою пошту!"
	msgEmailSaved     = "Дякую за пошту! Тепер відправ свій вік!"
	msgAgeSaved       = "Дякую за вік! Тепер віправ свій зріст та вагу у форматі: зріст вага! Приклад: 185 90"
	msgRegistered     = "Дякую за висоту та вагу! Тепер я зможу розрахувати тренування та дієту для тебе! Також, дякую за реєстрацію)"
	msgContraindicate = "Напишить будь-ласка, чи є у вас якісь протипоказання, якщо ні, просто відправте крапку. \n\n" +
		"Також, потрібно буде трохи зачекати, генерую для тебе "

	msgTrainingAdded    = "Тренування додано! \n\n А ось і воно: \n\n "
	msgTrainingShow     = "Ось твоє тренування: \n\n "
	msgTrainingMissing  = "Тренування відсутнє!"
	msgTrainingDeleted  = "Тренування видалено!"
	msgTrainingNotThere = "Тренування вже відсутнє!"

	msgDietAdded    = "Дієта додана! \n\n А ось і вона: \n\n "
	msgDietShow     = "Ось твоя дієта: \n\n "
	msgDietMissing  = "Ти ще не додав дієту!"
	msgDietDeleted  = "Дієта видалена!"
	msgDietNotThere = "Дієта вже відсутня!"

	msgAskDataUpdate = "Хочете оновити дані? \n\n" +
		"Добре, тільки скидуйте у такому вигляді: вік: 21, зріст: 185, вага: 112"
	msgAskSizeUpdate = "Хочете оновити розмір м'язів? \n\n" +
		"Добре, тільки скидуйте у такому вигляді: 108 - груди, 105 - талія, 123 - бедра, 39 - біцепс руки, 72 - біцепс ноги, 45 - ікра"
	msgDataUpdated  = "Дані оновлено!"
	msgSizeUpdated  = "Розмір м'язів оновлено!"
	msgNoSizes      = "Ви ще не вводили розміри!"
	msgNoHistory    = "Ви ще не вводили дані!"
	msgStatsCaption = "Статистика розмірів"
)
