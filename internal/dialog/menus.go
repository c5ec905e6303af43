package dialog

const (
	LabelGymTrainings  = "Мої тренування"
	LabelHomeTrainings = "Мої домашні тренування"
	LabelDiet          = "Моє харчування"
	LabelData          = "Мої дані"

	LabelAddTraining    = "Додати тренування"
	LabelDeleteTraining = "Видалити тренування"
	LabelShowTraining   = "Показати тренування"

	LabelAddDiet    = "Додати дієту"
	LabelDeleteDiet = "Видалити дієту"
	LabelShowDiet   = "Показати дієту"

	LabelUpdateData     = "Оновити дані"
	LabelUpdateSize     = "Оновити розміри"
	LabelShowData       = "Показати дані"
	LabelShowStatistics = "Показати статистику"

	LabelBack = "Назад"

	LabelSendContact = "Відправити номер"
)

var (
	mainMenuLabels     = []string{LabelGymTrainings, LabelHomeTrainings, LabelDiet, LabelData}
	trainingMenuLabels = []string{LabelAddTraining, LabelDeleteTraining, LabelShowTraining, LabelBack}
	dietMenuLabels     = []string{LabelAddDiet, LabelDeleteDiet, LabelShowDiet, LabelBack}
	dataMenuLabels     = []string{LabelUpdateData, LabelUpdateSize, LabelShowData, LabelShowStatistics, LabelBack}
)

// Action is a parsed menu button. Anything that is not a known label of the
// current menu parses to ActionUnknown.
type Action int

const (
	ActionUnknown Action = iota
	ActionBack

	ActionOpenGym
	ActionOpenHome
	ActionOpenDiet
	ActionOpenData

	ActionAdd
	ActionDelete
	ActionShow

	ActionUpdateData
	ActionUpdateSize
	ActionShowData
	ActionShowStatistics
)

func parseMainMenu(label string) Action {
	switch label {
	case LabelGymTrainings:
		return ActionOpenGym
	case LabelHomeTrainings:
		return ActionOpenHome
	case LabelDiet:
		return ActionOpenDiet
	case LabelData:
		return ActionOpenData
	case LabelBack:
		return ActionBack
	default:
		return ActionUnknown
	}
}

func parseTrainingMenu(label string) Action {
	switch label {
	case LabelAddTraining:
		return ActionAdd
	case LabelDeleteTraining:
		return ActionDelete
	case LabelShowTraining:
		return ActionShow
	case LabelBack:
		return ActionBack
	default:
		return ActionUnknown
	}
}

func parseDietMenu(label string) Action {
	switch label {
	case LabelAddDiet:
		return ActionAdd
	case LabelDeleteDiet:
		return ActionDelete
	case LabelShowDiet:
		return ActionShow
	case LabelBack:
		return ActionBack
	default:
		return ActionUnknown
	}
}

func parseDataMenu(label string) Action {
	switch label {
	case LabelUpdateData:
		return ActionUpdateData
	case LabelUpdateSize:
		return ActionUpdateSize
	case LabelShowData:
		return ActionShowData
	case LabelShowStatistics:
		return ActionShowStatistics
	case LabelBack:
		return ActionBack
	default:
		return ActionUnknown
	}
}

// MenuLabels returns the keyboard of a menu state, or nil for non-menu states.
func MenuLabels(k Kind) []string {
	switch k {
	case KindMainMenu:
		return mainMenuLabels
	case KindHomeTrainingMenu, KindGymTrainingMenu:
		return trainingMenuLabels
	case KindDietMenu:
		return dietMenuLabels
	case KindDataMenu:
		return dataMenuLabels
	default:
		return nil
	}
}

// menuTitle is the text sent together with a menu keyboard.
func menuTitle(k Kind) string {
	switch k {
	case KindMainMenu:
		return "Головне меню"
	case KindHomeTrainingMenu:
		return LabelHomeTrainings
	case KindGymTrainingMenu:
		return LabelGymTrainings
	case KindDietMenu:
		return LabelDiet
	case KindDataMenu:
		return LabelData
	default:
		return ""
	}
}

func menuReply(k Kind) Reply {
	return withKeyboard(menuTitle(k), MenuLabels(k))
}
