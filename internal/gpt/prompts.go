package gpt

const systemPrompt = "Ти досвідчений фітнес-тренер і дієтолог. Відповідай українською мовою, коротко і структуровано."

// Prompt pairs: the first variant is followed by the user's contraindications, the
// second one is used when there are none. Both are completed with the profile.
const (
	HomeTrainingWithArgs = "Склади програму домашніх тренувань на тиждень без спеціального обладнання. " +
		"Врахуй такі протипоказання: "
	HomeTrainingWithoutArgs = "Склади програму домашніх тренувань на тиждень без спеціального обладнання. " +
		"Протипоказань немає."

	GymTrainingWithArgs = "Склади програму тренувань у тренажерному залі на тиждень з підходами та повтореннями. " +
		"Врахуй такі протипоказання: "
	GymTrainingWithoutArgs = "Склади програму тренувань у тренажерному залі на тиждень з підходами та повтореннями. " +
		"Протипоказань немає."

	DietWithArgs = "Склади раціон харчування на тиждень з калорійністю та розподілом білків, жирів і вуглеводів. " +
		"Врахуй такі обмеження та протипоказання: "
	DietWithoutArgs = "Склади раціон харчування на тиждень з калорійністю та розподілом білків, жирів і вуглеводів. " +
		"Обмежень немає."
)
