package telegram

const (
	defaultPollingTimeout = 60

	commandStart = "/start"
	commandHelp  = "/help"

	welcomeText = "👋 Welcome to Pneuma support!\n\nAsk me about today's deals, how to earn and use mileage, or setting up your account."
	helpText    = "You can ask things like:\n• \"any deals today?\"\n• \"how do I earn mileage?\"\n• \"how do I sign up?\""
)
