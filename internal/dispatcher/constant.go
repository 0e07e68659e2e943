package dispatcher

const (
	DefaultApologyText = "Sorry, I couldn't find that — could you rephrase?"

	clarifyCandidatesFormat = "Just to be sure, are you asking about %s?"
	clarifyTopicsFormat     = "I can help with %s. Which one are you asking about?"
	clarifyFallbackText     = "Could you tell me a bit more about what you need?"

	noIntentLabel = "none"
)

// Failure reasons recorded in faqbot_dispatch_failures_total.
const (
	reasonUnknownIntent        = "unknown_intent"
	reasonDataUnavailable      = "data_unavailable"
	reasonGeneratorUnavailable = "generator_unavailable"
	reasonProduce              = "produce_error"
	reasonPanic                = "panic"
	reasonEmptyReply           = "empty_reply"
)
