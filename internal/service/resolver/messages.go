package resolver

// User-facing texts. Every one is safe to render in the chat window.
const (
	// ValidationError is the short error label of a rejected request.
	ValidationError = "الرسالة مطلوبة"
	// ValidationReply prompts the child to type a question.
	ValidationReply = "يرجى كتابة سؤالك! 😊"

	// ServerError is the short error label of a server fault.
	ServerError = "خطأ في الخادم"
	// ApologyReply is shown when nothing else could be produced.
	ApologyReply = "عذراً، حدث خطأ تقني! 😅 هل يمكنك المحاولة مرة أخرى؟ أنا هنا لأعلمك عن الأموال والأسهم! 💰📚"

	// FallbackNotice accompanies a reply that came from the keyword table after a
	// configured provider failed.
	FallbackNotice = "ai_unavailable_fallback_used"
)
