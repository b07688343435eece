package chatbot

func loadEnglishMessages() {
	messages[English] = map[string]string{
		"reply.greeting":  "Hi! How can I help you today?",
		"reply.ask_name":  "Great, we'd love to help with your project! What's your name?",
		"reply.ask_email": "Nice to meet you, %s! What's your email address?",
		"reply.ask_budget": "Thanks! And what budget do you have in mind for the project?",

		"reply.invalid_email":  "That doesn't look like a valid email address. Could you double-check it?",
		"reply.invalid_budget": "I couldn't read that as a budget. A number like 5000 or $3,000 works best.",

		"reply.pricing":  "Our projects typically start at $1000, depending on scope.",
		"reply.contact":  "You can reach us at hello@example.com or +1 555 0100.",
		"reply.help":     "I can answer questions about pricing, contact info and our services, or set up a project inquiry for you.",
		"reply.services": "We offer Web Development, E-commerce, SEO and custom backend work.",

		"reply.completed":    "Perfect, that's everything! We've registered your inquiry with a budget of %s.",
		"reply.report_ready": "Your project report is being prepared: %s",
		"reply.reset":     "Alright, I've reset our conversation. How can I help you?",
		"reply.unknown":   "I didn't quite understand that. Could you rephrase?",
		"reply.apology":   "Sorry, I'm having trouble answering right now. Could you try again in a moment?",
		"reply.empty":     "I didn't receive a message. Could you write something?",

		"reply.remind_name":   "By the way, I still need your name to continue.",
		"reply.remind_email":  "By the way, I still need your email address to continue.",
		"reply.remind_budget": "By the way, I still need your budget estimate to continue.",

		"warn.lead_save": "Note: we had trouble saving your inquiry, our team will follow up to confirm it.",
	}
}
