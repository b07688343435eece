package chatbot

func loadSpanishMessages() {
	messages[Spanish] = map[string]string{
		"reply.greeting":   "¡Hola! ¿En qué puedo ayudarte hoy?",
		"reply.ask_name":   "¡Genial, nos encantaría ayudarte con tu proyecto! ¿Cuál es tu nombre?",
		"reply.ask_email":  "¡Mucho gusto, %s! ¿Cuál es tu dirección de email?",
		"reply.ask_budget": "¡Gracias! ¿Y qué presupuesto tienes en mente para el proyecto?",

		"reply.invalid_email":  "Eso no parece una dirección de email válida. ¿Puedes comprobarla?",
		"reply.invalid_budget": "No pude leer eso como un presupuesto. Un número como 5000 o $3,000 funciona mejor.",

		"reply.pricing":  "Nuestros proyectos suelen empezar en $1000, según el alcance.",
		"reply.contact":  "Puedes contactarnos en hello@example.com o al +1 555 0100.",
		"reply.help":     "Puedo responder preguntas sobre precios, contacto y nuestros servicios, o iniciar una solicitud de proyecto.",
		"reply.services": "Ofrecemos desarrollo web, e-commerce, SEO y backend a medida.",

		"reply.completed":    "¡Perfecto, eso es todo! Hemos registrado tu solicitud con un presupuesto de %s.",
		"reply.report_ready": "Tu informe de proyecto se está preparando: %s",
		"reply.reset":     "De acuerdo, he reiniciado nuestra conversación. ¿En qué puedo ayudarte?",
		"reply.unknown":   "No entendí bien eso. ¿Puedes decirlo de otra forma?",
		"reply.apology":   "Lo siento, ahora mismo tengo problemas para responder. ¿Puedes intentarlo de nuevo en un momento?",
		"reply.empty":     "No recibí ningún mensaje. ¿Puedes escribir algo?",

		"reply.remind_name":   "Por cierto, todavía necesito tu nombre para continuar.",
		"reply.remind_email":  "Por cierto, todavía necesito tu email para continuar.",
		"reply.remind_budget": "Por cierto, todavía necesito tu presupuesto para continuar.",

		"warn.lead_save": "Nota: tuvimos un problema al guardar tu solicitud, nuestro equipo te contactará para confirmarla.",
	}
}
