package chatbot

func loadFrenchMessages() {
	messages[French] = map[string]string{
		"reply.greeting":   "Bonjour ! Comment puis-je vous aider ?",
		"reply.ask_name":   "Super, nous serions ravis de vous aider avec votre projet ! Quel est votre nom ?",
		"reply.ask_email":  "Enchanté, %s ! Quelle est votre adresse email ?",
		"reply.ask_budget": "Merci ! Et quel budget envisagez-vous pour le projet ?",

		"reply.invalid_email":  "Cela ne ressemble pas à une adresse email valide. Pouvez-vous vérifier ?",
		"reply.invalid_budget": "Je n'ai pas pu lire cela comme un budget. Un nombre comme 5000 ou 3000€ fonctionne le mieux.",

		"reply.pricing":  "Nos projets commencent généralement à 1000$, selon l'ampleur.",
		"reply.contact":  "Vous pouvez nous joindre à hello@example.com ou au +1 555 0100.",
		"reply.help":     "Je peux répondre aux questions sur les prix, le contact et nos services, ou démarrer une demande de projet.",
		"reply.services": "Nous proposons du développement web, de l'e-commerce, du SEO et du backend sur mesure.",

		"reply.completed":    "Parfait, c'est tout ce qu'il me faut ! Votre demande est enregistrée avec un budget de %s.",
		"reply.report_ready": "Votre rapport de projet est en préparation : %s",
		"reply.reset":     "D'accord, j'ai réinitialisé notre conversation. Comment puis-je vous aider ?",
		"reply.unknown":   "Je n'ai pas bien compris. Pouvez-vous reformuler ?",
		"reply.apology":   "Désolé, j'ai du mal à répondre pour le moment. Pouvez-vous réessayer dans un instant ?",
		"reply.empty":     "Je n'ai pas reçu de message. Peux-tu écrire quelque chose ?",

		"reply.remind_name":   "Au fait, il me faut encore votre nom pour continuer.",
		"reply.remind_email":  "Au fait, il me faut encore votre adresse email pour continuer.",
		"reply.remind_budget": "Au fait, il me faut encore votre budget pour continuer.",

		"warn.lead_save": "Remarque : nous avons eu un souci pour enregistrer votre demande, notre équipe vous recontactera pour la confirmer.",
	}
}
