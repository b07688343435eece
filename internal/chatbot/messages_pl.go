package chatbot

func loadPolishMessages() {
	messages[Polish] = map[string]string{
		"reply.greeting":   "Cześć! W czym mogę pomóc?",
		"reply.ask_name":   "Świetnie, chętnie pomożemy z Twoim projektem! Jak masz na imię?",
		"reply.ask_email":  "Miło Cię poznać, %s! Jaki jest Twój adres email?",
		"reply.ask_budget": "Dziękuję! A jaki budżet przewidujesz na projekt?",

		"reply.invalid_email":  "To nie wygląda na poprawny adres email. Możesz sprawdzić jeszcze raz?",
		"reply.invalid_budget": "Nie udało mi się odczytać tego jako budżetu. Najlepiej podać liczbę, np. 5000.",

		"reply.pricing":  "Nasze projekty zaczynają się zwykle od 1000$, w zależności od zakresu.",
		"reply.contact":  "Możesz się z nami skontaktować pod hello@example.com lub +1 555 0100.",
		"reply.help":     "Mogę odpowiedzieć na pytania o ceny, kontakt i nasze usługi albo rozpocząć zapytanie projektowe.",
		"reply.services": "Oferujemy tworzenie stron www, e-commerce, SEO i backend na zamówienie.",

		"reply.completed":    "Świetnie, to wszystko! Zarejestrowaliśmy Twoje zapytanie z budżetem %s.",
		"reply.report_ready": "Raport projektu jest w przygotowaniu: %s",
		"reply.reset":     "W porządku, zresetowałem naszą rozmowę. W czym mogę pomóc?",
		"reply.unknown":   "Nie do końca rozumiem. Możesz powiedzieć to inaczej?",
		"reply.apology":   "Przepraszam, mam teraz problem z odpowiedzią. Spróbuj ponownie za chwilę.",
		"reply.empty":     "Nie otrzymałem wiadomości. Możesz coś napisać?",

		"reply.remind_name":   "Przy okazji, wciąż potrzebuję Twojego imienia, żeby kontynuować.",
		"reply.remind_email":  "Przy okazji, wciąż potrzebuję Twojego adresu email, żeby kontynuować.",
		"reply.remind_budget": "Przy okazji, wciąż potrzebuję Twojego budżetu, żeby kontynuować.",

		"warn.lead_save": "Uwaga: wystąpił problem z zapisaniem zapytania, nasz zespół skontaktuje się, aby je potwierdzić.",
	}
}
