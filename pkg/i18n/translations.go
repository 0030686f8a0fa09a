package i18n

// Плоские ключи вида "absence.title". Набор ограничен тем, что реально
// показывают чат-бот и ссылки на веб-форму.
var translations = map[Language]map[string]string{
	LangEN: {
		"absence.title":        "Absence Request",
		"absence.selectType":   "What kind of absence do you need?",
		"absence.selectOffice": "Which office are you in?",
		"absence.selectDates":  "When will you be away?",
		"absence.submitted":    "Your request has been submitted.",
		"common.next":          "Next",
		"common.back":          "Back",
		"common.openForm":      "Continue in the web form",

		"absence.types.vacation":        "Vacation",
		"absence.types.sick_leave":      "Sick leave",
		"absence.types.parental_leave":  "Parental leave",
		"absence.types.sick_child":      "Sick child",
		"absence.types.work_from_home":  "Work from home",
		"absence.types.knowledge_time":  "Knowledge time",
		"absence.types.flex_time":       "Flex time",
		"absence.types.paid_leave":      "Paid leave",
		"absence.types.unpaid_leave":    "Unpaid leave",
		"absence.types.care_relative":   "Care for a relative",
		"absence.types.military_duties": "Military duties",

		"office.ljubljana": "Ljubljana",
		"office.munich":    "Munich",
	},
	LangSL: {
		"absence.title":        "Zahteva za odsotnost",
		"absence.selectType":   "Kakšno odsotnost potrebujete?",
		"absence.selectOffice": "V kateri pisarni ste?",
		"absence.selectDates":  "Kdaj boste odsotni?",
		"absence.submitted":    "Vaša zahteva je bila oddana.",
		"common.next":          "Naprej",
		"common.back":          "Nazaj",
		"common.openForm":      "Nadaljujte v spletnem obrazcu",

		"absence.types.vacation":        "Dopust",
		"absence.types.sick_leave":      "Bolniška",
		"absence.types.parental_leave":  "Starševski dopust",
		"absence.types.sick_child":      "Nega otroka",
		"absence.types.work_from_home":  "Delo od doma",
		"absence.types.knowledge_time":  "Čas za znanje",
		"absence.types.flex_time":       "Fleksibilni čas",
		"absence.types.paid_leave":      "Plačana odsotnost",
		"absence.types.unpaid_leave":    "Neplačana odsotnost",
		"absence.types.care_relative":   "Nega svojca",
		"absence.types.military_duties": "Vojaške dolžnosti",

		"office.ljubljana": "Ljubljana",
		"office.munich":    "München",
	},
	LangDE: {
		"absence.title":        "Abwesenheitsantrag",
		"absence.selectType":   "Welche Art von Abwesenheit brauchen Sie?",
		"absence.selectOffice": "In welchem Büro sind Sie?",
		"absence.selectDates":  "Wann werden Sie abwesend sein?",
		"absence.submitted":    "Ihr Antrag wurde eingereicht.",
		"common.next":          "Weiter",
		"common.back":          "Zurück",
		"common.openForm":      "Im Webformular fortfahren",

		"absence.types.vacation":        "Urlaub",
		"absence.types.sick_leave":      "Krankheit",
		"absence.types.parental_leave":  "Elternzeit",
		"absence.types.sick_child":      "Krankes Kind",
		"absence.types.work_from_home":  "Homeoffice",
		"absence.types.knowledge_time":  "Weiterbildungszeit",
		"absence.types.flex_time":       "Gleitzeit",
		"absence.types.paid_leave":      "Bezahlter Sonderurlaub",
		"absence.types.unpaid_leave":    "Unbezahlter Urlaub",
		"absence.types.care_relative":   "Pflege von Angehörigen",
		"absence.types.military_duties": "Militärdienst",

		"office.ljubljana": "Ljubljana",
		"office.munich":    "München",
	},
}
