package holidays

// Государственные праздники Словении и Баварии (Мюнхен), 2025-2027.
// Чистый справочник без внешних зависимостей, по образцу pkg/weekends.

// Office - область действия праздника.
const (
	OfficeLjubljana = "ljubljana"
	OfficeMunich    = "munich"
	OfficeBoth      = "both"
)

// Holiday - один праздничный день.
type Holiday struct {
	Date   string // ISO-дата YYYY-MM-DD
	Name   map[string]string
	Office string
}

// IsHoliday проверяет, приходится ли дата на праздник указанного офиса.
func IsHoliday(date, office string) bool {
	for _, h := range all {
		if h.Date == date && appliesTo(h, office) {
			return true
		}
	}
	return false
}

// ForOffice возвращает все праздники офиса.
func ForOffice(office string) []Holiday {
	var result []Holiday
	for _, h := range all {
		if appliesTo(h, office) {
			result = append(result, h)
		}
	}
	return result
}

// ForYear возвращает праздники офиса в указанном году.
func ForYear(year string, office string) []Holiday {
	var result []Holiday
	for _, h := range all {
		if len(h.Date) >= 4 && h.Date[:4] == year && appliesTo(h, office) {
			result = append(result, h)
		}
	}
	return result
}

func appliesTo(h Holiday, office string) bool {
	return h.Office == OfficeBoth || h.Office == office
}

func name(en, sl, de string) map[string]string {
	return map[string]string{"en": en, "sl": sl, "de": de}
}

var all = buildTable()

// buildTable разворачивает повторяющиеся из года в год праздники на
// фиксированные даты. Пасхальные дни в таблицу не входят.
func buildTable() []Holiday {
	type entry struct {
		month  string
		name   map[string]string
		office string
	}

	yearly := []entry{
		{"01-01", name("New Year's Day", "Novo leto", "Neujahr"), OfficeBoth},
		{"01-02", name("New Year Holiday", "Novoletni praznik", "Neujahrstag"), OfficeLjubljana},
		{"01-06", name("Epiphany", "Sveti trije kralji", "Heilige Drei Könige"), OfficeMunich},
		{"02-08", name("Prešeren Day", "Prešernov dan", "Prešeren-Tag"), OfficeLjubljana},
		{"04-27", name("Day of Uprising Against Occupation", "Dan upora proti okupatorju", "Tag des Aufstands gegen die Besatzung"), OfficeLjubljana},
		{"05-01", name("Labour Day", "Praznik dela", "Tag der Arbeit"), OfficeBoth},
		{"05-02", name("Labour Day Holiday", "Praznik dela", "Tag der Arbeit"), OfficeLjubljana},
		{"06-25", name("Statehood Day", "Dan državnosti", "Staatlichkeitstag"), OfficeLjubljana},
		{"08-15", name("Assumption Day", "Marijino vnebovzetje", "Mariä Himmelfahrt"), OfficeBoth},
		{"10-03", name("German Unity Day", "Dan nemške enotnosti", "Tag der Deutschen Einheit"), OfficeMunich},
		{"10-31", name("Reformation Day", "Dan reformacije", "Reformationstag"), OfficeLjubljana},
		{"11-01", name("All Saints' Day", "Dan spomina na mrtve", "Allerheiligen"), OfficeBoth},
		{"12-25", name("Christmas", "Božič", "Weihnachten"), OfficeBoth},
		{"12-26", name("Independence Day", "Dan samostojnosti", "Unabhängigkeitstag"), OfficeBoth},
	}

	years := []string{"2025", "2026", "2027"}

	var table []Holiday
	for _, year := range years {
		for _, e := range yearly {
			table = append(table, Holiday{
				Date:   year + "-" + e.month,
				Name:   e.name,
				Office: e.office,
			})
		}
	}
	return table
}
