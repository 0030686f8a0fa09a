package models

// Офисы компании.
const (
	OfficeLjubljana = "ljubljana"
	OfficeMunich    = "munich"
)

// OfficeConfig - статическая конфигурация офиса.
type OfficeConfig struct {
	ID              string
	Name            string
	Timezone        string
	HolidayCalendar string
}

var offices = map[string]OfficeConfig{
	OfficeLjubljana: {ID: OfficeLjubljana, Name: "Ljubljana", Timezone: "Europe/Ljubljana", HolidayCalendar: "slovenian"},
	OfficeMunich:    {ID: OfficeMunich, Name: "Munich", Timezone: "Europe/Berlin", HolidayCalendar: "german"},
}

// GetOfficeConfig возвращает конфигурацию офиса или nil для неизвестного id.
func GetOfficeConfig(officeID string) *OfficeConfig {
	cfg, ok := offices[officeID]
	if !ok {
		return nil
	}
	return &cfg
}

// OfficeIDs возвращает все офисы в стабильном порядке.
func OfficeIDs() []string {
	return []string{OfficeLjubljana, OfficeMunich}
}
