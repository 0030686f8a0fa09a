package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID генерирует ключ вида <prefix>_<unix-ms>_<случайный суффикс>.
// Временной префикс дает сортируемость по времени создания, случайный
// суффикс защищает от коллизий без общего счетчика.
func newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
