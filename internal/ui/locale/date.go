package locale

import (
	"time"

	"github.com/goodsign/monday"
)

const longDateLayout = "Monday, 2 de January de 2006"

// LongDate renders t the way es-ES long dates read, e.g. "lunes, 15 de enero de 2024".
// The zero time renders as an empty string.
func LongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return monday.Format(t, longDateLayout, monday.LocaleEsES)
}
