package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// couponSuffixLength количество шестнадцатеричных символов случайной части кода.
const couponSuffixLength = 8

// GenerateCouponCode возвращает код купона вида MILE<level>_XXXXXXXX, где XXXXXXXX
// первые символы случайного UUID в верхнем регистре. Уникальность проверяет хранилище.
func GenerateCouponCode(level int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("MILE%d_%s", level, strings.ToUpper(hex[:couponSuffixLength]))
}
