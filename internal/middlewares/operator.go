package middlewares

import (
	"crypto/subtle"
	"net/http"
)

// OperatorKeyHeader заголовок с ключом оператора магазина.
const OperatorKeyHeader = "X-Operator-Key"

// OperatorMiddleware пропускает только запросы с верным ключом оператора.
// Пустой operatorKey закрывает доступ полностью.
func OperatorMiddleware(operatorKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(OperatorKeyHeader)

			if operatorKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(operatorKey)) != 1 {
				http.Error(w, "Требуется ключ оператора", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
