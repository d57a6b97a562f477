package router

import (
	"fmt"
	"net/http"

	"github.com/Renal37/farm-to-home/internal/middlewares"
	"github.com/Renal37/farm-to-home/internal/models"
)

// GetStats возвращает сводную статистику заказов магазина
func GetStats(w http.ResponseWriter, r *http.Request) {
	statsService := middlewares.GetServiceFromContext[models.StatsService](w, r, middlewares.StatsServiceKey)
	if statsService == nil {
		return
	}

	stats, err := (*statsService).GetOrderStats(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("При получении статистики произошла ошибка: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, stats)
}
