package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/farm-to-home/internal/middlewares"
	"github.com/Renal37/farm-to-home/internal/models"
	"github.com/Renal37/farm-to-home/internal/services"
)

// GetMilestones возвращает каталог вех лояльности
func GetMilestones(w http.ResponseWriter, r *http.Request) {
	milestoneService := middlewares.GetServiceFromContext[models.MilestoneService](w, r, middlewares.MilestoneServiceKey)
	if milestoneService == nil {
		return
	}

	milestones, err := (*milestoneService).ListMilestones(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("При получении вех произошла ошибка: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, milestones)
}

// GetCoupons возвращает купоны, полученные пользователем за вехи
func GetCoupons(w http.ResponseWriter, r *http.Request) {
	milestoneService := middlewares.GetServiceFromContext[models.MilestoneService](w, r, middlewares.MilestoneServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if milestoneService == nil || user == nil {
		return
	}

	coupons, err := (*milestoneService).GetUserMilestones(r.Context(), user.ID)
	if err != nil {
		http.Error(w, fmt.Sprintf("При получении купонов произошла ошибка: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	if len(coupons) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, coupons)
}

// CreateMilestone добавляет веху в каталог
func CreateMilestone(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.NewMilestone](w, r)

	milestoneService := middlewares.GetServiceFromContext[models.MilestoneService](w, r, middlewares.MilestoneServiceKey)
	if milestoneService == nil {
		return
	}

	milestone, err := (*milestoneService).CreateMilestone(r.Context(), data)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMilestone) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		if errors.Is(err, services.ErrDuplicateMilestone) {
			http.Error(w, "Веха с таким уровнем уже существует", http.StatusConflict)
			return
		}

		http.Error(w, fmt.Sprintf("При создании вехи произошла ошибка: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, milestone)
}
