package update_working_hours

import (
	"github.com/anvlasova/Salon-SchedulingService/internal/service/professionals/models"
)

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	WorkStartTime  *string `json:"workStartTime"`  // "09:00"
	WorkEndTime    *string `json:"workEndTime"`    // "18:00"
	LunchStartTime *string `json:"lunchStartTime"` // "12:00", null = без обеда
	LunchEndTime   *string `json:"lunchEndTime"`   // "13:00", null = без обеда
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(userID int64) *models.UpdateWorkingHoursRequest {
	return &models.UpdateWorkingHoursRequest{
		UserID:         userID,
		WorkStartTime:  r.WorkStartTime,
		WorkEndTime:    r.WorkEndTime,
		LunchStartTime: r.LunchStartTime,
		LunchEndTime:   r.LunchEndTime,
	}
}
