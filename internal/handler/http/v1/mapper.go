package v1

import (
	"fmt"
	"strings"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// DTOToComplaintModel преобразует DTO создания в доменную модель.
// Статус, приоритет и поля дубликата выставляет сервис.
func DTOToComplaintModel(dto CreateComplaintRequest, uid string) *models.Complaint {
	complaint := &models.Complaint{
		UserID:      uid,
		Description: dto.Description,
		PhotoURL:    dto.PhotoURL,
	}
	if dto.Location != nil {
		complaint.Location = &models.Location{
			Lat:     dto.Location.Lat,
			Lng:     dto.Location.Lng,
			Address: strings.TrimSpace(dto.Location.Address),
		}
	}
	if dto.Category != "" {
		complaint.Category = models.ParseCategory(dto.Category)
	}
	return complaint
}

// DTOToComplaintUpdate проверяет приоритет и собирает изменения администратора
func DTOToComplaintUpdate(dto UpdateComplaintRequest) (models.ComplaintUpdate, error) {
	update := models.ComplaintUpdate{
		AdminRemarks:         dto.AdminRemarks,
		ResolutionPhotoURL:   dto.ResolutionPhotoURL,
		ResolutionConfidence: dto.ResolutionConfidence,
	}
	if dto.Status != nil {
		status := models.Status(*dto.Status)
		update.Status = &status
	}
	if dto.Priority != nil {
		priority, ok := models.ParsePriority(*dto.Priority)
		if !ok {
			return models.ComplaintUpdate{}, fmt.Errorf("unknown priority %q", *dto.Priority)
		}
		update.Priority = &priority
	}
	return update, nil
}

// ModelToComplaintResponse преобразует доменную модель в DTO для ответа
func ModelToComplaintResponse(model *models.Complaint) *ComplaintResponse {
	resp := &ComplaintResponse{
		ID:                     model.ID,
		UserID:                 model.UserID,
		Description:            model.Description,
		PhotoURL:               model.PhotoURL,
		Category:               string(model.Category),
		CategoryConfidence:     model.CategoryConfidence,
		Priority:               string(model.Priority),
		PriorityReason:         model.PriorityReason,
		Status:                 string(model.Status),
		DuplicateOf:            model.DuplicateOf,
		DuplicateSimilarity:    model.DuplicateSimilarity,
		AISummary:              model.AISummary,
		AdminRemarks:           model.AdminRemarks,
		ResolutionPhotoURL:     model.ResolutionPhotoURL,
		ResolutionVerification: model.ResolutionVerification,
		ResolutionConfidence:   model.ResolutionConfidence,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
		TriagedAt:              model.TriagedAt,
	}
	if model.Location != nil {
		resp.Location = &LocationDTO{
			Lat:     model.Location.Lat,
			Lng:     model.Location.Lng,
			Address: model.Location.Address,
		}
	}
	return resp
}

// ModelsToComplaintResponses преобразует слайс моделей в слайс DTO
func ModelsToComplaintResponses(models []*models.Complaint) []*ComplaintResponse {
	responses := make([]*ComplaintResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToComplaintResponse(model)
	}
	return responses
}

func ModelsToNearbyResponses(nearby []models.NearbyComplaint) []NearbyComplaintResponse {
	responses := make([]NearbyComplaintResponse, len(nearby))
	for i, n := range nearby {
		responses[i] = NearbyComplaintResponse{
			Complaint:  ModelToComplaintResponse(n.Complaint),
			DistanceKm: n.DistanceKm,
		}
	}
	return responses
}

func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		UID:       user.UID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
