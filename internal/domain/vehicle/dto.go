// internal/domain/vehicle/dto.go
package vehicle

import "time"

type CreateVehicleRequest struct {
	PlateNumber  string    `json:"plateNumber" binding:"required"`
	Brand        string    `json:"brand" binding:"required"`
	Model        string    `json:"model" binding:"required"`
	Manufactured time.Time `json:"manufactured" binding:"required"`
}

type CreateVehicleResponse struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plateNumber"`
}

type RentVehicleRequest struct {
	PlateNumber       string `json:"plateNumber" binding:"required"`
	ClientName        string `json:"clientName" binding:"required"`
	ClientEmail       string `json:"clientEmail" binding:"required"`
	ClientPhoneNumber string `json:"clientPhoneNumber" binding:"required"`
	ClientIDNumber    string `json:"clientIdNumber" binding:"required"`
}

type ReturnVehicleRequest struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
}

type ListVehiclesResponse struct {
	Vehicles   []Vehicle `json:"vehicles"`
	TotalCount int64     `json:"totalCount"`
}
