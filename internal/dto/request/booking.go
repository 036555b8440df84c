package request

type CreateBookingRequest struct {
	BikeID    string `json:"bike_id" validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
