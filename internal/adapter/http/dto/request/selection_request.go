package request

type SelectParcelRequest struct {
	ParcelID int `json:"parcel_id" binding:"required"`
}
