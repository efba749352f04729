package response

import (
	"plotsite/internal/domain/entities"
	"plotsite/internal/usecase"
)

type ParcelResponse struct {
	ID         int     `json:"id"`
	PlotNumber string  `json:"plot_number"`
	Width      string  `json:"width"`
	Depth      string  `json:"depth"`
	WidthFeet  float64 `json:"width_ft"`
	DepthFeet  float64 `json:"depth_ft"`
	Area       int     `json:"area_sq_ft"`
	Caption    string  `json:"caption"`
	Status     string  `json:"status"`
	Selectable bool    `json:"selectable"`
}

func FromParcel(p entities.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:         p.ID,
		PlotNumber: p.PlotNumber(),
		Width:      p.Width.String(),
		Depth:      p.Depth.String(),
		WidthFeet:  p.Width.Feet(),
		DepthFeet:  p.Depth.Feet(),
		Area:       p.Area(),
		Caption:    p.Caption(),
		Status:     string(p.Status),
		Selectable: p.Selectable(),
	}
}

func FromParcels(parcels []entities.Parcel) []ParcelResponse {
	out := make([]ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, FromParcel(p))
	}
	return out
}

type CatalogSummaryResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

func FromCatalogSummary(s usecase.CatalogSummary) CatalogSummaryResponse {
	return CatalogSummaryResponse{Total: s.Total, Available: s.Available, Reserved: s.Reserved, Sold: s.Sold}
}
