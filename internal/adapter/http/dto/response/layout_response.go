package response

import "plotsite/internal/domain/layout"

type LayoutModesResponse struct {
	Modes []string `json:"modes"`
}

func FromModes(modes []layout.Mode) LayoutModesResponse {
	out := LayoutModesResponse{Modes: make([]string, 0, len(modes))}
	for _, m := range modes {
		out.Modes = append(out.Modes, string(m))
	}
	return out
}
