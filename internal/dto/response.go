package dto

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

// OK wraps a payload in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKCount wraps a collection payload with its length.
func OKCount(count int, data any) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Statistics summarizes the reference catalogs for the statistics
// endpoint.
type Statistics struct {
	TotalTrees        int            `json:"total_trees"`
	TotalGovernorates int            `json:"total_governorates"`
	Seasons           int            `json:"seasons"`
	TreeTypes         map[string]int `json:"tree_types"`
}

// SeasonalAdvice is the payload of the seasonal-advice endpoint.
type SeasonalAdvice struct {
	Governorate string `json:"governorate"`
	Season      string `json:"season"`
	Advice      string `json:"advice"`
}

// GovernorateInfo is one entry of the governorate listing.
type GovernorateInfo struct {
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
}
