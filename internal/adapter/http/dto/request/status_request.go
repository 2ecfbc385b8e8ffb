package request

// StatusRequest moves a letter or task to another status.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type MachineTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// LookupQuery is the contact autocomplete input.
type LookupQuery struct {
	Query string `form:"q"`
}

// PeriodQuery selects the report window.
type PeriodQuery struct {
	Period string `form:"period"`
}
