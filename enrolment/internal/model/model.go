package model

type ListStudents struct {
	Paging `json:",inline"`
	Items  []StudentResponse `json:"items"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookResponse `json:"items"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}
