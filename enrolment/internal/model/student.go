package model

import (
	"time"
)

type StudentEntity struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Age       int       `db:"age"`
	CreatedAt time.Time `db:"created_at"`
}

type StudentDto struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Age       int
	CreatedAt time.Time
}

type StudentRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Age       int    `json:"age" validate:"required,gt=0"`
}

type StudentPatchRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Age       *int    `json:"age" validate:"omitempty,gt=0"`
}

type StudentResponse struct {
	ID        int64                  `json:"id"`
	FirstName string                 `json:"firstName"`
	LastName  string                 `json:"lastName"`
	Email     string                 `json:"email"`
	Age       int                    `json:"age"`
	CreatedAt time.Time              `json:"createdAt"`
	IdCard    *StudentIdCardResponse `json:"studentIdCardResponse"`
	Books     []BookResponse         `json:"bookResponseList"`
}

// StudentDetail is the student aggregate served by reads: the student row
// plus its optional id card and the books it currently holds.
type StudentDetail struct {
	Student StudentDto
	IdCard  *StudentIdCardDto
	Books   []BookDto
}

type StudentIdCardEntity struct {
	ID         int64     `db:"id"`
	StudentID  int64     `db:"student_id"`
	CardNumber string    `db:"card_number"`
	IssuedAt   time.Time `db:"issued_at"`
}

type StudentIdCardDto struct {
	ID         int64
	StudentID  int64
	CardNumber string
	IssuedAt   time.Time
}

type StudentIdCardResponse struct {
	ID         int64     `json:"id"`
	StudentID  int64     `json:"studentId"`
	CardNumber string    `json:"cardNumber"`
	IssuedAt   time.Time `json:"issuedAt"`
}

func (e StudentEntity) ToDto() StudentDto {
	return StudentDto{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Age:       e.Age,
		CreatedAt: e.CreatedAt,
	}
}

func (d StudentDto) ToEntity() StudentEntity {
	return StudentEntity{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Age:       d.Age,
		CreatedAt: d.CreatedAt,
	}
}

// ToDto never carries an identity: ids are assigned by the store.
func (r StudentRequest) ToDto() StudentDto {
	return StudentDto{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Age:       r.Age,
	}
}

func (d StudentDto) ToResponse(card *StudentIdCardDto, books []BookDto) StudentResponse {
	resp := StudentResponse{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Age:       d.Age,
		CreatedAt: d.CreatedAt,
	}
	if card != nil {
		cardResp := card.ToResponse()
		resp.IdCard = &cardResp
	}
	for _, b := range books {
		resp.Books = append(resp.Books, b.ToResponse())
	}
	return resp
}

func (d StudentDetail) ToResponse() StudentResponse {
	return d.Student.ToResponse(d.IdCard, d.Books)
}

func (e StudentIdCardEntity) ToDto() StudentIdCardDto {
	return StudentIdCardDto{
		ID:         e.ID,
		StudentID:  e.StudentID,
		CardNumber: e.CardNumber,
		IssuedAt:   e.IssuedAt,
	}
}

func (d StudentIdCardDto) ToEntity() StudentIdCardEntity {
	return StudentIdCardEntity{
		ID:         d.ID,
		StudentID:  d.StudentID,
		CardNumber: d.CardNumber,
		IssuedAt:   d.IssuedAt,
	}
}

func (d StudentIdCardDto) ToResponse() StudentIdCardResponse {
	return StudentIdCardResponse{
		ID:         d.ID,
		StudentID:  d.StudentID,
		CardNumber: d.CardNumber,
		IssuedAt:   d.IssuedAt,
	}
}
