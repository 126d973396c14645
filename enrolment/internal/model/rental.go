package model

import (
	"time"
)

type RentalEntity struct {
	ID         int64      `db:"id"`
	StudentID  int64      `db:"student_id"`
	BookID     int64      `db:"book_id"`
	RentedAt   time.Time  `db:"rented_at"`
	ReturnedAt *time.Time `db:"returned_at"`
}

type RentalDto struct {
	ID         int64
	StudentID  int64
	BookID     int64
	RentedAt   time.Time
	ReturnedAt *time.Time
}

type RentalRequest struct {
	StudentID int64 `json:"studentId" validate:"required,gt=0"`
	BookID    int64 `json:"bookId" validate:"required,gt=0"`
}

type RentalResponse struct {
	ID         int64      `json:"id"`
	StudentID  int64      `json:"studentId"`
	BookID     int64      `json:"bookId"`
	RentedAt   time.Time  `json:"rentedAt"`
	ReturnedAt *time.Time `json:"returnedAt"`
}

func (e RentalEntity) ToDto() RentalDto {
	return RentalDto{
		ID:         e.ID,
		StudentID:  e.StudentID,
		BookID:     e.BookID,
		RentedAt:   e.RentedAt,
		ReturnedAt: e.ReturnedAt,
	}
}

func (d RentalDto) ToEntity() RentalEntity {
	return RentalEntity{
		ID:         d.ID,
		StudentID:  d.StudentID,
		BookID:     d.BookID,
		RentedAt:   d.RentedAt,
		ReturnedAt: d.ReturnedAt,
	}
}

// ToDto never carries an identity: ids are assigned by the store.
func (r RentalRequest) ToDto() RentalDto {
	return RentalDto{
		StudentID: r.StudentID,
		BookID:    r.BookID,
	}
}

func (d RentalDto) ToResponse() RentalResponse {
	return RentalResponse{
		ID:         d.ID,
		StudentID:  d.StudentID,
		BookID:     d.BookID,
		RentedAt:   d.RentedAt,
		ReturnedAt: d.ReturnedAt,
	}
}
