package model

import (
	"time"
)

type BookEntity struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	Author         string    `db:"author"`
	Isbn           string    `db:"isbn"`
	TotalCount     int       `db:"total_count"`
	AvailableCount int       `db:"available_count"`
	CreatedAt      time.Time `db:"created_at"`
}

// RentedBookEntity is a book row joined with the student holding it.
type RentedBookEntity struct {
	StudentID int64 `db:"student_id"`
	BookEntity
}

type BookDto struct {
	ID             int64
	Title          string
	Author         string
	Isbn           string
	TotalCount     int
	AvailableCount int
	CreatedAt      time.Time
}

type BookRequest struct {
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Isbn       string `json:"isbn" validate:"omitempty,isbn"`
	TotalCount int    `json:"totalCount" validate:"gte=0"`
}

type BookResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Isbn           string    `json:"isbn"`
	TotalCount     int       `json:"totalCount"`
	AvailableCount int       `json:"availableCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (e BookEntity) ToDto() BookDto {
	return BookDto{
		ID:             e.ID,
		Title:          e.Title,
		Author:         e.Author,
		Isbn:           e.Isbn,
		TotalCount:     e.TotalCount,
		AvailableCount: e.AvailableCount,
		CreatedAt:      e.CreatedAt,
	}
}

func (d BookDto) ToEntity() BookEntity {
	return BookEntity{
		ID:             d.ID,
		Title:          d.Title,
		Author:         d.Author,
		Isbn:           d.Isbn,
		TotalCount:     d.TotalCount,
		AvailableCount: d.AvailableCount,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDto never carries an identity; a new book starts with every copy
// available.
func (r BookRequest) ToDto() BookDto {
	return BookDto{
		Title:          r.Title,
		Author:         r.Author,
		Isbn:           r.Isbn,
		TotalCount:     r.TotalCount,
		AvailableCount: r.TotalCount,
	}
}

func (d BookDto) ToResponse() BookResponse {
	return BookResponse{
		ID:             d.ID,
		Title:          d.Title,
		Author:         d.Author,
		Isbn:           d.Isbn,
		TotalCount:     d.TotalCount,
		AvailableCount: d.AvailableCount,
		CreatedAt:      d.CreatedAt,
	}
}
