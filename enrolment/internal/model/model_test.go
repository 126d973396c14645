package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStudentEntityDtoRoundTrip(t *testing.T) {
	t.Parallel()

	e := StudentEntity{
		ID:        7,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Age:       21,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.Equal(t, e, e.ToDto().ToEntity())
}

func TestBookEntityDtoRoundTrip(t *testing.T) {
	t.Parallel()

	e := BookEntity{
		ID:             3,
		Title:          "The Go Programming Language",
		Author:         "Donovan, Kernighan",
		Isbn:           "9780134190440",
		TotalCount:     5,
		AvailableCount: 2,
		CreatedAt:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.Equal(t, e, e.ToDto().ToEntity())
}

func TestRentalEntityDtoRoundTrip(t *testing.T) {
	t.Parallel()

	returned := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for _, e := range []RentalEntity{
		{ID: 1, StudentID: 7, BookID: 3, RentedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)},
		{ID: 2, StudentID: 7, BookID: 3, RentedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), ReturnedAt: &returned},
	} {
		require.Equal(t, e, e.ToDto().ToEntity())
	}
}

func TestStudentIdCardEntityDtoRoundTrip(t *testing.T) {
	t.Parallel()

	e := StudentIdCardEntity{
		ID:         11,
		StudentID:  7,
		CardNumber: "c7a1ecb1-0f3a-4c51-9a4e-2c9d3f9f0b6f",
		IssuedAt:   time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
	}
	require.Equal(t, e, e.ToDto().ToEntity())
}

func TestRequestToDtoDropsIdentity(t *testing.T) {
	t.Parallel()

	studentDto := StudentRequest{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 21}.ToDto()
	require.Zero(t, studentDto.ID)

	bookDto := BookRequest{Title: "CLRS", Author: "Cormen", TotalCount: 4}.ToDto()
	require.Zero(t, bookDto.ID)

	rentalDto := RentalRequest{StudentID: 7, BookID: 3}.ToDto()
	require.Zero(t, rentalDto.ID)
}

func TestBookRequestToDtoFillsStock(t *testing.T) {
	t.Parallel()

	dto := BookRequest{Title: "CLRS", Author: "Cormen", TotalCount: 4}.ToDto()
	require.Equal(t, 4, dto.TotalCount)
	require.Equal(t, 4, dto.AvailableCount)
}

func TestStudentDtoToResponseNested(t *testing.T) {
	t.Parallel()

	dto := StudentDto{ID: 7, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 21}

	bare := dto.ToResponse(nil, nil)
	require.Nil(t, bare.IdCard)
	require.Nil(t, bare.Books)

	card := StudentIdCardDto{ID: 11, StudentID: 7, CardNumber: "card-7"}
	full := dto.ToResponse(&card, []BookDto{{ID: 3, Title: "CLRS", Author: "Cormen", TotalCount: 4, AvailableCount: 3}})
	require.NotNil(t, full.IdCard)
	require.Equal(t, int64(7), full.IdCard.StudentID)
	require.Len(t, full.Books, 1)
	require.Equal(t, int64(3), full.Books[0].ID)
}
