package student

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/enrolment-service/enrolment/internal/errs"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/model"
	"github.com/Astemirdum/enrolment-service/enrolment/internal/repository"
)

type Service struct {
	log   *zap.Logger
	repo  repository.StudentRepository
	books repository.BookRepository
}

func NewService(repo repository.StudentRepository, books repository.BookRepository, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		books: books,
	}
}

func (s *Service) CreateStudent(ctx context.Context, student model.StudentDto) (model.StudentDto, error) {
	created, err := s.repo.CreateStudent(ctx, student.ToEntity())
	if err != nil {
		return model.StudentDto{}, err
	}
	return created.ToDto(), nil
}

func (s *Service) GetStudent(ctx context.Context, id int64) (model.StudentDetail, error) {
	student, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		return model.StudentDetail{}, err
	}
	return s.withRelations(ctx, student)
}

func (s *Service) ListStudents(ctx context.Context, page, size int) ([]model.StudentDetail, error) {
	students, err := s.repo.ListStudents(ctx, page, size)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return []model.StudentDetail{}, nil
	}

	ids := make([]int64, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.ID)
	}

	var (
		cards  []model.StudentIdCardEntity
		rented []model.RentedBookEntity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = s.repo.ListIdCards(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		rented, err = s.books.ListRentedBooks(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cardByStudent := make(map[int64]model.StudentIdCardDto, len(cards))
	for _, c := range cards {
		cardByStudent[c.StudentID] = c.ToDto()
	}
	booksByStudent := make(map[int64][]model.BookDto, len(students))
	for _, rb := range rented {
		booksByStudent[rb.StudentID] = append(booksByStudent[rb.StudentID], rb.BookEntity.ToDto())
	}

	details := make([]model.StudentDetail, 0, len(students))
	for _, st := range students {
		detail := model.StudentDetail{
			Student: st.ToDto(),
			Books:   booksByStudent[st.ID],
		}
		if card, ok := cardByStudent[st.ID]; ok {
			detail.IdCard = &card
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *Service) UpdateStudent(ctx context.Context, id int64, student model.StudentDto) (model.StudentDetail, error) {
	updated, err := s.repo.UpdateStudent(ctx, id, student.ToEntity())
	if err != nil {
		return model.StudentDetail{}, err
	}
	return s.withRelations(ctx, updated)
}

func (s *Service) PatchStudent(ctx context.Context, id int64, patch model.StudentPatchRequest) (model.StudentDetail, error) {
	if patch == (model.StudentPatchRequest{}) {
		return s.GetStudent(ctx, id)
	}
	patched, err := s.repo.PatchStudent(ctx, id, patch)
	if err != nil {
		return model.StudentDetail{}, err
	}
	return s.withRelations(ctx, patched)
}

func (s *Service) DeleteStudent(ctx context.Context, id int64) error {
	return s.repo.DeleteStudent(ctx, id)
}

// IssueIdCard generates a card for the student. A student holds at most
// one card, repeated issue ends with ErrConflict.
func (s *Service) IssueIdCard(ctx context.Context, studentID int64) (model.StudentIdCardDto, error) {
	if _, err := s.repo.GetStudent(ctx, studentID); err != nil {
		return model.StudentIdCardDto{}, err
	}
	card, err := s.repo.CreateIdCard(ctx, studentID, uuid.NewString())
	if err != nil {
		return model.StudentIdCardDto{}, err
	}
	return card.ToDto(), nil
}

// withRelations loads the id card and the rented books of one student
// concurrently. A missing card is not an error, the field stays nil.
func (s *Service) withRelations(ctx context.Context, student model.StudentEntity) (model.StudentDetail, error) {
	detail := model.StudentDetail{Student: student.ToDto()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		card, err := s.repo.GetIdCard(gctx, student.ID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil
			}
			return err
		}
		dto := card.ToDto()
		detail.IdCard = &dto
		return nil
	})
	g.Go(func() error {
		rented, err := s.books.ListRentedBooks(gctx, []int64{student.ID})
		if err != nil {
			return err
		}
		for _, rb := range rented {
			detail.Books = append(detail.Books, rb.BookEntity.ToDto())
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.StudentDetail{}, err
	}
	return detail, nil
}
