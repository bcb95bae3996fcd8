package services

import (
	"context"
	"errors"
	"time"

	questiondto "codebank/dto/question"
	"codebank/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultTitle = "Untitled Question"

var ErrNotFound = errors.New("question not found")

type QuestionRepository interface {
	Insert(ctx context.Context, question *models.Question) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error)
	FindAllByDateDesc(ctx context.Context) ([]models.Question, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Question, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type QuestionService struct {
	questions QuestionRepository
	notifier  *Notifier
}

func NewQuestionService(questions QuestionRepository, notifier *Notifier) *QuestionService {
	return &QuestionService{questions: questions, notifier: notifier}
}

func (s *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	return s.questions.FindAllByDateDesc(ctx)
}

// Create persists a new question for the given user and hands the
// notification to the background worker. The response never waits on email.
func (s *QuestionService) Create(ctx context.Context, userID string, payload questiondto.QuestionCreateDTO) (*models.Question, error) {
	creator, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	title := payload.Title
	if title == "" {
		title = defaultTitle
	}

	question := &models.Question{
		Title:            title,
		ProblemStatement: payload.ProblemStatement,
		Solution:         payload.Solution,
		Topic:            payload.Topic,
		DateCreated:      time.Now(),
		CreatedBy:        creator,
	}

	if err := s.questions.Insert(ctx, question); err != nil {
		return nil, err
	}

	s.notifier.Notify(Notification{
		Title:     question.Title,
		Topic:     question.Topic,
		CreatedBy: question.CreatedBy,
	})
	return question, nil
}

// Update applies any subset of fields to an existing question. There is no
// ownership check: any authenticated caller may update any question.
func (s *QuestionService) Update(ctx context.Context, id string, payload questiondto.QuestionUpdateDTO) (*models.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	fields := bson.M{}
	if payload.Title != nil {
		fields["title"] = *payload.Title
	}
	if payload.ProblemStatement != nil {
		fields["problemStatement"] = *payload.ProblemStatement
	}
	if payload.Solution != nil {
		fields["solution"] = *payload.Solution
	}
	if payload.Topic != nil {
		fields["topic"] = *payload.Topic
	}

	if len(fields) == 0 {
		// Nothing to change; still report whether the question exists.
		question, err := s.questions.FindByID(ctx, oid)
		if err != nil {
			return nil, err
		}
		if question == nil {
			return nil, ErrNotFound
		}
		return question, nil
	}

	question, err := s.questions.UpdateByID(ctx, oid, fields)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrNotFound
	}
	return question, nil
}

func (s *QuestionService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	deleted, err := s.questions.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
