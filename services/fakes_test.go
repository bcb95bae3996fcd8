package services_test

import (
	"context"
	"sort"
	"sync"

	"codebank/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.find(func(u models.User) bool { return u.Email == email })
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.find(func(u models.User) bool { return u.Username == username })
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return f.find(func(u models.User) bool { return u.ID == id })
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserRepo) find(match func(models.User) bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions map[primitive.ObjectID]models.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[primitive.ObjectID]models.Question{}}
}

func (f *fakeQuestionRepo) Insert(ctx context.Context, question *models.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	question.ID = primitive.NewObjectID()
	f.questions[question.ID] = *question
	return nil
}

func (f *fakeQuestionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if q, ok := f.questions[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (f *fakeQuestionRepo) FindAllByDateDesc(ctx context.Context) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Question, 0, len(f.questions))
	for _, q := range f.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DateCreated.After(out[j].DateCreated)
	})
	return out, nil
}

func (f *fakeQuestionRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	for key, value := range fields {
		s := value.(string)
		switch key {
		case "title":
			q.Title = s
		case "problemStatement":
			q.ProblemStatement = s
		case "solution":
			q.Solution = s
		case "topic":
			q.Topic = s
		}
	}
	f.questions[id] = q
	return &q, nil
}

func (f *fakeQuestionRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.questions[id]; !ok {
		return false, nil
	}
	delete(f.questions, id)
	return true, nil
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

type fakeMailer struct {
	err  error
	sent chan sentMail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 8)}
}

func (f *fakeMailer) Send(to []string, subject, htmlBody string) error {
	f.sent <- sentMail{to: to, subject: subject, body: htmlBody}
	return f.err
}
