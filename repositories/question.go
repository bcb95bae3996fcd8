package repositories

import (
	"context"
	"log"

	"codebank/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	collection *mongo.Collection
}

func NewQuestionRepository(collection *mongo.Collection) *QuestionRepository {
	return &QuestionRepository{collection: collection}
}

func (r *QuestionRepository) Insert(ctx context.Context, question *models.Question) error {
	res, err := r.collection.InsertOne(ctx, question)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		question.ID = oid
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	var question models.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching question:", err)
		return nil, err
	}
	return &question, nil
}

// FindAllByDateDesc returns every question, newest first.
func (r *QuestionRepository) FindAllByDateDesc(ctx context.Context) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateCreated", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("Error listing questions:", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// UpdateByID applies the given fields to the question and returns the
// post-update document, or nil if no question has that id.
func (r *QuestionRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Question, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var question models.Question
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&question)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error updating question:", err)
		return nil, err
	}
	return &question, nil
}

// DeleteByID removes the question and reports whether it existed.
func (r *QuestionRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println("Error deleting question:", err)
		return false, err
	}
	return res.DeletedCount > 0, nil
}
